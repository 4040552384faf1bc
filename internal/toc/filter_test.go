package toc

import (
	"strings"
	"testing"
)

func sampleTree() []*Node {
	data := TOCData{
		Entities: Entities{Pages: map[string]Page{
			"guide":    {ID: "guide", Title: "Getting Started", Pages: []string{"install", "config"}},
			"install":  {ID: "install", Title: "Install the Café", Level: 1, Pages: []string{"linux"}},
			"linux":    {ID: "linux", Title: "Linux setup", Level: 2},
			"config":   {ID: "config", Title: "Configuration", Level: 1},
			"cafe":     {ID: "cafe", Title: "Cafe menu", Pages: []string{"espresso"}},
			"espresso": {ID: "espresso", Title: "Espresso at the café", Level: 1},
		}},
		TopLevelIDs: []string{"guide", "cafe"},
	}
	return BuildTree(data)
}

func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterTreeBlankQuery(t *testing.T) {
	nodes := BuildTree(parentChildData())

	for _, q := range []string{"", "   ", "\t\n"} {
		result := FilterTree(nodes, q)
		if result.Count != 0 {
			t.Errorf("FilterTree(%q).Count = %d, want 0", q, result.Count)
		}
		if len(result.Tree) != len(nodes) || &result.Tree[0] != &nodes[0] {
			t.Errorf("FilterTree(%q) should return the input slice itself", q)
		}
		if Len(result.Tree) != 3 {
			t.Errorf("expected full 3-node tree, got %d nodes", Len(result.Tree))
		}
	}
}

func TestFilterTree(t *testing.T) {
	t.Run("child match keeps non-matching parent", func(t *testing.T) {
		result := FilterTree(BuildTree(parentChildData()), "Child 1")
		if result.Count != 1 {
			t.Errorf("Count = %d, want 1", result.Count)
		}
		if len(result.Tree) != 1 || result.Tree[0].ID != "parent" {
			t.Fatalf("expected parent as only root, got %v", ids(result.Tree))
		}
		children := result.Tree[0].Children
		if len(children) != 1 || children[0].ID != "child1" {
			t.Fatalf("expected only child1 under parent, got %v", ids(children))
		}
		if len(children[0].Children) != 0 {
			t.Errorf("expected child1 to have no children")
		}
	})

	t.Run("matching parent prunes non-matching children", func(t *testing.T) {
		result := FilterTree(BuildTree(parentChildData()), "page")
		if result.Count != 1 {
			t.Errorf("Count = %d, want 1", result.Count)
		}
		if len(result.Tree) != 1 || len(result.Tree[0].Children) != 0 {
			t.Errorf("expected lone parent, got %v", ids(Flatten(result.Tree)))
		}
	})

	t.Run("parent and child both match", func(t *testing.T) {
		result := FilterTree(sampleTree(), "cafe")
		if result.Count != 3 {
			t.Errorf("Count = %d, want 3", result.Count)
		}
		if !equalIDs(ids(result.Tree), []string{"guide", "cafe"}) {
			t.Errorf("roots = %v, want [guide cafe]", ids(result.Tree))
		}
		if !equalIDs(ids(result.Tree[1].Children), []string{"espresso"}) {
			t.Errorf("cafe children = %v, want [espresso]", ids(result.Tree[1].Children))
		}
	})

	t.Run("no match", func(t *testing.T) {
		result := FilterTree(sampleTree(), "kubernetes")
		if result.Count != 0 || len(result.Tree) != 0 {
			t.Errorf("expected empty result, got count=%d tree=%v", result.Count, ids(result.Tree))
		}
		if result.Tree == nil {
			t.Error("expected empty non-nil tree")
		}
	})

	t.Run("deep match preserves every ancestor", func(t *testing.T) {
		result := FilterTree(sampleTree(), "linux")
		if result.Count != 1 {
			t.Errorf("Count = %d, want 1", result.Count)
		}
		if !equalIDs(ids(result.Tree), []string{"guide"}) {
			t.Fatalf("roots = %v, want [guide]", ids(result.Tree))
		}
		install := result.Tree[0].Children
		if !equalIDs(ids(install), []string{"install"}) {
			t.Fatalf("guide children = %v, want [install]", ids(install))
		}
		if !equalIDs(ids(install[0].Children), []string{"linux"}) {
			t.Errorf("install children = %v, want [linux]", ids(install[0].Children))
		}
	})

	t.Run("case and diacritic insensitive", func(t *testing.T) {
		for _, q := range []string{"CAFÉ", "café", "Cafe"} {
			if got := FilterTree(sampleTree(), q).Count; got != 3 {
				t.Errorf("FilterTree(%q).Count = %d, want 3", q, got)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		result := FilterTree(nil, "anything")
		if result.Count != 0 || len(result.Tree) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})
}

func TestFilterTreeDoesNotMutateInput(t *testing.T) {
	nodes := sampleTree()
	before := Len(nodes)
	guide := nodes[0]

	result := FilterTree(nodes, "linux")

	if Len(nodes) != before {
		t.Errorf("input tree size changed from %d to %d", before, Len(nodes))
	}
	if len(guide.Children) != 2 {
		t.Errorf("input node children changed, got %v", ids(guide.Children))
	}
	if result.Tree[0] == guide {
		t.Error("expected a fresh node, got the input node")
	}
}

func TestFilterTreeCountLaw(t *testing.T) {
	nodes := sampleTree()
	queries := []string{"e", "in", "caf", "setup", "x"}

	for _, q := range queries {
		want := 0
		Walk(nodes, func(n *Node, _ int) {
			if containsNormalized(n.Title, q) {
				want++
			}
		})
		if got := FilterTree(nodes, q).Count; got != want {
			t.Errorf("FilterTree(%q).Count = %d, want %d", q, got, want)
		}
	}
}

func TestFilterTreeSubset(t *testing.T) {
	nodes := sampleTree()
	depths := make(map[string]int)
	Walk(nodes, func(n *Node, depth int) { depths[n.ID] = depth })

	result := FilterTree(nodes, "e")
	Walk(result.Tree, func(n *Node, depth int) {
		d, ok := depths[n.ID]
		if !ok {
			t.Errorf("filtered tree introduced id %q", n.ID)
			return
		}
		if d != depth {
			t.Errorf("node %q at depth %d, want %d", n.ID, depth, d)
		}
	})
}

func containsNormalized(title, q string) bool {
	return strings.Contains(Normalize(title), Normalize(q))
}
