package toc

import "strings"

// FilterTree prunes nodes to those whose normalized title contains the
// normalized query, plus every ancestor on the path to such a node.
//
// A blank query returns nodes itself (not a copy) with a zero count; callers
// must treat that slice as read-only. Otherwise surviving nodes are fresh
// copies whose Children hold only surviving children, in their original
// order. Count is the number of self-matching nodes across the whole tree,
// at any depth, including matching nodes that also have matching
// descendants.
func FilterTree(nodes []*Node, query string) FilterResult {
	if strings.TrimSpace(query) == "" {
		return FilterResult{Tree: nodes, Count: 0}
	}

	q := Normalize(query)
	total := 0

	var visit func(node *Node) *Node
	visit = func(node *Node) *Node {
		children := filterNodes(node.Children, visit)
		selfMatch := strings.Contains(Normalize(node.Title), q)
		if !selfMatch && len(children) == 0 {
			return nil
		}
		if selfMatch {
			total++
		}

		kept := *node
		kept.Children = children
		return &kept
	}

	tree := filterNodes(nodes, visit)
	return FilterResult{Tree: tree, Count: total}
}

func filterNodes(nodes []*Node, visit func(*Node) *Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if n := visit(node); n != nil {
			kept = append(kept, n)
		}
	}
	return kept
}
