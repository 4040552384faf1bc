package toc

import (
	"encoding/json"
	"strings"
)

// Page is one entry of the flat source graph.
type Page struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	URL                  string   `json:"url"`
	Level                int      `json:"level"`
	ParentID             string   `json:"parentId,omitempty"`
	Pages                []string `json:"pages,omitempty"`                // Child ids, in display order
	TabIndex             *int     `json:"tabIndex,omitempty"`             // Optional focus order hint
	DoNotShowWarningLink *bool    `json:"doNotShowWarningLink,omitempty"` // Passed through untouched
}

// Anchor is an in-page sub-heading.
type Anchor struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Anchor string `json:"anchor"` // Fragment, with or without a leading '#'
	Level  int    `json:"level"`
}

// Href returns the anchor's link target, joining URL and fragment with
// exactly one '#'.
func (a Anchor) Href() string {
	if strings.HasPrefix(a.Anchor, "#") {
		return a.URL + a.Anchor
	}
	return a.URL + "#" + a.Anchor
}

// Entities holds the id-indexed records of a dataset.
type Entities struct {
	Pages   map[string]Page   `json:"pages"`
	Anchors map[string]Anchor `json:"anchors"`
}

// TOCData is the source representation of a table of contents.
// TopLevelIDs defines root order.
type TOCData struct {
	Entities    Entities `json:"entities"`
	TopLevelIDs []string `json:"topLevelIds"`
}

// Node is a Page with its resolved children and anchors.
type Node struct {
	Page
	Children []*Node  `json:"children"`
	Anchors  []Anchor `json:"anchors"`
}

// FilterResult is the outcome of FilterTree.
type FilterResult struct {
	Tree  []*Node `json:"tree"`
	Count int     `json:"count"`
}

// HasChildren reports whether the node has any child nodes.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// String returns a JSON representation of the Node for debugging.
func (n *Node) String() string {
	b, _ := json.MarshalIndent(n, "", "  ")
	return string(b)
}

// Walk traverses the tree in depth-first order, calling fn for each node
// with its depth below the root (0 for roots).
func Walk(nodes []*Node, fn func(n *Node, depth int)) {
	var walk func([]*Node, int)
	walk = func(children []*Node, depth int) {
		for _, node := range children {
			fn(node, depth)
			walk(node.Children, depth+1)
		}
	}
	walk(nodes, 0)
}

// Flatten returns all nodes in the tree as a flat slice, in depth-first order.
func Flatten(nodes []*Node) []*Node {
	var result []*Node
	Walk(nodes, func(n *Node, _ int) {
		result = append(result, n)
	})
	return result
}

// Len returns the total number of nodes in the tree.
func Len(nodes []*Node) int {
	count := 0
	Walk(nodes, func(*Node, int) { count++ })
	return count
}
