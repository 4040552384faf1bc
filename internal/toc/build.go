package toc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMissingPage is returned by BuildTreeChecked when an id is not in the page map.
	ErrMissingPage = errors.New("page not found")
	// ErrCycle is returned by BuildTreeChecked when a page lists itself as a descendant.
	ErrCycle = errors.New("cycle detected")
)

// BuildTree converts a flat dataset into a tree of nodes. Root order follows
// data.TopLevelIDs and child order follows each page's Pages list.
//
// Every id referenced by TopLevelIDs or a Pages list must exist in
// data.Entities.Pages; BuildTree panics otherwise. Cyclic page references are
// not guarded and exhaust the goroutine stack. Use BuildTreeChecked for
// untrusted data.
//
// Anchors are never attached: every node gets an empty Anchors slice.
func BuildTree(data TOCData) []*Node {
	pages := data.Entities.Pages

	var buildNode func(id string) *Node
	buildNode = func(id string) *Node {
		page, ok := pages[id]
		if !ok {
			panic(fmt.Sprintf("toc: %v: %q", ErrMissingPage, id))
		}

		node := newNode(page)
		for _, childID := range page.Pages {
			node.Children = append(node.Children, buildNode(childID))
		}
		return node
	}

	roots := make([]*Node, 0, len(data.TopLevelIDs))
	for _, id := range data.TopLevelIDs {
		roots = append(roots, buildNode(id))
	}
	return roots
}

// BuildTreeChecked is BuildTree with reference checking. It tracks the ids on
// the current root-to-node path and returns an error wrapping ErrCycle or
// ErrMissingPage instead of crashing. No partial tree is returned on error.
//
// A page referenced from two different parents is not a cycle and is
// materialized under both.
func BuildTreeChecked(data TOCData) ([]*Node, error) {
	pages := data.Entities.Pages
	onPath := make(map[string]bool)
	var path []string

	var buildNode func(id string) (*Node, error)
	buildNode = func(id string) (*Node, error) {
		if onPath[id] {
			return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(path, id), " -> "))
		}
		page, ok := pages[id]
		if !ok {
			if len(path) == 0 {
				return nil, fmt.Errorf("%w: %q in top-level ids", ErrMissingPage, id)
			}
			return nil, fmt.Errorf("%w: %q referenced by %q", ErrMissingPage, id, path[len(path)-1])
		}

		onPath[id] = true
		path = append(path, id)
		defer func() {
			delete(onPath, id)
			path = path[:len(path)-1]
		}()

		node := newNode(page)
		for _, childID := range page.Pages {
			child, err := buildNode(childID)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	}

	roots := make([]*Node, 0, len(data.TopLevelIDs))
	for _, id := range data.TopLevelIDs {
		node, err := buildNode(id)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return roots, nil
}

func newNode(page Page) *Node {
	page.Pages = slices.Clone(page.Pages)
	return &Node{
		Page:     page,
		Children: make([]*Node, 0, len(page.Pages)),
		Anchors:  []Anchor{},
	}
}
