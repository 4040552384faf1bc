package toc

// ContainsID reports whether node or any of its descendants has the given id.
func ContainsID(node *Node, id string) bool {
	if node == nil || id == "" {
		return false
	}
	if node.ID == id {
		return true
	}
	for _, child := range node.Children {
		if ContainsID(child, id) {
			return true
		}
	}
	return false
}

// View is the activation and expansion state a presentation layer keeps for
// a tree. The zero value has no active node and everything collapsed.
//
// A View is not safe for concurrent mutation.
type View struct {
	active   string
	expanded map[string]bool
}

// NewView returns a View with the given node active.
func NewView(activeID string) *View {
	return &View{active: activeID}
}

// ActiveID returns the id of the active node, or "" if none is active.
func (v *View) ActiveID() string {
	return v.active
}

// Activate makes id the active node, whether or not it has children.
func (v *View) Activate(id string) {
	v.active = id
}

// Toggle flips the user expansion flag of id.
func (v *View) Toggle(id string) {
	v.setExpanded(id, !v.expanded[id])
}

// Click applies a header click: nodes with children toggle, then the node
// becomes active.
func (v *View) Click(node *Node) {
	if node.HasChildren() {
		v.Toggle(node.ID)
	}
	v.Activate(node.ID)
}

// ExpandKey opens a collapsed node that has children. It reports whether the
// key was handled.
func (v *View) ExpandKey(node *Node) bool {
	if !node.HasChildren() || v.Expanded(node) {
		return false
	}
	v.setExpanded(node.ID, true)
	return true
}

// CollapseKey closes an expanded node that has children. It reports whether
// the key was handled.
func (v *View) CollapseKey(node *Node) bool {
	if !node.HasChildren() || !v.Expanded(node) {
		return false
	}
	v.setExpanded(node.ID, false)
	return true
}

// ExpandAll sets the user expansion flag on every node with children.
func (v *View) ExpandAll(nodes []*Node) {
	Walk(nodes, func(n *Node, _ int) {
		if n.HasChildren() {
			v.setExpanded(n.ID, true)
		}
	})
}

// Expanded reports whether node is shown open. A node on the path to the
// active node is always open; otherwise the user flag decides. Containment
// is recomputed on every call.
//
// An open node that leads to the active node marks its flag so it stays
// open after activation moves elsewhere.
func (v *View) Expanded(node *Node) bool {
	if ContainsID(node, v.active) {
		v.setExpanded(node.ID, true)
		return true
	}
	return v.expanded[node.ID]
}

// AnchorsVisible reports whether node's anchors are shown, which is only
// the case for the active node.
func (v *View) AnchorsVisible(node *Node) bool {
	return node != nil && v.active != "" && node.ID == v.active
}

func (v *View) setExpanded(id string, open bool) {
	if v.expanded == nil {
		v.expanded = make(map[string]bool)
	}
	v.expanded[id] = open
}
