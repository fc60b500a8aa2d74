package menu

// Navigator tracks the current parent and focused child while a user walks a
// Tree. The tree itself is never modified.
type Navigator struct {
	tree   *Tree
	parent Parent
	focus  NodeID
}

// NewNavigator starts at Root with the first top-level node focused.
func NewNavigator(tree *Tree) *Navigator {
	return &Navigator{tree: tree, parent: Root, focus: tree.FirstChild(Root)}
}

// Tree returns the tree being walked.
func (n *Navigator) Tree() *Tree { return n.tree }

// Parent returns the node whose children are listed.
func (n *Navigator) Parent() Parent { return n.parent }

// Focus returns the highlighted child, or NoNode when the parent is childless.
func (n *Navigator) Focus() NodeID { return n.focus }

// Items returns the children of the current parent in insertion order.
func (n *Navigator) Items() []NodeID { return n.tree.Children(n.parent) }

// Next focuses the following sibling, wrapping at the end.
func (n *Navigator) Next() bool {
	return n.setFocus(n.tree.NextSibling(n.focus))
}

// Prev focuses the preceding sibling, wrapping at the start.
func (n *Navigator) Prev() bool {
	return n.setFocus(n.tree.PreviousSibling(n.focus))
}

func (n *Navigator) setFocus(id NodeID) bool {
	old := n.focus
	n.focus = id
	return old != id
}

// Descend enters the focused node when it has children.
func (n *Navigator) Descend() bool {
	if n.focus == NoNode || !n.tree.HasChildren(n.focus) {
		return false
	}
	n.parent = Ref(n.focus)
	n.focus = n.tree.FirstChild(n.parent)
	return true
}

// Ascend returns to the parent level and refocuses the node just left.
func (n *Navigator) Ascend() bool {
	id, ok := n.parent.Node()
	if !ok {
		return false
	}
	n.parent = n.tree.ParentOf(id)
	n.focus = id
	return true
}

// Breadcrumb names the path from Root to the current parent.
func (n *Navigator) Breadcrumb(rootName string) []string {
	return n.tree.Breadcrumb(n.parent, rootName)
}
