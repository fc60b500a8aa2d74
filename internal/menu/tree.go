package menu

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound reports a lookup for a node the tree never registered.
var ErrNodeNotFound = errors.New("menu node not found")

// NodeID addresses a node in the tree's arena. IDs are dense and stable for
// the lifetime of the tree.
type NodeID int

// NoNode is the absent focus.
const NoNode NodeID = -1

// Parent is either the tree root or a reference to a registered node. The zero
// value is Root.
type Parent struct {
	id    NodeID
	isRef bool
}

// Root anchors the tree. It has no name and no parent.
var Root = Parent{}

// Ref wraps a node id as a parent reference.
func Ref(id NodeID) Parent {
	return Parent{id: id, isRef: true}
}

// IsRoot reports whether p is the tree root.
func (p Parent) IsRoot() bool { return !p.isRef }

// Node returns the referenced node id, or false for Root.
func (p Parent) Node() (NodeID, bool) {
	if !p.isRef {
		return NoNode, false
	}
	return p.id, true
}

func (p Parent) String() string {
	if !p.isRef {
		return "root"
	}
	return fmt.Sprintf("node(%d)", p.id)
}

// Node is one named entry of a menu.
type Node struct {
	Name   string
	Action Action
	// Returns marks a node whose action ends the menu session with its value.
	Returns bool
}

// Tree is a single-rooted, single-parent menu hierarchy stored as an arena.
// Nodes can only be attached to Root or to an already registered node, which
// keeps the structure acyclic.
type Tree struct {
	nodes    []Node
	parents  []Parent
	children map[Parent][]NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{children: make(map[Parent][]NodeID)}
}

// Add registers node under parent and returns its id.
func (t *Tree) Add(parent Parent, node Node) (NodeID, error) {
	if id, ok := parent.Node(); ok && !t.valid(id) {
		return NoNode, fmt.Errorf("add %q under %s: %w", node.Name, parent, ErrNodeNotFound)
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node)
	t.parents = append(t.parents, parent)
	t.children[parent] = append(t.children[parent], id)
	return id, nil
}

// MustAdd is Add for trees built from literals, where an unknown parent is a
// programming error.
func (t *Tree) MustAdd(parent Parent, node Node) NodeID {
	id, err := t.Add(parent, node)
	if err != nil {
		panic(err)
	}
	return id
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node registered under id.
func (t *Tree) Node(id NodeID) Node {
	if !t.valid(id) {
		panic(fmt.Errorf("node %d: %w", id, ErrNodeNotFound))
	}
	return t.nodes[id]
}

// ParentOf returns the parent of id. Asking about an unregistered node is a
// caller bug and panics with an error wrapping ErrNodeNotFound.
func (t *Tree) ParentOf(id NodeID) Parent {
	if !t.valid(id) {
		panic(fmt.Errorf("parent of node %d: %w", id, ErrNodeNotFound))
	}
	return t.parents[id]
}

// Children lists the children of p in insertion order.
func (t *Tree) Children(p Parent) []NodeID {
	kids := t.children[p]
	out := make([]NodeID, len(kids))
	copy(out, kids)
	return out
}

// HasChildren reports whether id has at least one child.
func (t *Tree) HasChildren(id NodeID) bool {
	return len(t.children[Ref(id)]) > 0
}

// FirstChild returns the first child of p, or NoNode.
func (t *Tree) FirstChild(p Parent) NodeID {
	kids := t.children[p]
	if len(kids) == 0 {
		return NoNode
	}
	return kids[0]
}

// Siblings returns every node sharing id's parent, id included. NoNode and
// unknown ids resolve to the children of Root.
func (t *Tree) Siblings(id NodeID) []NodeID {
	if !t.valid(id) {
		return t.Children(Root)
	}
	return t.Children(t.parents[id])
}

// NextSibling steps forward through id's siblings, wrapping from the last to
// the first.
func (t *Tree) NextSibling(id NodeID) NodeID {
	return t.sibling(id, 1)
}

// PreviousSibling steps backward through id's siblings, wrapping from the
// first to the last.
func (t *Tree) PreviousSibling(id NodeID) NodeID {
	return t.sibling(id, -1)
}

func (t *Tree) sibling(id NodeID, delta int) NodeID {
	siblings := t.Siblings(id)
	if len(siblings) == 0 {
		return NoNode
	}
	pos := indexOf(siblings, id)
	if pos < 0 {
		return siblings[0]
	}
	n := len(siblings)
	return siblings[((pos+delta)%n+n)%n]
}

func indexOf(ids []NodeID, id NodeID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// Ancestors walks parent links from p up to Root and returns the chain
// root-first, p included.
func (t *Tree) Ancestors(p Parent) []Parent {
	var chain []Parent
	for {
		chain = append(chain, p)
		id, ok := p.Node()
		if !ok {
			break
		}
		p = t.ParentOf(id)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Breadcrumb names the ancestors of p, using rootName for Root.
func (t *Tree) Breadcrumb(p Parent, rootName string) []string {
	chain := t.Ancestors(p)
	names := make([]string, len(chain))
	for i, anc := range chain {
		if id, ok := anc.Node(); ok {
			names[i] = t.nodes[id].Name
			continue
		}
		names[i] = rootName
	}
	return names
}
