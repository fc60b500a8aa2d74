package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds:
//
//	Root
//	├── Menu
//	│   └── Save
//	└── Utils
//	    ├── Date
//	    ├── Disk
//	    └── Net
func sampleTree(t *testing.T) (*Tree, map[string]NodeID) {
	t.Helper()
	tree := NewTree()
	ids := map[string]NodeID{}
	ids["Menu"] = tree.MustAdd(Root, Node{Name: "Menu"})
	ids["Utils"] = tree.MustAdd(Root, Node{Name: "Utils"})
	ids["Save"] = tree.MustAdd(Ref(ids["Menu"]), Node{Name: "Save"})
	for _, name := range []string{"Date", "Disk", "Net"} {
		ids[name] = tree.MustAdd(Ref(ids["Utils"]), Node{Name: name})
	}
	return tree, ids
}

func TestTreeAddRejectsUnknownParent(t *testing.T) {
	tree := NewTree()
	_, err := tree.Add(Ref(3), Node{Name: "orphan"})
	require.ErrorIs(t, err, ErrNodeNotFound)
	assert.Equal(t, 0, tree.Len())
}

func TestTreeChildrenInInsertionOrder(t *testing.T) {
	tree, ids := sampleTree(t)
	assert.Equal(t, []NodeID{ids["Menu"], ids["Utils"]}, tree.Children(Root))
	assert.Equal(t, []NodeID{ids["Date"], ids["Disk"], ids["Net"]}, tree.Children(Ref(ids["Utils"])))
	assert.Empty(t, tree.Children(Ref(ids["Save"])))
	assert.True(t, tree.HasChildren(ids["Menu"]))
	assert.False(t, tree.HasChildren(ids["Net"]))
	assert.Equal(t, NoNode, tree.FirstChild(Ref(ids["Net"])))
}

func TestTreeParentOf(t *testing.T) {
	tree, ids := sampleTree(t)
	assert.True(t, tree.ParentOf(ids["Menu"]).IsRoot())
	assert.Equal(t, Ref(ids["Utils"]), tree.ParentOf(ids["Disk"]))
}

func TestTreeParentOfUnknownPanics(t *testing.T) {
	tree, _ := sampleTree(t)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNodeNotFound)
	}()
	tree.ParentOf(42)
}

func TestSiblingTraversalIsCyclic(t *testing.T) {
	tree, ids := sampleTree(t)
	start := ids["Disk"]
	siblings := tree.Siblings(start)
	require.Len(t, siblings, 3)

	cur := start
	for i := 0; i < len(siblings); i++ {
		cur = tree.NextSibling(cur)
	}
	assert.Equal(t, start, cur)

	for i := 0; i < len(siblings); i++ {
		cur = tree.PreviousSibling(cur)
	}
	assert.Equal(t, start, cur)
}

func TestSiblingWrapsAtEdges(t *testing.T) {
	tree, ids := sampleTree(t)
	assert.Equal(t, ids["Date"], tree.NextSibling(ids["Net"]))
	assert.Equal(t, ids["Net"], tree.PreviousSibling(ids["Date"]))
	assert.Equal(t, ids["Save"], tree.NextSibling(ids["Save"]))
}

func TestSiblingOfNoNodeIsFirstRootChild(t *testing.T) {
	tree, ids := sampleTree(t)
	assert.Equal(t, ids["Menu"], tree.NextSibling(NoNode))
	assert.Equal(t, ids["Menu"], tree.PreviousSibling(NoNode))
	assert.Equal(t, NoNode, NewTree().NextSibling(NoNode))
}

func TestAncestorsRootFirst(t *testing.T) {
	tree, ids := sampleTree(t)
	chain := tree.Ancestors(Ref(ids["Utils"]))
	assert.Equal(t, []Parent{Root, Ref(ids["Utils"])}, chain)
	assert.Equal(t, []Parent{Root}, tree.Ancestors(Root))
	assert.Equal(t, []string{"Top", "Utils"}, tree.Breadcrumb(Ref(ids["Utils"]), "Top"))
}

func TestParentTagDistinguishesRootFromNodeZero(t *testing.T) {
	assert.NotEqual(t, Root, Ref(0))
	id, ok := Ref(0).Node()
	assert.True(t, ok)
	assert.Equal(t, NodeID(0), id)
	_, ok = Root.Node()
	assert.False(t, ok)
	assert.Equal(t, "root", Root.String())
}
