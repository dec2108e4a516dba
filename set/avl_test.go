package set

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func buildTree(vals ...uint32) *avlNode {
	var root *avlNode
	for _, v := range vals {
		root = insert(root, v)
	}
	return root
}

func TestAvlInsertAndFlatten(t *testing.T) {
	root := buildTree(5, 3, 9, 1, 7)
	assert.Equal(t, 5, treeSize(root))
	assert.Equal(t, []uint32{1, 3, 5, 7, 9}, flatten(root), "in-order walk should be ascending")
}

func TestAvlDuplicatesDropped(t *testing.T) {
	root := buildTree(2, 2, 2, 1, 1)
	assert.Equal(t, 2, treeSize(root), "duplicate inserts should not create nodes")
	assert.Equal(t, []uint32{1, 2}, flatten(root))
}

func TestAvlBalancedUnderAscendingInserts(t *testing.T) {
	// Inserting 0..1022 in order degenerates an unbalanced BST into a
	// list; a balanced tree of 1023 nodes must stay close to height 10.
	var root *avlNode
	for i := uint32(0); i < 1023; i++ {
		root = insert(root, i)
	}
	assert.Equal(t, 1023, treeSize(root))
	assert.LessOrEqual(t, root.height, 15, "height should be within the AVL bound")

	arr := flatten(root)
	for i := 1; i < len(arr); i++ {
		assert.Less(t, arr[i-1], arr[i])
	}
}

func TestAvlBalancedUnderDescendingInserts(t *testing.T) {
	var root *avlNode
	for i := 1023; i > 0; i-- {
		root = insert(root, uint32(i))
	}
	assert.Equal(t, 1023, treeSize(root))
	assert.LessOrEqual(t, root.height, 15)
	assert.Equal(t, uint32(1), flatten(root)[0])
}

func TestAvlCachedHeightsConsistent(t *testing.T) {
	root := buildTree(10, 20, 30, 25, 5, 1, 40, 35)
	var check func(n *avlNode) int
	check = func(n *avlNode) int {
		if n == nil {
			return 0
		}
		lh, rh := check(n.left), check(n.right)
		want := lh + 1
		if rh >= lh {
			want = rh + 1
		}
		assert.Equal(t, want, n.height, "cached height must match recomputed height")
		bal := lh - rh
		assert.True(t, bal >= -1 && bal <= 1, "balance factor must stay in [-1,1]")
		return want
	}
	check(root)
}
