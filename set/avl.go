package set

// avlNode is a node of the transient construction tree used to sort and
// deduplicate elements before they become an IntSet. The tree lives only for
// the duration of a single parse or set operation: it is built, flattened
// into the result slice and then dropped on the floor for the collector.
type avlNode struct {
	val    uint32
	left   *avlNode
	right  *avlNode
	height int
}

func newAvlNode(val uint32) *avlNode {
	return &avlNode{val: val, height: 1}
}

func nodeHeight(n *avlNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance is left height minus right height; outside [-1,1] means rotate.
func (n *avlNode) balance() int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

func (n *avlNode) fixHeight() {
	lh, rh := nodeHeight(n.left), nodeHeight(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

func leftRotate(root *avlNode) *avlNode {
	right := root.right
	root.right = right.left
	right.left = root
	root.fixHeight()
	right.fixHeight()
	return right
}

func rightRotate(root *avlNode) *avlNode {
	left := root.left
	root.left = left.right
	left.right = root
	root.fixHeight()
	left.fixHeight()
	return left
}

// insert adds val below root and returns the new subtree root. Inserting a
// value that is already present leaves the tree untouched, so the flattened
// result is always duplicate free.
func insert(root *avlNode, val uint32) *avlNode {
	if root == nil {
		return newAvlNode(val)
	}

	if val > root.val {
		root.right = insert(root.right, val)
	} else if val < root.val {
		root.left = insert(root.left, val)
	} else {
		return root
	}

	root.fixHeight()
	switch bal := root.balance(); {
	case bal > 1:
		if val < root.left.val {
			root = rightRotate(root)
		} else {
			root.left = leftRotate(root.left)
			root = rightRotate(root)
		}
	case bal < -1:
		if val > root.right.val {
			root = leftRotate(root)
		} else {
			root.right = rightRotate(root.right)
			root = leftRotate(root)
		}
	}
	return root
}

// treeSize counts the nodes, used to size the flatten buffer.
func treeSize(root *avlNode) int {
	if root == nil {
		return 0
	}
	return treeSize(root.left) + treeSize(root.right) + 1
}

// inorder writes the subtree's values into arr starting at index i and
// returns the index one past the last element written. An in-order walk of
// a BST is ascending by construction.
func inorder(root *avlNode, arr []uint32, i int) int {
	if root == nil {
		return i
	}
	i = inorder(root.left, arr, i)
	arr[i] = root.val
	i++
	return inorder(root.right, arr, i)
}

// flatten drains the tree into a fresh canonical slice.
func flatten(root *avlNode) []uint32 {
	n := treeSize(root)
	arr := make([]uint32, n)
	inorder(root, arr, 0)
	return arr
}
