package set

// IntSet is an immutable set of unsigned 32-bit integers. The canonical
// representation is a strictly ascending, duplicate-free slice; two equal
// sets therefore always carry pointwise identical slices, so equality never
// needs set semantics. Every operation returns a new IntSet and never
// mutates its operands, which makes values safe to share across goroutines
// without locks.
type IntSet struct {
	elems []uint32
}

// Empty is the canonical empty set.
var Empty = &IntSet{}

// New builds an IntSet from arbitrary elements: duplicates collapse and the
// result is ascending regardless of input order.
func New(elems ...uint32) *IntSet {
	if len(elems) == 0 {
		return Empty
	}
	var root *avlNode
	for _, e := range elems {
		root = insert(root, e)
	}
	return &IntSet{elems: flatten(root)}
}

// FromSorted wraps a slice that is already strictly ascending and duplicate
// free, taking ownership of it. Callers that cannot guarantee canonical
// input must use New instead.
func FromSorted(elems []uint32) *IntSet {
	if len(elems) == 0 {
		return Empty
	}
	return &IntSet{elems: elems}
}

// Cardinality returns the number of elements.
func (s *IntSet) Cardinality() uint32 {
	return uint32(len(s.elems))
}

// Elems returns a copy of the element slice in ascending order.
func (s *IntSet) Elems() []uint32 {
	out := make([]uint32, len(s.elems))
	copy(out, s.elems)
	return out
}

// At returns the i-th smallest element.
func (s *IntSet) At(i int) uint32 {
	return s.elems[i]
}

// Contains reports whether x is an element of s.
func (s *IntSet) Contains(x uint32) bool {
	return search(s.elems, x)
}

// search is a binary search over a canonical slice.
func search(elems []uint32, target uint32) bool {
	lo, hi := 0, len(elems)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case elems[mid] == target:
			return true
		case elems[mid] > target:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return false
}

// Equal reports whether a and b hold exactly the same elements. Canonical
// order makes this a length check plus one pointwise pass.
func (a *IntSet) Equal(b *IntSet) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (a *IntSet) NotEqual(b *IntSet) bool {
	return !a.Equal(b)
}

// ContainsAll reports whether a is a superset of b.
func (a *IntSet) ContainsAll(b *IntSet) bool {
	if a.Cardinality() < b.Cardinality() {
		return false
	}
	for _, e := range b.elems {
		if !search(a.elems, e) {
			return false
		}
	}
	return true
}

// ContainsOnly reports whether a is a subset of b.
func (a *IntSet) ContainsOnly(b *IntSet) bool {
	if a.Cardinality() > b.Cardinality() {
		return false
	}
	for _, e := range a.elems {
		if !search(b.elems, e) {
			return false
		}
	}
	return true
}

// Union returns the set of elements present in a or b. Both operands are
// poured into one construction tree, so shared elements collapse.
func (a *IntSet) Union(b *IntSet) *IntSet {
	if len(a.elems) == 0 && len(b.elems) == 0 {
		return Empty
	}
	var root *avlNode
	for _, e := range a.elems {
		root = insert(root, e)
	}
	for _, e := range b.elems {
		root = insert(root, e)
	}
	return &IntSet{elems: flatten(root)}
}

// Intersection returns the set of elements present in both a and b. The
// smaller operand is probed against the larger, so the work is
// O(min*log(max)). Operands are already unique, so no duplicate ever
// reaches the tree.
func (a *IntSet) Intersection(b *IntSet) *IntSet {
	if len(a.elems) == 0 || len(b.elems) == 0 {
		return Empty
	}
	small, large := a.elems, b.elems
	if len(small) > len(large) {
		small, large = large, small
	}
	var root *avlNode
	for _, e := range small {
		if search(large, e) {
			root = insert(root, e)
		}
	}
	return fromTree(root)
}

// Difference returns the elements of a that are not in b.
func (a *IntSet) Difference(b *IntSet) *IntSet {
	if len(a.elems) == 0 {
		return Empty
	}
	var root *avlNode
	for _, e := range a.elems {
		if !search(b.elems, e) {
			root = insert(root, e)
		}
	}
	return fromTree(root)
}

// SymmetricDifference returns the elements present in exactly one of a and
// b: both one-sided differences collected into a single tree.
func (a *IntSet) SymmetricDifference(b *IntSet) *IntSet {
	if a.Equal(b) {
		return Empty
	}
	var root *avlNode
	for _, e := range a.elems {
		if !search(b.elems, e) {
			root = insert(root, e)
		}
	}
	for _, e := range b.elems {
		if !search(a.elems, e) {
			root = insert(root, e)
		}
	}
	return fromTree(root)
}

func fromTree(root *avlNode) *IntSet {
	if root == nil {
		return Empty
	}
	return &IntSet{elems: flatten(root)}
}
