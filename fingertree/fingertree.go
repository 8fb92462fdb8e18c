// Package fingertree implements a persistent 2-3 finger tree, the sequence
// representation dacite spec §4.7/§9 names for `vector` (value.String and
// value.Blob fold over their runes/bytes directly and do not use it): a
// value.Vector's hash folds over Iter() order, which
// is always insertion order regardless of how the tree happens to be
// shaped internally (spec invariant 6 — "never on internal tree shape").
//
// This is the classic Hinze/Paterson construction: Empty, Single, or Deep
// with a 1-4 element Digit at each end and a recursively nested tree of
// 2-3 Nodes in the middle. Structural sharing falls out of treating every
// mutation as producing new nodes rather than touching existing ones.
package fingertree

// Tree is a persistent sequence of T. The zero value is not meaningful;
// use Empty.
type Tree[T any] struct {
	kind  kind
	value T
	deep  *deep[T]
}

type kind uint8

const (
	kindEmpty kind = iota
	kindSingle
	kindDeep
)

type deep[T any] struct {
	left  []T
	mid   *Tree[node[T]]
	right []T
}

// node groups 2 or 3 elements into a single middle-tree element, which is
// how a finger tree keeps its depth logarithmic in element count.
type node[T any] struct {
	items []T
}

// Empty returns the empty tree.
func Empty[T any]() *Tree[T] {
	return &Tree[T]{kind: kindEmpty}
}

func single[T any](v T) *Tree[T] {
	return &Tree[T]{kind: kindSingle, value: v}
}

func deepTree[T any](left []T, mid *Tree[node[T]], right []T) *Tree[T] {
	return &Tree[T]{kind: kindDeep, deep: &deep[T]{left: left, mid: mid, right: right}}
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.kind == kindEmpty
}

// PushFront returns a new tree with v prepended.
func (t *Tree[T]) PushFront(v T) *Tree[T] {
	switch t.kind {
	case kindEmpty:
		return single(v)
	case kindSingle:
		return deepTree([]T{v}, Empty[node[T]](), []T{t.value})
	default:
		left := t.deep.left
		if len(left) < 4 {
			newLeft := make([]T, 0, len(left)+1)
			newLeft = append(newLeft, v)
			newLeft = append(newLeft, left...)
			return deepTree(newLeft, t.deep.mid, t.deep.right)
		}
		b, c, d, e := left[0], left[1], left[2], left[3]
		newMid := t.deep.mid.PushFront(node[T]{items: []T{c, d, e}})
		return deepTree([]T{v, b}, newMid, t.deep.right)
	}
}

// PushBack returns a new tree with v appended. This is the operation a
// sequence constructor exercises on every element (§4.7's fold walks the
// result in the same order elements were pushed).
func (t *Tree[T]) PushBack(v T) *Tree[T] {
	switch t.kind {
	case kindEmpty:
		return single(v)
	case kindSingle:
		return deepTree([]T{t.value}, Empty[node[T]](), []T{v})
	default:
		right := t.deep.right
		if len(right) < 4 {
			newRight := make([]T, 0, len(right)+1)
			newRight = append(newRight, right...)
			newRight = append(newRight, v)
			return deepTree(t.deep.left, t.deep.mid, newRight)
		}
		b, c, d, e := right[0], right[1], right[2], right[3]
		newMid := t.deep.mid.PushBack(node[T]{items: []T{b, c, d}})
		return deepTree(t.deep.left, newMid, []T{e, v})
	}
}

// PopFront returns the first element, the remaining tree, and true, or the
// zero value, t, and false if t is empty.
func (t *Tree[T]) PopFront() (v T, rest *Tree[T], ok bool) {
	switch t.kind {
	case kindEmpty:
		var zero T
		return zero, t, false
	case kindSingle:
		return t.value, Empty[T](), true
	default:
		left := t.deep.left
		x := left[0]
		if len(left) > 1 {
			return x, deepTree(append([]T{}, left[1:]...), t.deep.mid, t.deep.right), true
		}
		midFirst, midRest, midOK := t.deep.mid.PopFront()
		if midOK {
			return x, deepTree(midFirst.items, midRest, t.deep.right), true
		}
		return x, digitToTree(t.deep.right), true
	}
}

// PopBack is the mirror of PopFront on the tail end.
func (t *Tree[T]) PopBack() (v T, rest *Tree[T], ok bool) {
	switch t.kind {
	case kindEmpty:
		var zero T
		return zero, t, false
	case kindSingle:
		return t.value, Empty[T](), true
	default:
		right := t.deep.right
		x := right[len(right)-1]
		if len(right) > 1 {
			return x, deepTree(t.deep.left, t.deep.mid, append([]T{}, right[:len(right)-1]...)), true
		}
		midLast, midRest, midOK := t.deep.mid.PopBack()
		if midOK {
			return x, deepTree(t.deep.left, midRest, midLast.items), true
		}
		return x, digitToTree(t.deep.left), true
	}
}

func digitToTree[T any](d []T) *Tree[T] {
	t := Empty[T]()
	for i := len(d) - 1; i >= 0; i-- {
		t = t.PushFront(d[i])
	}
	return t
}

// Concat returns a new tree containing a's elements followed by b's,
// using the standard finger-tree "app3" merge: the digits facing the seam
// are regrouped into middle-tree nodes instead of rebuilding either side
// element-by-element.
func Concat[T any](a, b *Tree[T]) *Tree[T] {
	return app3(a, nil, b)
}

func app3[T any](a *Tree[T], ts []T, b *Tree[T]) *Tree[T] {
	switch {
	case a.kind == kindEmpty:
		return prependAll(ts, b)
	case b.kind == kindEmpty:
		return appendAll(a, ts)
	case a.kind == kindSingle:
		return prependAll(ts, b).PushFront(a.value)
	case b.kind == kindSingle:
		return appendAll(a, ts).PushBack(b.value)
	default:
		seam := make([]T, 0, len(a.deep.right)+len(ts)+len(b.deep.left))
		seam = append(seam, a.deep.right...)
		seam = append(seam, ts...)
		seam = append(seam, b.deep.left...)
		newMid := app3(a.deep.mid, toNodes(seam), b.deep.mid)
		return deepTree(a.deep.left, newMid, b.deep.right)
	}
}

func prependAll[T any](xs []T, t *Tree[T]) *Tree[T] {
	for i := len(xs) - 1; i >= 0; i-- {
		t = t.PushFront(xs[i])
	}
	return t
}

func appendAll[T any](t *Tree[T], xs []T) *Tree[T] {
	for _, x := range xs {
		t = t.PushBack(x)
	}
	return t
}

// toNodes groups a flat run of elements into 2-3 element Nodes, splitting
// trailing runs of 4 or 5 as 2+2 / 3+2 so no group is left with only 1.
func toNodes[T any](xs []T) []node[T] {
	var out []node[T]
	i := 0
	for n := len(xs); n-i >= 2; {
		switch n - i {
		case 2:
			out = append(out, node[T]{items: []T{xs[i], xs[i+1]}})
			i += 2
		case 4:
			out = append(out, node[T]{items: []T{xs[i], xs[i+1]}})
			i += 2
		default:
			out = append(out, node[T]{items: []T{xs[i], xs[i+1], xs[i+2]}})
			i += 3
		}
	}
	return out
}

// Split divides the tree at index i into (elements before i, elements
// from i on). Implemented over Iter/PushBack rather than the measured,
// predicate-driven split of the classical structure: index-aware
// splitting isn't on any path a value hash depends on, so the simpler
// O(n) version is what's exercised.
func (t *Tree[T]) Split(i int) (*Tree[T], *Tree[T]) {
	items := t.Iter()
	if i < 0 {
		i = 0
	}
	if i > len(items) {
		i = len(items)
	}
	left, right := Empty[T](), Empty[T]()
	for _, x := range items[:i] {
		left = left.PushBack(x)
	}
	for _, x := range items[i:] {
		right = right.PushBack(x)
	}
	return left, right
}

// Iter returns the tree's elements in order.
func (t *Tree[T]) Iter() []T {
	out := make([]T, 0)
	cur := t
	for {
		v, rest, ok := cur.PopFront()
		if !ok {
			break
		}
		out = append(out, v)
		cur = rest
	}
	return out
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return len(t.Iter())
}

// FromSlice builds a tree from xs in order.
func FromSlice[T any](xs []T) *Tree[T] {
	t := Empty[T]()
	for _, x := range xs {
		t = t.PushBack(x)
	}
	return t
}
