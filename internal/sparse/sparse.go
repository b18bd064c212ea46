// Package sparse provides the candidate set used by the tracker: a sparse set
// of start offsets with O(1) insertion, membership testing and clearing, and
// insertion-ordered iteration over a dense array.
//
// Offsets are keyed modulo the set's window. A scan never holds two live
// candidates that are a full window apart, so live keys never collide and the
// set needs only window slots no matter how long the subject is.
package sparse

// Set is a set of non-negative offsets.
type Set struct {
	sparse []uint32 // slot -> index in dense
	dense  []int    // live offsets, insertion order
	window int
}

// New creates a set able to hold offsets that lie within a span of window.
// A window below 1 is treated as 1.
func New(window int) *Set {
	if window < 1 {
		window = 1
	}
	return &Set{
		sparse: make([]uint32, window),
		dense:  make([]int, 0, window),
		window: window,
	}
}

func (s *Set) slot(v int) int {
	return v % s.window
}

// Insert adds v to the set. Inserting a present value is a no-op.
// Panics if v is negative or another live value occupies v's slot.
func (s *Set) Insert(v int) {
	if v < 0 {
		panic("sparse: negative offset")
	}
	slot := s.slot(v)
	idx := s.sparse[slot]
	if int(idx) < len(s.dense) && s.slot(s.dense[idx]) == slot {
		if s.dense[idx] == v {
			return
		}
		panic("sparse: offset outside window")
	}

	//nolint:gosec // G115: len(dense) <= window, which fits in uint32 for any realistic pattern
	s.sparse[slot] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 {
		return false
	}
	idx := s.sparse[s.slot(v)]
	return int(idx) < len(s.dense) && s.dense[idx] == v
}

// Clear removes all elements in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []int {
	return s.dense
}

// Sets is a pair of sets used as a double buffer: one scan step reads Cur
// and writes survivors into Next, then calls Swap.
type Sets struct {
	Cur  *Set
	Next *Set
}

// NewSets creates a double buffer of two sets sharing the same window.
func NewSets(window int) *Sets {
	return &Sets{
		Cur:  New(window),
		Next: New(window),
	}
}

// Swap makes Next the current set and leaves an empty Next.
func (ss *Sets) Swap() {
	ss.Cur, ss.Next = ss.Next, ss.Cur
	ss.Next.Clear()
}
