package containers

// RangeSet is a dense set over the fixed universe [0,R). It keeps members in
// a contiguous slice plus a position table so insert, contains, remove, and
// indexed access are all O(1). Removal is implemented via swap-with-last, so
// iteration order is insertion order only until the first removal disturbs it.
type RangeSet struct {
	members []int // dense member list
	pos     []int // pos[v] = index into members, or -1 if v is absent
}

// NewRangeSet returns an empty RangeSet over the universe [0,universeSize).
func NewRangeSet(universeSize int) *RangeSet {
	pos := make([]int, universeSize)
	for i := range pos {
		pos[i] = -1
	}

	return &RangeSet{
		members: make([]int, 0, universeSize),
		pos:     pos,
	}
}

// NewRangeSetFrom builds a RangeSet over universe [0,universeSize) already
// containing every value in vs. Values in vs must be distinct and in range.
func NewRangeSetFrom(universeSize int, vs []int) *RangeSet {
	rs := NewRangeSet(universeSize)
	for _, v := range vs {
		rs.Insert(v)
	}

	return rs
}

// Insert adds v to the set. Returns true if v was newly added, false if it
// was already a member. Complexity: O(1).
func (rs *RangeSet) Insert(v int) bool {
	if rs.pos[v] != -1 {
		return false
	}
	rs.pos[v] = len(rs.members)
	rs.members = append(rs.members, v)

	return true
}

// Contains reports whether v is a member. Complexity: O(1).
func (rs *RangeSet) Contains(v int) bool {
	return rs.pos[v] != -1
}

// Remove deletes v from the set via swap-with-last. Returns true if v was
// present. Complexity: O(1).
func (rs *RangeSet) Remove(v int) bool {
	idx := rs.pos[v]
	if idx == -1 {
		return false
	}

	last := rs.members[len(rs.members)-1]
	rs.members[idx] = last
	rs.pos[last] = idx

	rs.members = rs.members[:len(rs.members)-1]
	rs.pos[v] = -1

	return true
}

// Len returns the number of members. Complexity: O(1).
func (rs *RangeSet) Len() int {
	return len(rs.members)
}

// At returns the member stored at dense index i, for 0 <= i < rs.Len().
// Complexity: O(1).
func (rs *RangeSet) At(i int) int {
	return rs.members[i]
}

// Members returns the dense member slice. Callers must not mutate it.
func (rs *RangeSet) Members() []int {
	return rs.members
}

// Slice returns a freshly allocated copy of the members, safe to mutate.
func (rs *RangeSet) Slice() []int {
	out := make([]int, len(rs.members))
	copy(out, rs.members)

	return out
}
