package containers

// Difference computes the set difference lhs \ rhs in O(n+m) time, where
// n = len(lhs) and m = len(rhs). Both slices must be sorted ascending with
// distinct elements; the result preserves that invariant.
func Difference(lhs, rhs []int) []int {
	size := len(lhs)
	if len(rhs) > size {
		size = len(rhs)
	}
	result := make([]int, 0, size)

	var i, j int
	for i < len(lhs) && j < len(rhs) {
		switch {
		case lhs[i] == rhs[j]:
			i++
			j++
		case lhs[i] < rhs[j]:
			result = append(result, lhs[i])
			i++
		default:
			j++
		}
	}
	result = append(result, lhs[i:]...)

	return result
}

// Intersection computes the set intersection of lhs and rhs in O(n+m) time.
// Both slices must be sorted ascending with distinct elements.
func Intersection(lhs, rhs []int) []int {
	size := len(lhs)
	if len(rhs) > size {
		size = len(rhs)
	}
	result := make([]int, 0, size)

	var i, j int
	for i < len(lhs) && j < len(rhs) {
		switch {
		case lhs[i] == rhs[j]:
			result = append(result, lhs[i])
			i++
			j++
		case lhs[i] < rhs[j]:
			i++
		default:
			j++
		}
	}

	return result
}

// InsertSorted inserts v into the ascending, distinct-element slice s and
// returns the updated slice. It is a no-op if v is already present.
// Complexity: O(n).
func InsertSorted(s []int, v int) []int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && s[lo] == v {
		return s
	}
	s = append(s, 0)
	copy(s[lo+1:], s[lo:len(s)-1])
	s[lo] = v

	return s
}

// RemoveSorted removes v from the ascending, distinct-element slice s and
// returns the updated slice. It is a no-op if v is absent.
// Complexity: O(n).
func RemoveSorted(s []int, v int) []int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(s) || s[lo] != v {
		return s
	}

	return append(s[:lo], s[lo+1:]...)
}

// ContainsSorted reports whether v is present in the ascending, distinct
// element slice s. Complexity: O(log n).
func ContainsSorted(s []int, v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else if s[mid] > v {
			hi = mid
		} else {
			return true
		}
	}

	return false
}
