/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package rangeset

/*****************************************************************************************************************/

import "sort"

/*****************************************************************************************************************/

// RangeSet is a sorted, disjoint set of non-negative integers, stored as a single
// contiguous slice of half-open interval endpoints: r.bounds[2*i], r.bounds[2*i+1] is the
// i'th interval [lo, hi). Intervals never touch or overlap; adjacent intervals are always
// merged on insertion.
type RangeSet struct {
	bounds []int64
}

/*****************************************************************************************************************/

// New returns an empty RangeSet.
func New() *RangeSet {
	return &RangeSet{}
}

/*****************************************************************************************************************/

// NewFromPairs builds a RangeSet from a caller-supplied (lo, hi) pair list. Pairs need not
// be sorted or disjoint; they are normalised by repeated Add.
func NewFromPairs(pairs [][2]int64) *RangeSet {
	r := New()

	for _, p := range pairs {
		r.Add(p[0], p[1])
	}

	return r
}

/*****************************************************************************************************************/

// Count returns the number of disjoint intervals currently stored.
func (r *RangeSet) Count() int {
	return len(r.bounds) / 2
}

/*****************************************************************************************************************/

// IntervalAt returns the i'th interval as [lo, hi).
func (r *RangeSet) IntervalAt(i int) (lo, hi int64) {
	return r.bounds[2*i], r.bounds[2*i+1]
}

/*****************************************************************************************************************/

// Npix returns the total number of integers covered by all intervals.
func (r *RangeSet) Npix() int64 {
	var total int64

	for i := 0; i < r.Count(); i++ {
		lo, hi := r.IntervalAt(i)
		total += hi - lo
	}

	return total
}

/*****************************************************************************************************************/

// IsEmpty reports whether the set holds no values.
func (r *RangeSet) IsEmpty() bool {
	return len(r.bounds) == 0
}

/*****************************************************************************************************************/

// iiv performs a binary search over the endpoint buffer and returns the index of the first
// endpoint strictly greater than v (the standard "insertion point" for v, per sort.Search).
func (r *RangeSet) iiv(v int64) int {
	return sort.Search(len(r.bounds), func(i int) bool {
		return r.bounds[i] > v
	})
}

/*****************************************************************************************************************/

// AppendSingle appends a single value v, which must be >= every value already present
// (the RangeSet's fast path for building a set by scanning values in increasing order).
// Adjacent to the last interval, v extends it in place; otherwise a new singleton interval
// is appended.
func (r *RangeSet) AppendSingle(v int64) {
	r.Append(v, v+1)
}

/*****************************************************************************************************************/

// Append inserts the half-open interval [lo, hi) in increasing order (lo must be >= the
// high endpoint of the last interval already present, minus merging at the boundary). It
// is the cheap O(1)-amortised append used when the caller already produces intervals in
// sorted order, e.g. scanning pixel ids of a single ring.
func (r *RangeSet) Append(lo, hi int64) {
	if hi <= lo {
		return
	}

	n := len(r.bounds)

	if n > 0 && lo <= r.bounds[n-1] {
		if hi > r.bounds[n-1] {
			r.bounds[n-1] = hi
		}

		return
	}

	r.bounds = append(r.bounds, lo, hi)
}

/*****************************************************************************************************************/

// Add inserts the half-open interval [lo, hi) at its correct sorted position, merging with
// any overlapping or adjacent intervals. Unlike Append, lo may be less than values already
// present.
func (r *RangeSet) Add(lo, hi int64) {
	if hi <= lo {
		return
	}

	i := r.iiv(lo)
	if i > 0 && i%2 == 0 && r.bounds[i-1] == lo {
		// lo exactly abuts the end of the preceding interval; treat it as inside so the two
		// intervals coalesce instead of leaving a touching [..., lo, lo, ...] pair.
		i--
	}
	// i is even when lo falls strictly between two intervals (or before the first / after
	// the last); odd when lo falls inside an existing interval, or exactly abuts one's end.
	startIsInside := i%2 == 1

	j := r.iiv(hi)
	if j < len(r.bounds) && j%2 == 0 && r.bounds[j] == hi {
		// hi exactly abuts the start of the following interval; fold it in for the same reason.
		j++
	}
	endIsInside := j%2 == 1

	newLo, newHi := lo, hi

	if startIsInside {
		newLo = r.bounds[i-1]
	}

	if endIsInside {
		newHi = r.bounds[j]
	}

	left := i
	if startIsInside {
		left = i - 1
	}

	right := j
	if endIsInside {
		right = j + 1
	}

	replacement := make([]int64, 0, len(r.bounds)-(right-left)+2)
	replacement = append(replacement, r.bounds[:left]...)
	replacement = append(replacement, newLo, newHi)
	replacement = append(replacement, r.bounds[right:]...)

	r.bounds = replacement
}

/*****************************************************************************************************************/

// Contains reports whether v lies within some interval of the set.
func (r *RangeSet) Contains(v int64) bool {
	return r.iiv(v)%2 == 1
}

/*****************************************************************************************************************/

// ToSlice expands the set into an explicit, sorted, duplicate-free slice of its members.
// Intended for small sets (tests, debugging); large sets should iterate IntervalAt instead.
func (r *RangeSet) ToSlice() []int64 {
	out := make([]int64, 0, r.Npix())

	for i := 0; i < r.Count(); i++ {
		lo, hi := r.IntervalAt(i)

		for v := lo; v < hi; v++ {
			out = append(out, v)
		}
	}

	return out
}

/*****************************************************************************************************************/

// Union returns a new RangeSet holding every value present in r or in other (or both).
func Union(r, other *RangeSet) *RangeSet {
	out := New()

	events := mergeEvents(r, other)

	depth := 0

	var openAt int64

	for _, e := range events {
		before := depth

		if e.open {
			depth++
		} else {
			depth--
		}

		if before == 0 && depth == 1 {
			openAt = e.v
		}

		if before == 1 && depth == 0 {
			out.Append(openAt, e.v)
		}
	}

	return out
}

/*****************************************************************************************************************/

// Intersection returns a new RangeSet holding every value present in both r and other.
func Intersection(r, other *RangeSet) *RangeSet {
	out := New()

	events := mergeEvents(r, other)

	depth := 0

	var openAt int64

	for _, e := range events {
		before := depth

		if e.open {
			depth++
		} else {
			depth--
		}

		if before < 2 && depth == 2 {
			openAt = e.v
		}

		if before == 2 && depth < 2 {
			out.Append(openAt, e.v)
		}
	}

	return out
}

/*****************************************************************************************************************/

// Difference returns a new RangeSet holding every value present in r but not in other.
func Difference(r, other *RangeSet) *RangeSet {
	out := New()

	for i := 0; i < r.Count(); i++ {
		lo, hi := r.IntervalAt(i)
		cur := lo

		for j := 0; j < other.Count() && cur < hi; j++ {
			olo, ohi := other.IntervalAt(j)

			if ohi <= cur || olo >= hi {
				continue
			}

			if olo > cur {
				out.Append(cur, min64(olo, hi))
			}

			cur = max64(cur, ohi)
		}

		if cur < hi {
			out.Append(cur, hi)
		}
	}

	return out
}

/*****************************************************************************************************************/

type event struct {
	v    int64
	open bool
}

/*****************************************************************************************************************/

func mergeEvents(r, other *RangeSet) []event {
	events := make([]event, 0, len(r.bounds)+len(other.bounds))

	for i := 0; i < r.Count(); i++ {
		lo, hi := r.IntervalAt(i)
		events = append(events, event{lo, true}, event{hi, false})
	}

	for i := 0; i < other.Count(); i++ {
		lo, hi := other.IntervalAt(i)
		events = append(events, event{lo, true}, event{hi, false})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].v != events[j].v {
			return events[i].v < events[j].v
		}
		// process closes before opens at the same coordinate, so that adjacent
		// (touching) intervals from the two operands merge correctly under Union
		// and do not spuriously register depth 2 under Intersection.
		return !events[i].open && events[j].open
	})

	return events
}

/*****************************************************************************************************************/

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

/*****************************************************************************************************************/

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

/*****************************************************************************************************************/
