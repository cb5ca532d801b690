/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package rangeset

/*****************************************************************************************************************/

import (
	"fmt"
	"reflect"
	"testing"
)

/*****************************************************************************************************************/

func TestRangeSetAppendMergesAdjacent(t *testing.T) {
	r := New()

	r.Append(0, 3)
	r.Append(3, 5)
	r.Append(7, 9)

	if r.Count() != 2 {
		t.Fatalf("expected 2 intervals, got %d", r.Count())
	}

	lo, hi := r.IntervalAt(0)
	if lo != 0 || hi != 5 {
		t.Errorf("expected first interval [0,5), got [%d,%d)", lo, hi)
	}

	lo, hi = r.IntervalAt(1)
	if lo != 7 || hi != 9 {
		t.Errorf("expected second interval [7,9), got [%d,%d)", lo, hi)
	}
}

/*****************************************************************************************************************/

func TestRangeSetAddMergesOverlapping(t *testing.T) {
	r := New()

	r.Add(0, 3)
	r.Add(10, 14)
	r.Add(2, 11)

	if r.Count() != 1 {
		t.Fatalf("expected intervals to merge into 1, got %d", r.Count())
	}

	lo, hi := r.IntervalAt(0)
	if lo != 0 || hi != 14 {
		t.Errorf("expected merged interval [0,14), got [%d,%d)", lo, hi)
	}
}

/*****************************************************************************************************************/

func TestRangeSetContains(t *testing.T) {
	r := NewFromPairs([][2]int64{{0, 3}, {7, 9}})

	cases := map[int64]bool{
		-1: false,
		0:  true,
		2:  true,
		3:  false,
		6:  false,
		7:  true,
		8:  true,
		9:  false,
	}

	for v, want := range cases {
		t.Run(fmt.Sprintf("v=%d", v), func(t *testing.T) {
			if got := r.Contains(v); got != want {
				t.Errorf("Contains(%d) = %v, want %v", v, got, want)
			}
		})
	}
}

/*****************************************************************************************************************/

func TestRangeSetNpix(t *testing.T) {
	r := NewFromPairs([][2]int64{{0, 3}, {10, 15}})

	if got := r.Npix(); got != 8 {
		t.Errorf("Npix() = %d, want 8", got)
	}
}

/*****************************************************************************************************************/

func TestRangeSetUnion(t *testing.T) {
	a := NewFromPairs([][2]int64{{0, 3}, {10, 15}})
	b := NewFromPairs([][2]int64{{2, 4}, {20, 22}})

	got := Union(a, b).ToSlice()
	want := []int64{0, 1, 2, 3, 10, 11, 12, 13, 14, 20, 21}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestRangeSetIntersection(t *testing.T) {
	a := NewFromPairs([][2]int64{{0, 10}})
	b := NewFromPairs([][2]int64{{5, 8}, {9, 20}})

	got := Intersection(a, b).ToSlice()
	want := []int64{5, 6, 7, 9}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Intersection = %v, want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestRangeSetDifference(t *testing.T) {
	a := NewFromPairs([][2]int64{{0, 10}})
	b := NewFromPairs([][2]int64{{3, 5}, {7, 8}})

	got := Difference(a, b).ToSlice()
	want := []int64{0, 1, 2, 5, 6, 8, 9}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Difference = %v, want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestRangeSetIsEmpty(t *testing.T) {
	r := New()

	if !r.IsEmpty() {
		t.Errorf("expected new RangeSet to be empty")
	}

	r.AppendSingle(5)

	if r.IsEmpty() {
		t.Errorf("expected RangeSet to be non-empty after AppendSingle")
	}
}

/*****************************************************************************************************************/
