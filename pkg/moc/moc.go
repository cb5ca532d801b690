/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package moc implements a Multi-Order Coverage map: a set of sky pixels, collapsed to a
// RangeSet of NEST pixel identifiers at a single fixed maximum resolution.
package moc

/*****************************************************************************************************************/

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// MOC is a coverage map at a fixed maximum order: every pixel it stores is a NEST pixel id at
// NsideMax. Lower-resolution input (either NUNIQ identifiers or explicit ranges) is expanded
// up to NsideMax on construction, per spec.
type MOC struct {
	OrderMax int64
	NsideMax int64
	Pixels   *rangeset.RangeSet
}

/*****************************************************************************************************************/

// New returns an empty MOC at the given maximum order.
func New(orderMax int64) (*MOC, error) {
	if orderMax < 0 || orderMax > 29 {
		return nil, fmt.Errorf("%w: orderMax %d is not within [0, 29]", healpix.ErrOutOfRange, orderMax)
	}

	return &MOC{
		OrderMax: orderMax,
		NsideMax: int64(1) << uint(orderMax),
		Pixels:   rangeset.New(),
	}, nil
}

/*****************************************************************************************************************/

// NewFromNUNIQ builds a MOC at orderMax from a flat array of NUNIQ identifiers. Each nuniq n
// decodes to (order, ipix) = (floor(log2(n/4) / 2), n - 4*4^order), which expands to the
// half-open pixel interval [ipix*4^(orderMax-order), (ipix+1)*4^(orderMax-order)) at
// NsideMax, then is inserted via Add. The NUNIQ decoding ambiguity noted against the original
// source is resolved exactly this way; see DESIGN.md.
func NewFromNUNIQ(orderMax int64, nuniq []int64) (*MOC, error) {
	m, err := New(orderMax)
	if err != nil {
		return nil, err
	}

	for _, n := range nuniq {
		order, ipix, err := decodeNUNIQ(n)
		if err != nil {
			return nil, err
		}

		if order > orderMax {
			return nil, fmt.Errorf("%w: nuniq %d has order %d exceeding orderMax %d", healpix.ErrOutOfRange, n, order, orderMax)
		}

		shift := orderMax - order
		scale := int64(1) << uint(2*shift)

		lo := ipix * scale
		hi := lo + scale

		m.Pixels.Add(lo, hi)
	}

	return m, nil
}

/*****************************************************************************************************************/

// NewFromRanges builds a MOC at orderMax from explicit [lo, hi) pixel-id pairs already at
// NsideMax, appended in order via Add.
func NewFromRanges(orderMax int64, ranges [][2]int64) (*MOC, error) {
	m, err := New(orderMax)
	if err != nil {
		return nil, err
	}

	for _, p := range ranges {
		m.Pixels.Add(p[0], p[1])
	}

	return m, nil
}

/*****************************************************************************************************************/

// decodeNUNIQ recovers (order, ipix) from a single NUNIQ identifier.
func decodeNUNIQ(nuniq int64) (order, ipix int64, err error) {
	if nuniq < 4 {
		return 0, 0, fmt.Errorf("%w: nuniq %d must be >= 4", healpix.ErrOutOfRange, nuniq)
	}

	// 4*4^order <= nuniq < 16*4^order, so nuniq has 2*order+3 or 2*order+4 significant bits.
	order = int64(bits.Len64(uint64(nuniq))-3) / 2
	ipix = nuniq - 4*(int64(1)<<uint(2*order))

	return order, ipix, nil
}

/*****************************************************************************************************************/

// EncodeNUNIQ is the inverse of decodeNUNIQ: nuniq = 4*4^order + ipix.
func EncodeNUNIQ(order, ipix int64) int64 {
	return 4*(int64(1)<<uint(2*order)) + ipix
}

/*****************************************************************************************************************/

// NUNIQs returns the NUNIQ identifier of every pixel this MOC holds at NsideMax. It does not
// attempt to coalesce sibling quads back into a coarser-order NUNIQ (a "degrade" operation
// outside this spec's scope); every entry is at OrderMax.
func (m *MOC) NUNIQs() []int64 {
	out := make([]int64, 0, m.Pixels.Npix())

	for _, ipix := range m.Pixels.ToSlice() {
		out = append(out, EncodeNUNIQ(m.OrderMax, ipix))
	}

	return out
}

/*****************************************************************************************************************/

// ContainsPos reports, for each position (a[i], b[i]), whether its NEST pixel at NsideMax
// lies within the MOC. When lonlat is true, a/b are (longitude, latitude) pairs, in degrees
// if degrees is true or radians otherwise; when lonlat is false, a/b are (theta, phi) in
// radians directly.
func (m *MOC) ContainsPos(a, b []float64, lonlat, degrees bool) ([]bool, error) {
	if len(a) != len(b) {
		return nil, healpix.ErrShapeMismatch
	}

	hpx, err := healpix.NewHealpixInfo(m.NsideMax, healpix.NEST)
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(a))

	for i := range a {
		theta, phi := a[i], b[i]

		if lonlat {
			var err error

			theta, phi, err = healpix.LonLatToThetaPhi(a[i], b[i], degrees)
			if err != nil {
				return nil, err
			}
		}

		pix, err := healpix.Ang2Pix(hpx, theta, phi)
		if err != nil {
			return nil, err
		}

		out[i] = m.Pixels.Contains(pix)
	}

	return out, nil
}

/*****************************************************************************************************************/

// Union returns a new MOC holding every pixel present in m or other. Both must share the same
// OrderMax.
func Union(m, other *MOC) (*MOC, error) {
	if m.OrderMax != other.OrderMax {
		return nil, fmt.Errorf("%w: orderMax %d != %d", healpix.ErrShapeMismatch, m.OrderMax, other.OrderMax)
	}

	return &MOC{OrderMax: m.OrderMax, NsideMax: m.NsideMax, Pixels: rangeset.Union(m.Pixels, other.Pixels)}, nil
}

/*****************************************************************************************************************/

// Intersection returns a new MOC holding every pixel present in both m and other.
func Intersection(m, other *MOC) (*MOC, error) {
	if m.OrderMax != other.OrderMax {
		return nil, fmt.Errorf("%w: orderMax %d != %d", healpix.ErrShapeMismatch, m.OrderMax, other.OrderMax)
	}

	return &MOC{OrderMax: m.OrderMax, NsideMax: m.NsideMax, Pixels: rangeset.Intersection(m.Pixels, other.Pixels)}, nil
}

/*****************************************************************************************************************/

// String returns a bounded-size textual summary: the first ten and last ten intervals, with a
// "..." marker in between when truncated, rather than the full buffer (per the original
// source's unbounded repr, flagged in DESIGN.md as a defect not to mirror).
func (m *MOC) String() string {
	n := m.Pixels.Count()

	var b strings.Builder

	fmt.Fprintf(&b, "MOC(order_max=%d, nside_max=%d, intervals=%d, npix=%d){", m.OrderMax, m.NsideMax, n, m.Pixels.Npix())

	const bound = 10

	writeInterval := func(i int) {
		lo, hi := m.Pixels.IntervalAt(i)
		fmt.Fprintf(&b, "[%d,%d)", lo, hi)
	}

	switch {
	case n <= 2*bound:
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(", ")
			}

			writeInterval(i)
		}
	default:
		for i := 0; i < bound; i++ {
			if i > 0 {
				b.WriteString(", ")
			}

			writeInterval(i)
		}

		b.WriteString(", ..., ")

		for i := n - bound; i < n; i++ {
			if i > n-bound {
				b.WriteString(", ")
			}

			writeInterval(i)
		}
	}

	b.WriteString("}")

	return b.String()
}

/*****************************************************************************************************************/
