/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package batch implements the batched array driver: given scalar-or-array inputs, it
// computes the broadcast shape, allocates outputs of that shape, and fans the per-element
// core operations out across a bounded worker pool, reusing one HealpixInfo per distinct
// nside rather than rebuilding it for every element.
package batch

/*****************************************************************************************************************/

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/observerly/healpix/pkg/healpix"
)

/*****************************************************************************************************************/

// ThetaPhi is a single (theta, phi) batched output pair, in radians.
type ThetaPhi struct {
	Theta float64
	Phi   float64
}

/*****************************************************************************************************************/

// Interpolation is a single get_interpol batched output: the four bracketing pixels and
// their bilinear weights.
type Interpolation struct {
	Pix    [4]int64
	Weight [4]float64
}

/*****************************************************************************************************************/

// broadcastLen computes the elementwise-broadcast length of a set of input lengths: every
// length must be either 1 (broadcast) or equal to the longest length seen.
func broadcastLen(lens ...int) (int, error) {
	n := 1

	for _, l := range lens {
		if l > n {
			n = l
		}
	}

	for _, l := range lens {
		if l != 1 && l != n {
			return 0, healpix.ErrShapeMismatch
		}
	}

	return n, nil
}

/*****************************************************************************************************************/

func broadcastInt64(values []int64, n int) []int64 {
	if len(values) == n {
		return values
	}

	out := make([]int64, n)

	for i := range out {
		out[i] = values[0]
	}

	return out
}

/*****************************************************************************************************************/

func broadcastFloat64(values []float64, n int) []float64 {
	if len(values) == n {
		return values
	}

	out := make([]float64, n)

	for i := range out {
		out[i] = values[0]
	}

	return out
}

/*****************************************************************************************************************/

// buildInfoCache derives, once, a HealpixInfo for every distinct nside appearing in nsides,
// skipping re-derivation across runs of adjacent identical values (the fast path when nside
// is scalar or uniform across the batch).
func buildInfoCache(nsides []int64, scheme healpix.Scheme) (map[int64]*healpix.HealpixInfo, error) {
	cache := make(map[int64]*healpix.HealpixInfo)

	last := int64(-1)

	for _, n := range nsides {
		if n == last {
			continue
		}

		last = n

		if _, ok := cache[n]; ok {
			continue
		}

		hpx, err := healpix.NewHealpixInfo(n, scheme)
		if err != nil {
			return nil, err
		}

		cache[n] = hpx
	}

	return cache, nil
}

/*****************************************************************************************************************/

// runBatched fans fn out across a bounded worker pool, one call per output element, with
// GOMAXPROCS workers in flight at a time. A failing element aborts the remaining work and
// the first error is returned.
func runBatched[T any](n int, nsides []int64, cache map[int64]*healpix.HealpixInfo, fn func(hpx *healpix.HealpixInfo, i int) (T, error)) ([]T, error) {
	out := make([]T, n)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		i := i

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := fn(cache[nsides[i]], i)
			if err != nil {
				return err
			}

			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

/*****************************************************************************************************************/

// Ang2Pix batches ang2pix over nside, theta, and phi, each broadcastable against the
// longest. scheme applies to every element (a single output array cannot mix pixel
// orderings).
func Ang2Pix(scheme healpix.Scheme, nside []int64, theta, phi []float64) ([]int64, error) {
	n, err := broadcastLen(len(nside), len(theta), len(phi))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)
	thetas := broadcastFloat64(theta, n)
	phis := broadcastFloat64(phi, n)

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) (int64, error) {
		return healpix.Ang2Pix(hpx, thetas[i], phis[i])
	})
}

/*****************************************************************************************************************/

// Pix2Ang batches pix2ang over nside and pix.
func Pix2Ang(scheme healpix.Scheme, nside, pix []int64) ([]ThetaPhi, error) {
	n, err := broadcastLen(len(nside), len(pix))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)
	pixels := broadcastInt64(pix, n)

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) (ThetaPhi, error) {
		theta, phi, err := healpix.Pix2Ang(hpx, pixels[i])
		return ThetaPhi{Theta: theta, Phi: phi}, err
	})
}

/*****************************************************************************************************************/

// Vec2Pix batches vec2pix over nside and v.
func Vec2Pix(scheme healpix.Scheme, nside []int64, v []healpix.Vec3) ([]int64, error) {
	n, err := broadcastLen(len(nside), len(v))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)

	vectors := v
	if len(v) != n {
		vectors = make([]healpix.Vec3, n)

		for i := range vectors {
			vectors[i] = v[0]
		}
	}

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) (int64, error) {
		return healpix.Vec2Pix(hpx, vectors[i])
	})
}

/*****************************************************************************************************************/

// Pix2Vec batches pix2vec over nside and pix.
func Pix2Vec(scheme healpix.Scheme, nside, pix []int64) ([]healpix.Vec3, error) {
	n, err := broadcastLen(len(nside), len(pix))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)
	pixels := broadcastInt64(pix, n)

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) (healpix.Vec3, error) {
		return healpix.Pix2Vec(hpx, pixels[i])
	})
}

/*****************************************************************************************************************/

// Neighbours batches the eight-slot neighbour lookup over nside and pix.
func Neighbours(scheme healpix.Scheme, nside, pix []int64) ([][8]int64, error) {
	n, err := broadcastLen(len(nside), len(pix))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)
	pixels := broadcastInt64(pix, n)

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) ([8]int64, error) {
		return healpix.Neighbours(hpx, pixels[i])
	})
}

/*****************************************************************************************************************/

// GetInterpol batches the bilinear interpolation lookup over nside, theta, and phi.
func GetInterpol(scheme healpix.Scheme, nside []int64, theta, phi []float64) ([]Interpolation, error) {
	n, err := broadcastLen(len(nside), len(theta), len(phi))
	if err != nil {
		return nil, err
	}

	nsides := broadcastInt64(nside, n)
	thetas := broadcastFloat64(theta, n)
	phis := broadcastFloat64(phi, n)

	cache, err := buildInfoCache(nsides, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nsides, cache, func(hpx *healpix.HealpixInfo, i int) (Interpolation, error) {
		pix, weight, err := healpix.GetInterpol(hpx.Nside, thetas[i], phis[i])
		return Interpolation{Pix: pix, Weight: weight}, err
	})
}

/*****************************************************************************************************************/

// MaxPixrad batches max_pixrad over a set of nsides (scheme does not affect the result, since
// it depends only on resolution, not ordering).
func MaxPixrad(scheme healpix.Scheme, nside []int64) ([]float64, error) {
	n := len(nside)

	cache, err := buildInfoCache(nside, scheme)
	if err != nil {
		return nil, err
	}

	return runBatched(n, nside, cache, func(hpx *healpix.HealpixInfo, i int) (float64, error) {
		return healpix.MaxPixrad(hpx), nil
	})
}

/*****************************************************************************************************************/
