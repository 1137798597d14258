/*
Copyright © 2024 the seaprop authors.
This file is part of seaprop.

seaprop is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seaprop is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seaprop.  If not, see <http://www.gnu.org/licenses/>.
*/

package grid

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Interp selects the interpolation scheme used along one axis.
type Interp int

const (
	// Nearest selects the sample closest to the query location.
	Nearest Interp = iota
	// Linear blends the two bracketing samples along each axis.
	Linear
	// PCHIP evaluates a piecewise cubic Hermite polynomial with
	// finite-difference slope estimates.
	PCHIP
)

// String implements fmt.Stringer.
func (ip Interp) String() string {
	switch ip {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case PCHIP:
		return "pchip"
	}
	return fmt.Sprintf("interp(%d)", int(ip))
}

// Grid is an N-dimensional gridded field: one axis per dimension plus a
// flat row-major sample buffer where axis 0 varies slowest. A Grid is
// frozen at construction; queries never modify shared state, so a
// single Grid may serve any number of goroutines.
//
// Grid implements the recursive reference interpolator. Bathy wraps a
// rank-2 Grid with a faster non-recursive path; both agree to within
// floating point tolerance inside the domain.
type Grid struct {
	axes   []Axis
	data   *sparse.DenseArray
	interp []Interp
	clamp  []bool
}

// NewGrid assembles a grid from its axes and samples. The sample array
// shape must match the axis sizes dimension by dimension, every axis
// must hold at least two values, and each interpolation kind must be
// one of Nearest, Linear, or PCHIP. The per-axis clamp flags select the
// edge policy: true projects out-of-domain queries onto the axis
// domain, false extrapolates. The grid takes ownership of its
// arguments; callers must not modify them afterwards.
func NewGrid(axes []Axis, data *sparse.DenseArray, interp []Interp, clamp []bool) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("seaprop: grid needs at least one axis")
	}
	if len(interp) != len(axes) || len(clamp) != len(axes) {
		return nil, fmt.Errorf("seaprop: grid axis metadata length mismatch: %d axes, %d interp, %d clamp",
			len(axes), len(interp), len(clamp))
	}
	if len(data.Shape) != len(axes) {
		return nil, fmt.Errorf("seaprop: grid rank mismatch: %d axes but %d data dimensions",
			len(axes), len(data.Shape))
	}
	for dim, ax := range axes {
		if ax.Size() < 2 {
			return nil, fmt.Errorf("seaprop: grid axis %d has fewer than 2 values", dim)
		}
		if data.Shape[dim] != ax.Size() {
			return nil, fmt.Errorf("seaprop: grid axis %d size %d does not match data dimension %d",
				dim, ax.Size(), data.Shape[dim])
		}
		switch interp[dim] {
		case Nearest, Linear, PCHIP:
		default:
			return nil, fmt.Errorf("seaprop: grid axis %d: interpolation must be nearest, linear, or pchip", dim)
		}
	}
	return &Grid{axes: axes, data: data, interp: interp, clamp: clamp}, nil
}

// Rank is the number of grid dimensions.
func (g *Grid) Rank() int { return len(g.axes) }

// Axis returns the axis for one dimension.
func (g *Grid) Axis(dim int) Axis { return g.axes[dim] }

// InterpType returns the interpolation kind for one dimension.
func (g *Grid) InterpType(dim int) Interp { return g.interp[dim] }

// EdgeClamp reports whether out-of-domain queries along dim are clamped
// to the axis domain rather than extrapolated.
func (g *Grid) EdgeClamp(dim int) bool { return g.clamp[dim] }

// Value retrieves a single sample.
func (g *Grid) Value(idx ...int) float64 { return g.data.Get(idx...) }

// edgeOffset applies one axis' edge policy to a query coordinate. It
// returns the possibly projected coordinate and the interval offset
// used for interpolation. Descending axes are handled through the
// direction sign: "left" of the axis means before its first value in
// the direction of travel.
func edgeOffset(ax Axis, clamp bool, x float64) (float64, int) {
	if !clamp {
		return x, ax.FindIndex(x)
	}
	n := ax.Size()
	s := axisSign(ax)
	if s*x <= s*ax.Value(0) {
		return ax.Value(0), 0
	}
	if s*x >= s*ax.Value(n-2) {
		if last := ax.Value(n - 1); s*x > s*last {
			x = last
		}
		return x, n - 2
	}
	return x, ax.FindIndex(x)
}

// Interpolate evaluates the field at loc using the per-axis
// interpolation kinds and edge policies. If deriv is non-nil it must
// have one element per dimension and receives the analytic partial
// derivatives of the interpolant. Queries are total: out-of-domain
// locations clamp or extrapolate per axis policy.
//
// This is the recursive reference path; it favors clarity over speed.
func (g *Grid) Interpolate(loc []float64, deriv []float64) float64 {
	r := g.Rank()
	if len(loc) != r {
		panic(fmt.Sprintf("seaprop: grid interpolate: location has %d dimensions, grid has %d", len(loc), r))
	}
	if deriv != nil && len(deriv) != r {
		panic(fmt.Sprintf("seaprop: grid interpolate: derivative has %d dimensions, grid has %d", len(deriv), r))
	}
	xloc := make([]float64, r)
	off := make([]int, r)
	for dim := 0; dim < r; dim++ {
		xloc[dim], off[dim] = edgeOffset(g.axes[dim], g.clamp[dim], loc[dim])
	}
	idx := make([]int, r)
	grad := deriv
	if grad == nil {
		grad = make([]float64, r)
	}
	v := g.eval(0, idx, off, xloc, grad)
	return v
}

// eval interpolates axis dim with all shallower axes already fixed at
// integer nodes in idx. It fills grad[dim:] with the partials for this
// and all deeper axes.
func (g *Grid) eval(dim int, idx, off []int, loc, grad []float64) float64 {
	if dim == g.Rank() {
		return g.data.Get(idx...)
	}
	switch g.interp[dim] {
	case Nearest:
		return g.evalNearest(dim, idx, off, loc, grad)
	case Linear:
		return g.evalLinear(dim, idx, off, loc, grad)
	default:
		return g.evalPCHIP(dim, idx, off, loc, grad)
	}
}

func (g *Grid) evalNearest(dim int, idx, off []int, loc, grad []float64) float64 {
	ax := g.axes[dim]
	k := off[dim]
	u := (loc[dim] - ax.Value(k)) / ax.Increment(k)
	if u < 0 {
		u = -u
	}
	if u < 0.5 {
		idx[dim] = k
	} else {
		idx[dim] = k + 1
	}
	v := g.eval(dim+1, idx, off, loc, grad)
	grad[dim] = 0
	return v
}

func (g *Grid) evalLinear(dim int, idx, off []int, loc, grad []float64) float64 {
	ax := g.axes[dim]
	k := off[dim]
	x1 := ax.Value(k)
	x2 := ax.Value(k + 1)

	gradA := make([]float64, len(grad))
	idx[dim] = k
	a := g.eval(dim+1, idx, off, loc, gradA)
	idx[dim] = k + 1
	b := g.eval(dim+1, idx, off, loc, grad)

	t := (loc[dim] - x1) / (x2 - x1)
	for e := dim + 1; e < len(grad); e++ {
		grad[e] = gradA[e] + t*(grad[e]-gradA[e])
	}
	grad[dim] = (b - a) / (x2 - x1)
	return a + t*(b-a)
}

// evalPCHIP performs a one-dimensional cubic Hermite step along axis
// dim. The endpoint slopes are finite differences in index units,
// centered in the interior and one-sided at the axis edges, matching
// the derivative tables precomputed by Bathy so that the two
// interpolators agree.
func (g *Grid) evalPCHIP(dim int, idx, off []int, loc, grad []float64) float64 {
	ax := g.axes[dim]
	n := ax.Size()
	k := off[dim]

	// recursive values and gradients at the four stencil nodes,
	// clamped to the axis domain
	var val [4]float64
	sub := make([][]float64, 4)
	for j := 0; j < 4; j++ {
		m := k + j - 1
		if m < 0 {
			m = 0
		} else if m > n-1 {
			m = n - 1
		}
		idx[dim] = m
		sub[j] = make([]float64, len(grad))
		val[j] = g.eval(dim+1, idx, off, loc, sub[j])
	}

	// endpoint slopes in index units
	s0 := nodeSlope(ax, k, val[0], val[1], val[2])
	s1 := nodeSlope(ax, k+1, val[1], val[2], val[3])

	u := (loc[dim] - ax.Value(k)) / ax.Increment(k)
	h00 := (2*u-3)*u*u + 1
	h10 := ((u-2)*u + 1) * u
	h01 := (3 - 2*u) * u * u
	h11 := (u - 1) * u * u

	for e := dim + 1; e < len(grad); e++ {
		gs0 := nodeSlope(ax, k, sub[0][e], sub[1][e], sub[2][e])
		gs1 := nodeSlope(ax, k+1, sub[1][e], sub[2][e], sub[3][e])
		grad[e] = h00*sub[1][e] + h10*gs0 + h01*sub[2][e] + h11*gs1
	}

	du := (6*u-6)*u*val[1] + ((3*u-4)*u+1)*s0 + (6-6*u)*u*val[2] + (3*u-2)*u*s1
	grad[dim] = du / ax.Increment(k)
	return h00*val[1] + h10*s0 + h01*val[2] + h11*s1
}

// nodeSlope estimates the field slope in index units at axis node m
// from the surrounding values: a one-sided single-interval difference
// at the axis edges and a centered difference scaled for nonuniform
// spacing in the interior. prev, mid, next are the field values at
// nodes m-1, m, m+1 (with the outer ones clamped to the domain at the
// edges).
func nodeSlope(ax Axis, m int, prev, mid, next float64) float64 {
	n := ax.Size()
	if m == 0 {
		return next - mid
	}
	if m == n-1 {
		return mid - prev
	}
	h := (ax.Increment(m-1) + ax.Increment(m+1)) / ax.Increment(m)
	return (next - prev) / h
}
