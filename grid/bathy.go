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
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// Bathy wraps a two-dimensional Grid with a fast non-recursive
// interpolation engine. Construction precomputes the partial and mixed
// derivative tables used by the bicubic Hermite evaluation, so each
// PCHIP query reduces to one 16x16 matrix-vector product and a
// polynomial evaluation. Both axes of the wrapped grid must carry the
// same interpolation kind.
//
// Bathy never modifies the wrapped grid and holds no mutable state, so
// one instance may serve any number of concurrent ray-tracing workers.
type Bathy struct {
	grid   *Grid
	dervX  *sparse.DenseArray
	dervY  *sparse.DenseArray
	dervXY *sparse.DenseArray
	inv    *mat.Dense
	k0max  int
	k1max  int
}

// NewBathy precomputes fast interpolation factors for an existing
// two-dimensional grid.
func NewBathy(g *Grid) (*Bathy, error) {
	if g.Rank() != 2 {
		return nil, fmt.Errorf("seaprop: bathy grid must have rank 2, got %d", g.Rank())
	}
	if g.InterpType(0) != g.InterpType(1) {
		return nil, fmt.Errorf("seaprop: bathy grid axes must share one interpolation kind, got %v and %v",
			g.InterpType(0), g.InterpType(1))
	}
	b := &Bathy{
		grid:  g,
		inv:   invBicubic(),
		k0max: g.Axis(0).Size() - 1,
		k1max: g.Axis(1).Size() - 1,
	}

	// Dimensionless increment factors scale the finite differences;
	// edge nodes use the factor 2.
	incX := incrementFactors(g.Axis(0))
	incY := incrementFactors(g.Axis(1))

	n0 := b.k0max + 1
	n1 := b.k1max + 1
	b.dervX = sparse.ZerosDense(n0, n1)
	b.dervY = sparse.ZerosDense(n0, n1)
	b.dervXY = sparse.ZerosDense(n0, n1)
	for i := 0; i < n0; i++ {
		ilo, ihi := stencil(i, n0)
		// a one-sided difference spans one interval instead of two;
		// doubling it makes the edge factor 2 yield the plain
		// single-interval slope
		sx := 2 / float64(ihi-ilo)
		for j := 0; j < n1; j++ {
			jlo, jhi := stencil(j, n1)
			sy := 2 / float64(jhi-jlo)
			b.dervX.Set(sx*(g.Value(ihi, j)-g.Value(ilo, j))/incX[i], i, j)
			b.dervY.Set(sy*(g.Value(i, jhi)-g.Value(i, jlo))/incY[j], i, j)
			b.dervXY.Set(sx*sy*(g.Value(ihi, jhi)-g.Value(ihi, jlo)-g.Value(ilo, jhi)+g.Value(ilo, jlo))/
				(incX[i]*incY[j]), i, j)
		}
	}
	return b, nil
}

// Grid returns the wrapped grid.
func (b *Bathy) Grid() *Grid { return b.grid }

// incrementFactors computes the per-node derivative scaling for one
// axis: 2 at the edge nodes and (d[i-1]+d[i+1])/d[i] at interior node
// i, where d[i] is the i'th interval width. On an evenly spaced axis
// every factor is 2 and the interior centered difference is exact for
// quadratics; on an uneven axis the interior estimate is not exact even
// for a linear field.
func incrementFactors(ax Axis) []float64 {
	n := ax.Size()
	inc := make([]float64, n)
	for i := range inc {
		if i == 0 || i == n-1 {
			inc[i] = 2
		} else {
			inc[i] = (ax.Increment(i-1) + ax.Increment(i+1)) / ax.Increment(i)
		}
	}
	return inc
}

// stencil returns the finite difference neighbor indices for node i,
// one-sided at the domain edges and centered in the interior.
func stencil(i, n int) (lo, hi int) {
	lo, hi = i-1, i+1
	if lo < 0 {
		lo = i
	}
	if hi > n-1 {
		hi = i
	}
	return lo, hi
}

// Interpolate evaluates the field at loc = [axis0, axis1] using the
// non-recursive engine. If deriv is non-nil it must have two elements
// and receives the partial derivatives along each axis. Out-of-domain
// locations clamp or extrapolate per the wrapped grid's axis policies;
// queries never fail.
func (b *Bathy) Interpolate(loc []float64, deriv []float64) float64 {
	if len(loc) != 2 {
		panic(fmt.Sprintf("seaprop: bathy interpolate: location has %d dimensions, need 2", len(loc)))
	}
	if deriv != nil && len(deriv) != 2 {
		panic(fmt.Sprintf("seaprop: bathy interpolate: derivative has %d dimensions, need 2", len(deriv)))
	}
	var xloc [2]float64
	var off [2]int
	for dim := 0; dim < 2; dim++ {
		xloc[dim], off[dim] = edgeOffset(b.grid.Axis(dim), b.grid.EdgeClamp(dim), loc[dim])
	}

	switch b.grid.InterpType(0) {
	case Nearest:
		var idx [2]int
		for dim := 0; dim < 2; dim++ {
			ax := b.grid.Axis(dim)
			u := math.Abs((xloc[dim] - ax.Value(off[dim])) / ax.Increment(off[dim]))
			if u < 0.5 {
				idx[dim] = off[dim]
			} else {
				idx[dim] = off[dim] + 1
			}
		}
		if deriv != nil {
			deriv[0], deriv[1] = 0, 0
		}
		return b.grid.Value(idx[0], idx[1])

	case Linear:
		x, y := xloc[0], xloc[1]
		x1 := b.grid.Axis(0).Value(off[0])
		x2 := b.grid.Axis(0).Value(off[0] + 1)
		y1 := b.grid.Axis(1).Value(off[1])
		y2 := b.grid.Axis(1).Value(off[1] + 1)
		f11 := b.grid.Value(off[0], off[1])
		f21 := b.grid.Value(off[0]+1, off[1])
		f12 := b.grid.Value(off[0], off[1]+1)
		f22 := b.grid.Value(off[0]+1, off[1]+1)
		dx := x2 - x1
		dy := y2 - y1
		if deriv != nil {
			deriv[0] = ((f21-f11)*(y2-y) + (f22-f12)*(y-y1)) / (dx * dy)
			deriv[1] = ((f12-f11)*(x2-x) + (f22-f21)*(x-x1)) / (dx * dy)
		}
		return (f11*(x2-x)*(y2-y) + f21*(x-x1)*(y2-y) +
			f12*(x2-x)*(y-y1) + f22*(x-x1)*(y-y1)) / (dx * dy)

	default:
		return b.fastPCHIP(off, xloc, deriv)
	}
}

// InterpolateBatch evaluates the field at a matrix of locations,
// walking x and y row-major and writing into result and, when both are
// non-nil, the dx and dy derivative matrices. All matrices must share
// the shape of x.
func (b *Bathy) InterpolateBatch(x, y, result, dx, dy *sparse.DenseArray) error {
	if x == nil || y == nil || result == nil {
		return fmt.Errorf("seaprop: bathy batch: location and result matrices are required")
	}
	if len(x.Shape) != 2 {
		return fmt.Errorf("seaprop: bathy batch: locations must be 2-dimensional matrices")
	}
	for _, m := range []*sparse.DenseArray{y, result, dx, dy} {
		if m == nil {
			continue
		}
		if len(m.Shape) != 2 || m.Shape[0] != x.Shape[0] || m.Shape[1] != x.Shape[1] {
			return fmt.Errorf("seaprop: bathy batch: matrix shape %v does not match locations %v",
				m.Shape, x.Shape)
		}
	}
	var loc [2]float64
	var deriv [2]float64
	wantDeriv := dx != nil && dy != nil
	for n := 0; n < x.Shape[0]; n++ {
		for m := 0; m < x.Shape[1]; m++ {
			loc[0] = x.Get(n, m)
			loc[1] = y.Get(n, m)
			if wantDeriv {
				result.Set(b.Interpolate(loc[:], deriv[:]), n, m)
				dx.Set(deriv[0], n, m)
				dy.Set(deriv[1], n, m)
			} else {
				result.Set(b.Interpolate(loc[:], nil), n, m)
			}
		}
	}
	return nil
}

// fastPCHIP evaluates the bicubic Hermite surface for the grid cell at
// off. The 16 Hermite conditions (value, both partials, and the mixed
// partial at each cell corner) come from the samples and the
// precomputed derivative tables; multiplying by the inverse bicubic
// matrix yields the polynomial coefficients, which are then evaluated
// in the power basis on the unit square.
func (b *Bathy) fastPCHIP(off [2]int, loc [2]float64, deriv []float64) float64 {
	k0, k1 := off[0], off[1]
	norm0 := b.grid.Axis(0).Increment(k0)
	norm1 := b.grid.Axis(1).Increment(k1)

	var fbuf, cbuf [16]float64
	fbuf[0] = b.grid.Value(k0, k1)
	fbuf[1] = b.grid.Value(k0, k1+1)
	fbuf[2] = b.grid.Value(k0+1, k1)
	fbuf[3] = b.grid.Value(k0+1, k1+1)
	fbuf[4] = b.dervX.Get(k0, k1)
	fbuf[5] = b.dervX.Get(k0, k1+1)
	fbuf[6] = b.dervX.Get(k0+1, k1)
	fbuf[7] = b.dervX.Get(k0+1, k1+1)
	fbuf[8] = b.dervY.Get(k0, k1)
	fbuf[9] = b.dervY.Get(k0, k1+1)
	fbuf[10] = b.dervY.Get(k0+1, k1)
	fbuf[11] = b.dervY.Get(k0+1, k1+1)
	fbuf[12] = b.dervXY.Get(k0, k1)
	fbuf[13] = b.dervXY.Get(k0, k1+1)
	fbuf[14] = b.dervXY.Get(k0+1, k1)
	fbuf[15] = b.dervXY.Get(k0+1, k1+1)

	field := mat.NewVecDense(16, fbuf[:])
	coeff := mat.NewVecDense(16, cbuf[:])
	coeff.MulVec(b.inv, field)

	u := (loc[0] - b.grid.Axis(0).Value(k0)) / norm0
	v := (loc[1] - b.grid.Axis(1).Value(k1)) / norm1
	up := [4]float64{1, u, u * u, u * u * u}
	vp := [4]float64{1, v, v * v, v * v * v}

	var result float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result += cbuf[4*i+j] * up[i] * vp[j]
		}
	}
	if deriv != nil {
		deriv[0], deriv[1] = 0, 0
		for i := 1; i < 4; i++ {
			for j := 0; j < 4; j++ {
				deriv[0] += float64(i) * cbuf[4*i+j] * up[i-1] * vp[j]
			}
		}
		deriv[0] /= norm0
		for i := 0; i < 4; i++ {
			for j := 1; j < 4; j++ {
				deriv[1] += float64(j) * cbuf[4*i+j] * up[i] * vp[j-1]
			}
		}
		deriv[1] /= norm1
	}
	return result
}

// invBicubic builds the fixed 16x16 inverse bicubic coefficient
// matrix. Multiplying it by the vector of Hermite conditions on the
// unit square yields the bicubic polynomial coefficients. The entries
// solve the 16 linear corner conditions once and for all; they are not
// data dependent.
func invBicubic() *mat.Dense {
	m := mat.NewDense(16, 16, nil)
	set := func(entries map[int]float64, row int) {
		for col, v := range entries {
			m.Set(row, col, v)
		}
	}
	set(map[int]float64{0: 1}, 0)
	set(map[int]float64{8: 1}, 1)
	set(map[int]float64{0: -3, 1: 3, 8: -2, 9: -1}, 2)
	set(map[int]float64{0: 2, 1: -2, 8: 1, 9: 1}, 3)
	set(map[int]float64{4: 1}, 4)
	set(map[int]float64{12: 1}, 5)
	set(map[int]float64{4: -3, 5: 3, 12: -2, 13: -1}, 6)
	set(map[int]float64{4: 2, 5: -2, 12: 1, 13: 1}, 7)
	set(map[int]float64{0: -3, 2: 3, 4: -2, 6: -1}, 8)
	set(map[int]float64{8: -3, 10: 3, 12: -2, 14: -1}, 9)
	set(map[int]float64{0: 9, 3: 9, 1: -9, 2: -9, 4: 6, 8: 6, 5: -6, 10: -6,
		6: 3, 9: 3, 7: -3, 11: -3, 12: 4, 13: 2, 14: 2, 15: 1}, 10)
	set(map[int]float64{0: -6, 3: -6, 1: 6, 2: 6, 6: -2, 12: -2, 13: -2,
		4: -4, 5: 4, 7: 2, 8: -3, 9: -3, 10: 3, 11: 3, 14: -1, 15: -1}, 11)
	set(map[int]float64{0: 2, 2: -2, 4: 1, 6: 1}, 12)
	set(map[int]float64{8: 2, 10: -2, 12: 1, 14: 1}, 13)
	set(map[int]float64{0: -6, 3: -6, 1: 6, 2: 6, 4: -3, 6: -3, 5: 3, 7: 3,
		8: -4, 10: 4, 9: -2, 12: -2, 14: -2, 11: 2, 13: -1, 15: -1}, 14)
	set(map[int]float64{0: 4, 3: 4, 1: -4, 2: -4, 4: 2, 6: 2, 8: 2, 9: 2,
		5: -2, 7: -2, 10: -2, 11: -2, 12: 1, 13: 1, 14: 1, 15: 1}, 15)
	return m
}
