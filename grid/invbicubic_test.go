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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// The inverse bicubic matrix must recover the coefficients of any
// separable cubic from its Hermite conditions on the unit square.
func TestInvBicubicRecoversSeparableCubic(t *testing.T) {
	// p(u) = sum a_i u^i, q(v) = sum b_j v^j
	a := [4]float64{1, -2, 3, 0.5}
	b := [4]float64{2, 0.25, -1, 4}

	poly := func(c [4]float64, x float64) float64 {
		return c[0] + x*(c[1]+x*(c[2]+x*c[3]))
	}
	dpoly := func(c [4]float64, x float64) float64 {
		return c[1] + x*(2*c[2]+x*3*c[3])
	}

	// Hermite conditions at the four corners in field-vector order:
	// values, u partials, v partials, mixed partials.
	corners := [4][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	var field [16]float64
	for n, c := range corners {
		u, v := c[0], c[1]
		field[n] = poly(a, u) * poly(b, v)
		field[4+n] = dpoly(a, u) * poly(b, v)
		field[8+n] = poly(a, u) * dpoly(b, v)
		field[12+n] = dpoly(a, u) * dpoly(b, v)
	}

	var cbuf [16]float64
	coeff := mat.NewVecDense(16, cbuf[:])
	coeff.MulVec(invBicubic(), mat.NewVecDense(16, field[:]))

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := a[i] * b[j]
			got := cbuf[4*i+j]
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("coefficient (%d,%d): want %g, got %g", i, j, want, got)
			}
		}
	}
}

// The nonuniform increment factors collapse to the uniform stencil on
// an evenly spaced axis and widen with the neighboring intervals on an
// uneven one.
func TestIncrementFactors(t *testing.T) {
	even, err := NewUniform(0, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range incrementFactors(even) {
		if f != 2 {
			t.Errorf("uniform axis factor %d: want 2, got %g", i, f)
		}
	}

	uneven, err := NewData([]float64{0, 1, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	got := incrementFactors(uneven)
	// interior node 1: (d0 + d2)/d1 = (1 + 1)/2, node 2: (2 + 1)/1
	want := []float64{2, 1, 3, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("uneven axis factor %d: want %g, got %g", i, want[i], got[i])
		}
	}
}
