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

package grid_test

import (
	"math"
	"testing"

	"github.com/oceanmodel/seaprop/grid"
)

func TestUniformAxis(t *testing.T) {
	ax, err := grid.NewUniform(10, 2.5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := ax.Size(); got != 5 {
		t.Errorf("size: want 5, got %d", got)
	}
	want := []float64{10, 12.5, 15, 17.5, 20}
	for i, w := range want {
		if got := ax.Value(i); got != w {
			t.Errorf("value(%d): want %g, got %g", i, w, got)
		}
	}
	if got := ax.Increment(4); got != 2.5 {
		t.Errorf("increment at right edge: want 2.5, got %g", got)
	}

	cases := []struct {
		x    float64
		want int
	}{
		{-100, 0}, {10, 0}, {12.49, 0}, {12.5, 1}, {16, 2}, {19.9, 3}, {20, 3}, {1e6, 3},
	}
	for _, c := range cases {
		if got := ax.FindIndex(c.x); got != c.want {
			t.Errorf("find_index(%g): want %d, got %d", c.x, c.want, got)
		}
	}
}

func TestUniformAxisDescending(t *testing.T) {
	ax, err := grid.NewUniform(20, -5, 5)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x    float64
		want int
	}{
		{100, 0}, {20, 0}, {16, 0}, {15, 1}, {2, 3}, {-50, 3},
	}
	for _, c := range cases {
		if got := ax.FindIndex(c.x); got != c.want {
			t.Errorf("find_index(%g): want %d, got %d", c.x, c.want, got)
		}
	}
}

func TestLogAxis(t *testing.T) {
	ax, err := grid.NewLog(100, 2, 4) // 100, 200, 400, 800
	if err != nil {
		t.Fatal(err)
	}
	if got := ax.Value(3); math.Abs(got-800) > 1e-12 {
		t.Errorf("value(3): want 800, got %g", got)
	}
	if got := ax.Increment(0); math.Abs(got-100) > 1e-12 {
		t.Errorf("increment(0): want 100, got %g", got)
	}
	if got := ax.Increment(3); math.Abs(got-400) > 1e-12 {
		t.Errorf("increment at right edge: want 400, got %g", got)
	}
	cases := []struct {
		x    float64
		want int
	}{
		{-5, 0}, {0, 0}, {99, 0}, {150, 0}, {200, 1}, {399, 1}, {400, 2}, {800, 2}, {1e9, 2},
	}
	for _, c := range cases {
		if got := ax.FindIndex(c.x); got != c.want {
			t.Errorf("find_index(%g): want %d, got %d", c.x, c.want, got)
		}
	}
}

func TestDataAxis(t *testing.T) {
	ax, err := grid.NewData([]float64{0, 1, 3, 7, 15})
	if err != nil {
		t.Fatal(err)
	}
	if got := ax.Increment(1); got != 2 {
		t.Errorf("increment(1): want 2, got %g", got)
	}
	if got := ax.Increment(4); got != 8 {
		t.Errorf("increment at right edge: want 8, got %g", got)
	}
	cases := []struct {
		x    float64
		want int
	}{
		{-10, 0}, {0, 0}, {0.5, 0}, {1, 1}, {2.9, 1}, {3, 2}, {8, 3}, {15, 3}, {100, 3},
	}
	for _, c := range cases {
		if got := ax.FindIndex(c.x); got != c.want {
			t.Errorf("find_index(%g): want %d, got %d", c.x, c.want, got)
		}
	}
}

func TestDataAxisDescending(t *testing.T) {
	ax, err := grid.NewData([]float64{15, 7, 3, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x    float64
		want int
	}{
		{100, 0}, {15, 0}, {8, 0}, {7, 1}, {2, 2}, {1, 3}, {0, 3}, {-10, 3},
	}
	for _, c := range cases {
		if got := ax.FindIndex(c.x); got != c.want {
			t.Errorf("find_index(%g): want %d, got %d", c.x, c.want, got)
		}
	}
}

func TestAxisConstructionErrors(t *testing.T) {
	if _, err := grid.NewUniform(0, 1, 1); err == nil {
		t.Error("uniform axis with 1 value should fail")
	}
	if _, err := grid.NewUniform(0, 0, 5); err == nil {
		t.Error("uniform axis with zero step should fail")
	}
	if _, err := grid.NewLog(-1, 2, 5); err == nil {
		t.Error("log axis with negative first value should fail")
	}
	if _, err := grid.NewLog(1, 1, 5); err == nil {
		t.Error("log axis with unit ratio should fail")
	}
	if _, err := grid.NewData([]float64{1, 2, 2, 3}); err == nil {
		t.Error("data axis with repeated value should fail")
	}
	if _, err := grid.NewData([]float64{1, 2, 1.5}); err == nil {
		t.Error("non-monotonic data axis should fail")
	}
}

// FindIndex must name a valid interval for any finite input.
func TestFindIndexRange(t *testing.T) {
	axes := []grid.Axis{
		mustUniform(t, 0, 1, 4),
		mustUniform(t, 5, -0.5, 9),
		mustLog(t, 10, 3, 6),
		mustData(t, []float64{-4, -1, 0, 2, 9}),
		mustData(t, []float64{9, 2, 0, -1, -4}),
	}
	inputs := []float64{math.MaxFloat64, -math.MaxFloat64, 0, 1e-300, -1e-300, 3.7, -2.2, 1e12}
	for _, ax := range axes {
		for _, x := range inputs {
			i := ax.FindIndex(x)
			if i < 0 || i > ax.Size()-2 {
				t.Errorf("find_index(%g) = %d out of [0, %d]", x, i, ax.Size()-2)
			}
		}
	}
}

func mustUniform(t *testing.T, first, step float64, n int) grid.Axis {
	t.Helper()
	ax, err := grid.NewUniform(first, step, n)
	if err != nil {
		t.Fatal(err)
	}
	return ax
}

func mustLog(t *testing.T, first, ratio float64, n int) grid.Axis {
	t.Helper()
	ax, err := grid.NewLog(first, ratio, n)
	if err != nil {
		t.Fatal(err)
	}
	return ax
}

func mustData(t *testing.T, values []float64) grid.Axis {
	t.Helper()
	ax, err := grid.NewData(values)
	if err != nil {
		t.Fatal(err)
	}
	return ax
}
