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

package netcdf_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"

	"github.com/oceanmodel/seaprop/grid"
	"github.com/oceanmodel/seaprop/netcdf"
)

// writeBathyFile creates an ETOPO-style bathymetry file with
// h(lat, lon) = -1000 + 10 (lat - 35) + 5 (lon - 15).
func writeBathyFile(t *testing.T, path string, lat, lon []float64) {
	t.Helper()
	h := cdf.NewHeader([]string{"lat", "lon"}, []int{len(lat), len(lon)})
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddVariable("z", []string{"lat", "lon"}, []float64{0})
	h.Define()
	for _, err := range h.Check() {
		t.Fatal(err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ff, err := cdf.Create(f, h)
	if err != nil {
		t.Fatal(err)
	}

	z := make([]float64, len(lat)*len(lon))
	for i, la := range lat {
		for j, lo := range lon {
			z[i*len(lon)+j] = -1000 + 10*(la-35) + 5*(lo-15)
		}
	}
	for _, v := range []struct {
		name string
		data []float64
	}{
		{"lat", lat}, {"lon", lon}, {"z", z},
	} {
		w := ff.Writer(v.name, nil, nil)
		if _, err := w.Write(v.data); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReadBathymetry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "etopo_test.grd")
	lat := []float64{34, 35, 36, 37, 38}
	lon := []float64{13, 14, 15, 16, 17, 18}
	writeBathyFile(t, path, lat, lon)

	g, err := netcdf.ReadBathymetry(path, 35, 37, 14, 17)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rank() != 2 {
		t.Fatalf("bathymetry rank: want 2, got %d", g.Rank())
	}
	// the subset widens by one sample on each side
	if n := g.Axis(0).Size(); n != 5 {
		t.Errorf("latitude axis size: want 5, got %d", n)
	}
	if n := g.Axis(1).Size(); n != 6 {
		t.Errorf("longitude axis size: want 6, got %d", n)
	}
	if g.InterpType(0) != grid.PCHIP || !g.EdgeClamp(0) {
		t.Error("bathymetry should use clamped pchip axes")
	}

	// values round trip through the file
	for i := 0; i < g.Axis(0).Size(); i++ {
		for j := 0; j < g.Axis(1).Size(); j++ {
			la := g.Axis(0).Value(i)
			lo := g.Axis(1).Value(j)
			want := -1000 + 10*(la-35) + 5*(lo-15)
			if got := g.Value(i, j); math.Abs(got-want) > 1e-9 {
				t.Errorf("height(%g, %g): want %g, got %g", la, lo, want, got)
			}
		}
	}

	// the planar field interpolates exactly under the fast engine
	b, err := grid.NewBathy(g)
	if err != nil {
		t.Fatal(err)
	}
	got := b.Interpolate([]float64{36.25, 15.5}, nil)
	want := -1000 + 10*1.25 + 5*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("interpolated height: want %g, got %g", want, got)
	}
}

func TestReadBathymetryMissing(t *testing.T) {
	if _, err := netcdf.ReadBathymetry(filepath.Join(t.TempDir(), "nope.grd"), 0, 1, 0, 1); err == nil {
		t.Error("missing file should fail")
	}
}

func TestReadBathymetryOutsideDomain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "etopo_test.grd")
	writeBathyFile(t, path, []float64{34, 35, 36}, []float64{13, 14, 15})
	if _, err := netcdf.ReadBathymetry(path, 70, 80, 13, 15); err == nil {
		t.Error("request outside the file domain should fail")
	}
}

// writeWOAFile creates a World Ocean Atlas style climatology with the
// given number of time records and depths. The value at every node is
// base - 0.01*depth + 0.1*record.
func writeWOAFile(t *testing.T, path string, records int, depth, lat, lon []float64, base float64) {
	t.Helper()
	h := cdf.NewHeader(
		[]string{"time", "depth", "lat", "lon"},
		[]int{records, len(depth), len(lat), len(lon)})
	h.AddVariable("depth", []string{"depth"}, []float64{0})
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddVariable("t_an", []string{"time", "depth", "lat", "lon"}, []float64{0})
	h.Define()
	for _, err := range h.Check() {
		t.Fatal(err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ff, err := cdf.Create(f, h)
	if err != nil {
		t.Fatal(err)
	}

	values := make([]float64, records*len(depth)*len(lat)*len(lon))
	n := 0
	for r := 0; r < records; r++ {
		for _, d := range depth {
			for range lat {
				for range lon {
					values[n] = base - 0.01*d + 0.1*float64(r)
					n++
				}
			}
		}
	}
	for _, v := range []struct {
		name string
		data []float64
	}{
		{"depth", depth}, {"lat", lat}, {"lon", lon}, {"t_an", values},
	} {
		w := ff.Writer(v.name, nil, nil)
		if _, err := w.Write(v.data); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReadWOA(t *testing.T) {
	dir := t.TempDir()
	seasonal := filepath.Join(dir, "temperature_seasonal.nc")
	monthly := filepath.Join(dir, "temperature_monthly.nc")
	lat := []float64{35, 36, 37}
	lon := []float64{15, 16, 17}
	// the monthly file resolves the upper ocean only
	writeWOAFile(t, seasonal, 4, []float64{0, 100, 500, 1000}, lat, lon, 15)
	writeWOAFile(t, monthly, 12, []float64{0, 100}, lat, lon, 20)

	const month = 6
	g, err := netcdf.ReadWOA(seasonal, monthly, month, 35, 37, 15, 17)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rank() != 3 {
		t.Fatalf("woa rank: want 3, got %d", g.Rank())
	}
	if n := g.Axis(0).Size(); n != 4 {
		t.Errorf("depth axis size: want 4, got %d", n)
	}

	// upper layers come from the monthly record, deep layers from the
	// seasonal record of the containing season
	wantUpper := 20.0 - 0.01*100 + 0.1*float64(month-1)
	if got := g.Value(1, 0, 0); math.Abs(got-wantUpper) > 1e-9 {
		t.Errorf("monthly layer at 100 m: want %g, got %g", wantUpper, got)
	}
	wantDeep := 15.0 - 0.01*1000 + 0.1*float64((month-1)/3)
	if got := g.Value(3, 0, 0); math.Abs(got-wantDeep) > 1e-9 {
		t.Errorf("seasonal layer at 1000 m: want %g, got %g", wantDeep, got)
	}

	// altitude axis runs downward
	if a0, a1 := g.Axis(0).Value(0), g.Axis(0).Value(3); a0 != 0 || a1 != -1000 {
		t.Errorf("altitude axis: want 0 .. -1000, got %g .. %g", a0, a1)
	}
}

func TestReadWOABadMonth(t *testing.T) {
	if _, err := netcdf.ReadWOA("a.nc", "b.nc", 0, 0, 1, 0, 1); err == nil {
		t.Error("month 0 should fail")
	}
	if _, err := netcdf.ReadWOA("a.nc", "b.nc", 13, 0, 1, 0, 1); err == nil {
		t.Error("month 13 should fail")
	}
}
