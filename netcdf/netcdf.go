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

// Package netcdf loads gridded ocean databases from NetCDF files into
// seaprop grids: ETOPO-style bathymetry and World Ocean Atlas
// temperature and salinity climatologies. Files are held open only for
// the duration of a load; the returned grids own their data and stay
// independent of the files they came from.
package netcdf

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
)

// openFile opens a NetCDF file for reading. The caller closes the
// returned *os.File when the load finishes.
func openFile(path string) (*os.File, *cdf.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("seaprop: opening netcdf file: %w", err)
	}
	ff, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("seaprop: reading netcdf header %s: %w", path, err)
	}
	return f, ff, nil
}

// findVariable returns the first of the candidate names present in the
// file.
func findVariable(ff *cdf.File, names ...string) (string, error) {
	for _, name := range names {
		if len(ff.Header.Lengths(name)) > 0 {
			return name, nil
		}
	}
	return "", fmt.Errorf("seaprop: netcdf file has none of the variables %v", names)
}

// readFloats reads the full contents of a variable as float64,
// regardless of its storage type.
func readFloats(ff *cdf.File, name string) ([]float64, error) {
	r := ff.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("seaprop: reading netcdf variable %s: %w", name, err)
	}
	return toFloats(buf)
}

// readFloatsAt reads one record (leading-dimension slice) of a
// variable as float64.
func readFloatsAt(ff *cdf.File, name string, record int) ([]float64, error) {
	dims := ff.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("seaprop: netcdf variable %s not in file", name)
	}
	nread := 1
	for _, dim := range dims[1:] {
		nread *= dim
	}
	start := make([]int, len(dims))
	end := make([]int, len(dims))
	start[0], end[0] = record, record+1
	for i := 1; i < len(dims); i++ {
		end[i] = dims[i]
	}
	r := ff.Reader(name, start, end)
	buf := r.Zero(nread)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("seaprop: reading netcdf variable %s record %d: %w", name, record, err)
	}
	return toFloats(buf)
}

func toFloats(buf interface{}) ([]float64, error) {
	switch v := buf.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("seaprop: unsupported netcdf data type %T", buf)
	}
}

// subsetRange returns the index range [lo, hi] of the sorted ascending
// coordinate list that covers [min, max], widened by one sample on
// each side so interpolation near the box edges has support.
func subsetRange(coords []float64, min, max float64) (lo, hi int, err error) {
	if min > max {
		return 0, 0, fmt.Errorf("seaprop: empty coordinate range [%g, %g]", min, max)
	}
	lo = 0
	for lo < len(coords) && coords[lo] < min {
		lo++
	}
	hi = len(coords) - 1
	for hi >= 0 && coords[hi] > max {
		hi--
	}
	if lo > 0 {
		lo--
	}
	if hi < len(coords)-1 {
		hi++
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("seaprop: coordinate range [%g, %g] outside file domain [%g, %g]",
			min, max, coords[0], coords[len(coords)-1])
	}
	return lo, hi, nil
}
