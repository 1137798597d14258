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

package netcdf

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/oceanmodel/seaprop/grid"
)

// ReadWOA loads one World Ocean Atlas climatology, such as temperature
// or salinity, and subsets it to the given bounding box. The monthly
// file resolves the upper ocean for the requested month (1-12); the
// seasonal file extends the profile to full depth using the season
// containing that month. The returned rank-3 grid has altitude
// (meters, negative down), latitude, and longitude axes, linear
// interpolation, and clamped edges.
func ReadWOA(seasonalPath, monthlyPath string, month int, south, north, west, east float64) (*grid.Grid, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("seaprop: woa month must be in 1..12, got %d", month)
	}

	deep, err := readWOAFile(seasonalPath, (month-1)/3, south, north, west, east)
	if err != nil {
		return nil, err
	}
	upper, err := readWOAFile(monthlyPath, month-1, south, north, west, east)
	if err != nil {
		return nil, err
	}
	if len(upper.lat) != len(deep.lat) || len(upper.lon) != len(deep.lon) {
		return nil, fmt.Errorf("seaprop: woa monthly grid %dx%d does not match seasonal grid %dx%d",
			len(upper.lat), len(upper.lon), len(deep.lat), len(deep.lon))
	}

	// monthly data replaces the seasonal upper ocean; seasonal depths
	// below the monthly coverage complete the water column
	nlat, nlon := len(deep.lat), len(deep.lon)
	ndep := len(deep.depth)
	nupper := len(upper.depth)
	data := sparse.ZerosDense(ndep, nlat, nlon)
	alt := make([]float64, ndep)
	for d := 0; d < ndep; d++ {
		alt[d] = -deep.depth[d]
		src := deep
		if d < nupper && upper.depth[d] == deep.depth[d] {
			src = upper
		}
		for i := 0; i < nlat; i++ {
			for j := 0; j < nlon; j++ {
				data.Set(src.values[(d*nlat+i)*nlon+j], d, i, j)
			}
		}
	}

	altAxis, err := grid.NewData(alt)
	if err != nil {
		return nil, fmt.Errorf("seaprop: woa depth axis: %w", err)
	}
	latAxis, err := grid.NewData(deep.lat)
	if err != nil {
		return nil, fmt.Errorf("seaprop: woa latitude axis: %w", err)
	}
	lonAxis, err := grid.NewData(deep.lon)
	if err != nil {
		return nil, fmt.Errorf("seaprop: woa longitude axis: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"seasonal": seasonalPath,
		"monthly":  monthlyPath,
		"month":    month,
		"depths":   ndep,
	}).Debug("loaded world ocean atlas grid")

	return grid.NewGrid(
		[]grid.Axis{altAxis, latAxis, lonAxis},
		data,
		[]grid.Interp{grid.Linear, grid.Linear, grid.Linear},
		[]bool{true, true, true},
	)
}

// woaSubset is one record of a WOA file restricted to a bounding box.
type woaSubset struct {
	depth  []float64
	lat    []float64
	lon    []float64
	values []float64 // row-major (depth, lat, lon)
}

func readWOAFile(path string, record int, south, north, west, east float64) (*woaSubset, error) {
	f, ff, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	depthName, err := findVariable(ff, "depth", "z")
	if err != nil {
		return nil, err
	}
	latName, err := findVariable(ff, "lat", "latitude")
	if err != nil {
		return nil, err
	}
	lonName, err := findVariable(ff, "lon", "longitude")
	if err != nil {
		return nil, err
	}
	varName, err := findClimatology(ff)
	if err != nil {
		return nil, err
	}

	depth, err := readFloats(ff, depthName)
	if err != nil {
		return nil, err
	}
	lat, err := readFloats(ff, latName)
	if err != nil {
		return nil, err
	}
	lon, err := readFloats(ff, lonName)
	if err != nil {
		return nil, err
	}
	all, err := readFloatsAt(ff, varName, record)
	if err != nil {
		return nil, err
	}
	if len(all) != len(depth)*len(lat)*len(lon) {
		return nil, fmt.Errorf("seaprop: woa variable %s record has %d values, expected %d",
			varName, len(all), len(depth)*len(lat)*len(lon))
	}

	if len(lon) > 0 {
		for west > lon[len(lon)-1] {
			west -= 360
			east -= 360
		}
		for east < lon[0] {
			west += 360
			east += 360
		}
	}
	lat0, lat1, err := subsetRange(lat, south, north)
	if err != nil {
		return nil, fmt.Errorf("seaprop: woa latitude subset: %w", err)
	}
	lon0, lon1, err := subsetRange(lon, west, east)
	if err != nil {
		return nil, fmt.Errorf("seaprop: woa longitude subset: %w", err)
	}

	nlat := lat1 - lat0 + 1
	nlon := lon1 - lon0 + 1
	out := &woaSubset{
		depth:  depth,
		lat:    lat[lat0 : lat1+1],
		lon:    lon[lon0 : lon1+1],
		values: make([]float64, len(depth)*nlat*nlon),
	}
	for d := range depth {
		for i := 0; i < nlat; i++ {
			for j := 0; j < nlon; j++ {
				out.values[(d*nlat+i)*nlon+j] =
					all[(d*len(lat)+lat0+i)*len(lon)+lon0+j]
			}
		}
	}
	return out, nil
}

// findClimatology locates the objectively analyzed climatology
// variable: the 4-dimensional variable of the file.
func findClimatology(ff *cdf.File) (string, error) {
	for _, name := range ff.Header.Variables() {
		if len(ff.Header.Lengths(name)) == 4 {
			return name, nil
		}
	}
	return "", fmt.Errorf("seaprop: woa file has no 4-dimensional climatology variable")
}
