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

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/oceanmodel/seaprop/grid"
)

// ReadBathymetry loads an ETOPO-style bathymetry database and subsets
// it to the given bounding box in degrees. The returned rank-2 grid
// has latitude and longitude axes and holds altitude in meters
// relative to the mean sea surface (negative under water), with PCHIP
// interpolation and clamped edges on both axes.
//
// Longitudes in the file may run either -180..180 or 0..360; the
// requested box is shifted by 360 degrees when needed to match.
func ReadBathymetry(path string, south, north, west, east float64) (*grid.Grid, error) {
	f, ff, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	latName, err := findVariable(ff, "lat", "latitude", "y")
	if err != nil {
		return nil, err
	}
	lonName, err := findVariable(ff, "lon", "longitude", "x")
	if err != nil {
		return nil, err
	}
	heightName, err := findVariable(ff, "z", "height", "elevation", "rose")
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
	height, err := readFloats(ff, heightName)
	if err != nil {
		return nil, err
	}
	if len(height) != len(lat)*len(lon) {
		return nil, fmt.Errorf("seaprop: bathymetry variable %s has %d values, expected %d by %d",
			heightName, len(height), len(lat), len(lon))
	}

	// shift the requested box onto the file's longitude branch
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
		return nil, fmt.Errorf("seaprop: bathymetry latitude subset: %w", err)
	}
	lon0, lon1, err := subsetRange(lon, west, east)
	if err != nil {
		return nil, fmt.Errorf("seaprop: bathymetry longitude subset: %w", err)
	}

	nlat := lat1 - lat0 + 1
	nlon := lon1 - lon0 + 1
	data := sparse.ZerosDense(nlat, nlon)
	for i := 0; i < nlat; i++ {
		for j := 0; j < nlon; j++ {
			data.Set(height[(lat0+i)*len(lon)+lon0+j], i, j)
		}
	}

	latAxis, err := grid.NewData(lat[lat0 : lat1+1])
	if err != nil {
		return nil, fmt.Errorf("seaprop: bathymetry latitude axis: %w", err)
	}
	lonAxis, err := grid.NewData(lon[lon0 : lon1+1])
	if err != nil {
		return nil, fmt.Errorf("seaprop: bathymetry longitude axis: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file": path,
		"lat":  nlat,
		"lon":  nlon,
	}).Debug("loaded bathymetry grid")

	return grid.NewGrid(
		[]grid.Axis{latAxis, lonAxis},
		data,
		[]grid.Interp{grid.PCHIP, grid.PCHIP},
		[]bool{true, true},
	)
}
