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

package ocean

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/oceanmodel/seaprop/grid"
	"github.com/oceanmodel/seaprop/netcdf"
)

// MakeIso builds an isovelocity ocean with no absorption and a flat
// bottom at the given depth in meters, and publishes it to the shared
// registry. The surface is a pressure release boundary; the bottom
// reflects with the given loss in dB.
func MakeIso(depth, bottomLoss float64) (*Ocean, error) {
	surfLoss, err := NewConstantReflectLoss(0, math.Pi)
	if err != nil {
		return nil, err
	}
	surface := NewFlatBoundary(0, surfLoss, NewConstantScattering(-30))

	botLoss, err := NewConstantReflectLoss(bottomLoss, 0)
	if err != nil {
		return nil, err
	}
	bottom := NewFlatBoundary(-depth, botLoss, NewConstantScattering(-30))

	att, err := NewConstantAttenuation(0)
	if err != nil {
		return nil, err
	}
	profile, err := NewLinearProfile(1500, att)
	if err != nil {
		return nil, err
	}

	o, err := NewOcean(surface, bottom, profile, nil, nil)
	if err != nil {
		return nil, err
	}
	Update(o)
	return o, nil
}

// Standard database file names relative to the data directory passed
// to MakeBasic.
const (
	etopoFile       = "bathymetry/ETOPO1_Ice_g_gmt4.grd"
	tempSeasonal    = "woa09/temperature_seasonal_1deg.nc"
	tempMonthly     = "woa09/temperature_monthly_1deg.nc"
	salinitySeason  = "woa09/salinity_seasonal_1deg.nc"
	salinityMonthly = "woa09/salinity_monthly_1deg.nc"
)

// MakeBasic builds a simple but realistic ocean from the standard
// databases under dataDir, and publishes it to the shared registry:
// ETOPO bathymetry with Rayleigh loss and Lambert scattering on the
// bottom, a wind-blown surface with Eckart loss and Chapman
// scattering, and a Mackenzie sound speed profile derived from World
// Ocean Atlas temperature and salinity for the given month (1-12).
// The bounding box is in degrees.
func MakeBasic(dataDir string, south, north, west, east float64, month int, windSpeed float64, bottomType BottomType) (*Ocean, error) {
	surfLoss, err := NewEckart(windSpeed)
	if err != nil {
		return nil, err
	}
	surfScat, err := NewChapman(windSpeed)
	if err != nil {
		return nil, err
	}
	surface := NewFlatBoundary(0, surfLoss, surfScat)

	logrus.WithField("dir", dataDir).Info("loading bathymetry")
	bathyGrid, err := netcdf.ReadBathymetry(filepath.Join(dataDir, etopoFile), south, north, west, east)
	if err != nil {
		return nil, fmt.Errorf("seaprop: basic ocean bathymetry: %w", err)
	}
	bathy, err := grid.NewBathy(bathyGrid)
	if err != nil {
		return nil, err
	}
	botLoss, err := NewRayleigh(bottomType)
	if err != nil {
		return nil, err
	}
	bottom, err := NewGridBoundary(bathy, botLoss, NewLambert(MackenzieCoeff))
	if err != nil {
		return nil, err
	}

	logrus.WithField("month", month).Info("loading world ocean atlas profiles")
	temp, err := netcdf.ReadWOA(
		filepath.Join(dataDir, tempSeasonal), filepath.Join(dataDir, tempMonthly),
		month, south, north, west, east)
	if err != nil {
		return nil, fmt.Errorf("seaprop: basic ocean temperature: %w", err)
	}
	sal, err := netcdf.ReadWOA(
		filepath.Join(dataDir, salinitySeason), filepath.Join(dataDir, salinityMonthly),
		month, south, north, west, east)
	if err != nil {
		return nil, fmt.Errorf("seaprop: basic ocean salinity: %w", err)
	}
	ssp, err := MackenzieGrid(temp, sal)
	if err != nil {
		return nil, err
	}
	profile, err := NewGridProfile(ssp, NewThorp())
	if err != nil {
		return nil, err
	}

	ambient, err := NewWenz(windSpeed, 0.5)
	if err != nil {
		return nil, err
	}

	o, err := NewOcean(surface, bottom, profile, nil, ambient)
	if err != nil {
		return nil, err
	}
	Update(o)
	return o, nil
}
