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

	"github.com/oceanmodel/seaprop/grid"
)

// Boundary computes the environmental parameters of the ocean surface
// or bottom: the interface geometry plus its reflection and scattering
// behavior. Every boundary owns one reflection loss delegate and one
// scattering delegate, injected at construction; delegates may be
// aliased across boundaries.
type Boundary interface {
	// Height returns the altitude of the boundary at p in meters
	// relative to the mean sea surface, negative below it. If normal
	// is non-nil it must have two elements and receives the boundary
	// slopes along latitude and longitude.
	Height(p Position, normal []float64) float64

	// ReflectLoss delegates to the boundary's reflection loss model.
	ReflectLoss(p Position, freq grid.Axis, angle float64, amplitude, phase []float64)

	// Scattering delegates to the boundary's scattering model.
	Scattering(p Position, freq grid.Axis, deIncident, deScattered, azIncident, azScattered float64, strength []float64)
}

// boundaryBase carries the delegates shared by all boundary variants.
type boundaryBase struct {
	loss ReflectLoss
	scat Scattering
}

func newBoundaryBase(loss ReflectLoss, scat Scattering) boundaryBase {
	if loss == nil {
		loss, _ = NewConstantReflectLoss(0, 0)
	}
	if scat == nil {
		scat = NewConstantScattering(-30)
	}
	return boundaryBase{loss: loss, scat: scat}
}

// ReflectLoss implements Boundary by delegation.
func (b boundaryBase) ReflectLoss(p Position, freq grid.Axis, angle float64, amplitude, phase []float64) {
	b.loss.ReflectLoss(p, freq, angle, amplitude, phase)
}

// Scattering implements Boundary by delegation.
func (b boundaryBase) Scattering(p Position, freq grid.Axis, deI, deS, azI, azS float64, strength []float64) {
	b.scat.Scattering(p, freq, deI, deS, azI, azS, strength)
}

// FlatBoundary is a level interface at a fixed altitude.
type FlatBoundary struct {
	boundaryBase
	height float64
}

// NewFlatBoundary creates a level boundary at the given altitude in
// meters: 0 for the sea surface, a negative value for the bottom. Nil
// delegates default to a lossless reflector and -30 dB scattering.
func NewFlatBoundary(height float64, loss ReflectLoss, scat Scattering) *FlatBoundary {
	return &FlatBoundary{boundaryBase: newBoundaryBase(loss, scat), height: height}
}

// Height implements Boundary.
func (f *FlatBoundary) Height(_ Position, normal []float64) float64 {
	if normal != nil {
		normal[0], normal[1] = 0, 0
	}
	return f.height
}

// SlopeBoundary is a plane interface through a reference point with
// constant slopes.
type SlopeBoundary struct {
	boundaryBase
	point    Position
	latSlope float64 // m per degree latitude
	lonSlope float64 // m per degree longitude
}

// NewSlopeBoundary creates a sloped boundary through the reference
// point with the given slopes in meters per degree.
func NewSlopeBoundary(point Position, latSlope, lonSlope float64, loss ReflectLoss, scat Scattering) *SlopeBoundary {
	return &SlopeBoundary{
		boundaryBase: newBoundaryBase(loss, scat),
		point:        point,
		latSlope:     latSlope,
		lonSlope:     lonSlope,
	}
}

// Height implements Boundary.
func (s *SlopeBoundary) Height(p Position, normal []float64) float64 {
	if normal != nil {
		normal[0] = s.latSlope
		normal[1] = s.lonSlope
	}
	return s.point.Altitude +
		s.latSlope*(p.Latitude-s.point.Latitude) +
		s.lonSlope*(p.Longitude-s.point.Longitude)
}

// GridBoundary samples the interface from gridded bathymetry through
// the fast two-dimensional interpolator.
type GridBoundary struct {
	boundaryBase
	bathy *grid.Bathy
}

// NewGridBoundary wraps a bathymetry grid whose axes are latitude and
// longitude in degrees and whose samples are altitudes in meters.
func NewGridBoundary(bathy *grid.Bathy, loss ReflectLoss, scat Scattering) (*GridBoundary, error) {
	if bathy == nil {
		return nil, fmt.Errorf("seaprop: grid boundary needs a bathymetry grid")
	}
	return &GridBoundary{boundaryBase: newBoundaryBase(loss, scat), bathy: bathy}, nil
}

// Height implements Boundary.
func (g *GridBoundary) Height(p Position, normal []float64) float64 {
	loc := [2]float64{p.Latitude, p.Longitude}
	return g.bathy.Interpolate(loc[:], normal)
}
