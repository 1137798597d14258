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

// Volume is a horizontal scattering layer in the water column, such as
// a deep scattering layer of biologics. The layer owns one scattering
// delegate injected at construction.
type Volume struct {
	depth     float64 // layer center depth, m
	thickness float64 // layer thickness, m
	scat      Scattering
}

// NewVolume creates a scattering layer centered at the given depth in
// meters. A nil scattering delegate defaults to -30 dB.
func NewVolume(depth, thickness float64, scat Scattering) (*Volume, error) {
	if thickness < 0 {
		return nil, fmt.Errorf("seaprop: volume layer thickness must be non-negative, got %g", thickness)
	}
	if scat == nil {
		scat = NewConstantScattering(-30)
	}
	return &Volume{depth: depth, thickness: thickness, scat: scat}, nil
}

// Layer returns the center depth and thickness of the layer at p, both
// in meters.
func (v *Volume) Layer(_ Position) (depth, thickness float64) {
	return v.depth, v.thickness
}

// Scattering delegates to the layer's scattering model.
func (v *Volume) Scattering(p Position, freq grid.Axis, deI, deS, azI, azS float64, strength []float64) {
	v.scat.Scattering(p, freq, deI, deS, azI, azS, strength)
}
