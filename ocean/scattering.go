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

	"github.com/oceanmodel/seaprop/grid"
)

// Scattering computes the diffuse scattering strength of an ocean
// boundary or volume layer. Models are immutable and may be aliased
// across boundaries.
type Scattering interface {
	// Scattering fills strength with the scattering strength in dB at
	// each frequency (Hz) for the incident and scattered grazing
	// angles (rad) and azimuths (rad). strength must have one element
	// per frequency.
	Scattering(p Position, freq grid.Axis, deIncident, deScattered, azIncident, azScattered float64, strength []float64)
}

// ConstantScattering returns a fixed scattering strength at every
// frequency and geometry.
type ConstantScattering struct {
	strength float64 // dB
}

// NewConstantScattering creates a scattering model with a fixed
// strength in dB. Typical boundary defaults are around -30 dB.
func NewConstantScattering(strength float64) *ConstantScattering {
	return &ConstantScattering{strength: strength}
}

// Scattering implements Scattering.
func (c *ConstantScattering) Scattering(_ Position, _ grid.Axis, _, _, _, _ float64, strength []float64) {
	for i := range strength {
		strength[i] = c.strength
	}
}

// ChapmanScattering is the Chapman-Harris empirical curve for surface
// scattering from a wind-roughened sea.
type ChapmanScattering struct {
	windKnots float64
}

// NewChapman creates a Chapman-Harris surface scattering model for the
// given wind speed in m/s.
func NewChapman(windSpeed float64) (*ChapmanScattering, error) {
	if windSpeed < 0 {
		return nil, fmt.Errorf("seaprop: wind speed must be non-negative, got %g", windSpeed)
	}
	return &ChapmanScattering{windKnots: windSpeed / 0.51444}, nil
}

// Scattering implements Scattering. The empirical fit uses the wind
// speed in knots, the frequency in Hz, and the incident grazing angle
// in degrees.
func (c *ChapmanScattering) Scattering(_ Position, freq grid.Axis, deIncident, _, _, _ float64, strength []float64) {
	theta := deIncident * 180 / math.Pi
	for i := range strength {
		beta := 107 * math.Pow(c.windKnots*math.Cbrt(freq.Value(i)), -0.58)
		strength[i] = 3.3*beta*math.Log10(theta/30) - 42.4*math.Log10(beta) + 2.6
	}
}

// LambertScattering is Lambert's law for diffuse bottom scattering
// with Mackenzie's backscattering coefficient as the usual choice.
type LambertScattering struct {
	coeff float64 // dB
}

// MackenzieCoeff is Mackenzie's measured Lambert coefficient for deep
// water bottoms.
const MackenzieCoeff = -27.0

// NewLambert creates a Lambert bottom scattering model with the given
// coefficient in dB.
func NewLambert(coeff float64) *LambertScattering {
	return &LambertScattering{coeff: coeff}
}

// Scattering implements Scattering.
func (l *LambertScattering) Scattering(_ Position, _ grid.Axis, deIncident, deScattered, _, _ float64, strength []float64) {
	s := l.coeff + 10*math.Log10(math.Sin(deIncident)*math.Sin(deScattered))
	for i := range strength {
		strength[i] = s
	}
}
