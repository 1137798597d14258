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
	"math/cmplx"

	"github.com/oceanmodel/seaprop/grid"
)

// ReflectLoss computes the energy lost when a ray bounces off an ocean
// boundary. Models are immutable and may be aliased across boundaries.
type ReflectLoss interface {
	// ReflectLoss fills amplitude with the reflection loss in dB at
	// each frequency (Hz) for a ray striking the boundary at the
	// given grazing angle (rad). When phase is non-nil it receives
	// the phase change of the reflected ray (rad). amplitude, and
	// phase when present, must have one element per frequency.
	ReflectLoss(p Position, freq grid.Axis, angle float64, amplitude, phase []float64)
}

// ConstantReflectLoss reflects with a fixed loss and phase shift at
// every frequency and angle.
type ConstantReflectLoss struct {
	amplitude float64 // dB
	phase     float64 // rad
}

// NewConstantReflectLoss creates a reflection loss model with a fixed
// amplitude loss in dB and phase change in radians. A perfectly
// reflecting pressure-release surface uses (0, math.Pi); a perfectly
// reflecting rigid bottom uses (0, 0).
func NewConstantReflectLoss(amplitude, phase float64) (*ConstantReflectLoss, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("seaprop: reflection loss must be non-negative, got %g", amplitude)
	}
	return &ConstantReflectLoss{amplitude: amplitude, phase: phase}, nil
}

// ReflectLoss implements ReflectLoss.
func (c *ConstantReflectLoss) ReflectLoss(_ Position, _ grid.Axis, _ float64, amplitude, phase []float64) {
	for i := range amplitude {
		amplitude[i] = c.amplitude
	}
	if phase != nil {
		for i := range phase {
			phase[i] = c.phase
		}
	}
}

// pmWaveHeight is the Pierson-Moskowitz rms wave height for a fully
// developed sea at wind speed w (m/s), in meters.
func pmWaveHeight(w float64) float64 { return 0.0053 * w * w }

// EckartReflectLoss is Eckart's coherent surface scattering loss for a
// wind-roughened sea surface.
type EckartReflectLoss struct {
	sigma float64 // rms wave height, m
}

// NewEckart creates an Eckart surface loss model for the given wind
// speed in m/s.
func NewEckart(windSpeed float64) (*EckartReflectLoss, error) {
	if windSpeed < 0 {
		return nil, fmt.Errorf("seaprop: wind speed must be non-negative, got %g", windSpeed)
	}
	return &EckartReflectLoss{sigma: pmWaveHeight(windSpeed)}, nil
}

// ReflectLoss implements ReflectLoss. The coherent reflection
// coefficient is exp(-gamma^2/2) where gamma = 2 k sigma sin(angle) is
// the Rayleigh roughness parameter; the phase change is that of a
// pressure release surface.
func (e *EckartReflectLoss) ReflectLoss(_ Position, freq grid.Axis, angle float64, amplitude, phase []float64) {
	sin := math.Sin(angle)
	for i := range amplitude {
		k := 2 * math.Pi * freq.Value(i) / refSoundSpeed
		gamma := 2 * k * e.sigma * sin
		amplitude[i] = 10 * gamma * gamma * math.Log10E
	}
	if phase != nil {
		for i := range phase {
			phase[i] = math.Pi
		}
	}
}

// BeckmannReflectLoss is a two-scale surface loss in the manner of
// Beckmann and Spizzichino: a coherent specular term that decays with
// the Rayleigh roughness parameter plus a diffuse residual that bounds
// the loss once the surface is fully rough.
type BeckmannReflectLoss struct {
	sigma float64 // rms wave height, m
}

// NewBeckmann creates a Beckmann surface loss model for the given wind
// speed in m/s.
func NewBeckmann(windSpeed float64) (*BeckmannReflectLoss, error) {
	if windSpeed < 0 {
		return nil, fmt.Errorf("seaprop: wind speed must be non-negative, got %g", windSpeed)
	}
	return &BeckmannReflectLoss{sigma: pmWaveHeight(windSpeed)}, nil
}

// diffuse residual power ratio of a fully rough sea surface
const beckmannResidual = 0.2

// ReflectLoss implements ReflectLoss.
func (b *BeckmannReflectLoss) ReflectLoss(_ Position, freq grid.Axis, angle float64, amplitude, phase []float64) {
	sin := math.Sin(angle)
	for i := range amplitude {
		k := 2 * math.Pi * freq.Value(i) / refSoundSpeed
		gamma := 2 * k * b.sigma * sin
		coherent := math.Exp(-gamma * gamma)
		power := coherent + (1-coherent)*beckmannResidual*sin
		amplitude[i] = -10 * math.Log10(power)
	}
	if phase != nil {
		for i := range phase {
			phase[i] = math.Pi
		}
	}
}

// BottomType names a sediment province with published geoacoustic
// parameters for the Rayleigh reflection loss model.
type BottomType int

// Sediment provinces ordered from soft to hard.
const (
	Clay BottomType = iota
	Silt
	Sand
	Gravel
	Moraine
	Chalk
	Limestone
	Basalt
)

// String implements fmt.Stringer.
func (t BottomType) String() string {
	switch t {
	case Clay:
		return "clay"
	case Silt:
		return "silt"
	case Sand:
		return "sand"
	case Gravel:
		return "gravel"
	case Moraine:
		return "moraine"
	case Chalk:
		return "chalk"
	case Limestone:
		return "limestone"
	case Basalt:
		return "basalt"
	}
	return fmt.Sprintf("bottom(%d)", int(t))
}

// geoacoustic parameters as ratios to sea water: density, compressional
// speed, and compressional attenuation in dB per wavelength
var bottomProvinces = map[BottomType]struct {
	density float64
	speed   float64
	atten   float64
}{
	Clay:      {1.5, 1.00, 0.2},
	Silt:      {1.7, 1.05, 1.0},
	Sand:      {1.9, 1.10, 0.8},
	Gravel:    {2.0, 1.20, 0.6},
	Moraine:   {2.1, 1.30, 0.4},
	Chalk:     {2.2, 1.60, 0.2},
	Limestone: {2.4, 2.00, 0.1},
	Basalt:    {2.7, 3.50, 0.1},
}

// RayleighReflectLoss computes plane-wave reflection from a uniform
// fluid sediment using the complex two-fluid Rayleigh coefficient.
type RayleighReflectLoss struct {
	density float64 // sediment/water density ratio
	speed   float64 // sediment/water compressional speed ratio
	atten   float64 // compressional attenuation, dB/wavelength
}

// NewRayleigh creates a Rayleigh bottom loss model from a named
// sediment province.
func NewRayleigh(t BottomType) (*RayleighReflectLoss, error) {
	p, ok := bottomProvinces[t]
	if !ok {
		return nil, fmt.Errorf("seaprop: unknown bottom type %v", t)
	}
	return NewRayleighParams(p.density, p.speed, p.atten)
}

// NewRayleighParams creates a Rayleigh bottom loss model from explicit
// geoacoustic ratios.
func NewRayleighParams(density, speed, atten float64) (*RayleighReflectLoss, error) {
	if density <= 0 {
		return nil, fmt.Errorf("seaprop: sediment density ratio must be positive, got %g", density)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("seaprop: sediment speed ratio must be positive, got %g", speed)
	}
	if atten < 0 {
		return nil, fmt.Errorf("seaprop: sediment attenuation must be non-negative, got %g", atten)
	}
	return &RayleighReflectLoss{density: density, speed: speed, atten: atten}, nil
}

// ReflectLoss implements ReflectLoss. The sediment sound speed is made
// complex by the attenuation per wavelength, Snell's law refracts the
// transmitted ray, and the impedance mismatch yields the reflection
// coefficient. The result is independent of frequency because the
// attenuation is specified per wavelength.
func (r *RayleighReflectLoss) ReflectLoss(_ Position, freq grid.Axis, angle float64, amplitude, phase []float64) {
	lossDB, lossPhase := r.coefficient(angle)
	for i := range amplitude {
		amplitude[i] = lossDB
	}
	if phase != nil {
		for i := range phase {
			phase[i] = lossPhase
		}
	}
}

func (r *RayleighReflectLoss) coefficient(angle float64) (lossDB, phase float64) {
	sin1 := math.Sin(angle)
	if sin1 <= 0 {
		// at zero grazing the water impedance diverges and the
		// boundary reflects perfectly with a phase reversal
		return 0, math.Pi
	}
	cos1 := math.Cos(angle)

	// attenuation per wavelength to loss tangent
	delta := r.atten / (40 * math.Pi * math.Log10E)
	c2 := complex(r.speed, 0) / complex(1, delta)

	cos2 := c2 * complex(cos1, 0)
	sin2 := cmplx.Sqrt(1 - cos2*cos2)

	z1 := complex(1/sin1, 0)
	z2 := complex(r.density, 0) * c2 / sin2
	refl := (z2 - z1) / (z2 + z1)

	mag := cmplx.Abs(refl)
	if mag <= 0 {
		return math.Inf(1), 0
	}
	return -20 * math.Log10(mag), cmplx.Phase(refl)
}
