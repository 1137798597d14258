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
	"gonum.org/v1/gonum/floats"
)

// Ambient computes the background noise of the ocean.
type Ambient interface {
	// Ambient fills noise with the ambient noise spectral density in
	// dB re 1 uPa^2/Hz at each frequency (Hz). noise must have one
	// element per frequency.
	Ambient(p Position, freq grid.Axis, noise []float64)
}

// ConstantAmbient returns a flat noise spectrum.
type ConstantAmbient struct {
	level float64 // dB re 1 uPa^2/Hz
}

// NewConstantAmbient creates an ambient noise model with a fixed
// spectral density.
func NewConstantAmbient(level float64) *ConstantAmbient {
	return &ConstantAmbient{level: level}
}

// Ambient implements Ambient.
func (c *ConstantAmbient) Ambient(_ Position, freq grid.Axis, noise []float64) {
	for i := range noise {
		noise[i] = c.level
	}
}

// WenzAmbient combines the classic Wenz curves: oceanic turbulence,
// distant shipping, wind-driven surface noise, and thermal noise,
// summed in power.
type WenzAmbient struct {
	windSpeed float64 // m/s
	shipping  float64 // shipping activity, 0 (none) to 1 (heavy)
}

// NewWenz creates a Wenz ambient noise model. Wind speed is in m/s and
// shipping activity runs from 0 to 1.
func NewWenz(windSpeed, shipping float64) (*WenzAmbient, error) {
	if windSpeed < 0 {
		return nil, fmt.Errorf("seaprop: wind speed must be non-negative, got %g", windSpeed)
	}
	if shipping < 0 || shipping > 1 {
		return nil, fmt.Errorf("seaprop: shipping activity must be in [0,1], got %g", shipping)
	}
	return &WenzAmbient{windSpeed: windSpeed, shipping: shipping}, nil
}

// Ambient implements Ambient. Component levels follow the usual
// parametric fits to the Wenz curves with frequency in kHz.
func (w *WenzAmbient) Ambient(_ Position, freq grid.Axis, noise []float64) {
	n := freq.Size()
	turbulence := make([]float64, n)
	shipping := make([]float64, n)
	wind := make([]float64, n)
	thermal := make([]float64, n)
	for i := 0; i < n; i++ {
		fk := freq.Value(i) / 1000
		lf := math.Log10(fk)
		turbulence[i] = 17 - 30*lf
		shipping[i] = 40 + 20*(w.shipping-0.5) + 26*lf - 60*math.Log10(fk+0.03)
		wind[i] = 50 + 7.5*math.Sqrt(w.windSpeed) + 20*lf - 40*math.Log10(fk+0.4)
		thermal[i] = -15 + 20*lf
	}
	for i := range noise {
		noise[i] = powerSum(turbulence[i], shipping[i], wind[i], thermal[i])
	}
}

// powerSum combines decibel levels as incoherent power.
func powerSum(levels ...float64) float64 {
	powers := make([]float64, len(levels))
	for i, l := range levels {
		powers[i] = math.Pow(10, l/10)
	}
	return 10 * math.Log10(floats.Sum(powers))
}
