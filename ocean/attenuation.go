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
	"gonum.org/v1/gonum/floats"
)

// Attenuation computes the absorption loss of sea water. Models are
// immutable and may be shared freely between profiles and goroutines.
type Attenuation interface {
	// Attenuate fills loss with the absorption loss in dB over a path
	// of length distance (m) at each frequency (Hz). loss must have
	// one element per frequency.
	Attenuate(p Position, freq grid.Axis, distance float64, loss []float64)
}

// ConstantAttenuation applies a frequency-independent absorption
// coefficient.
type ConstantAttenuation struct {
	coeff float64 // dB/km
}

// NewConstantAttenuation creates an attenuation model with a fixed
// coefficient in dB/km.
func NewConstantAttenuation(coeff float64) (*ConstantAttenuation, error) {
	if coeff < 0 {
		return nil, fmt.Errorf("seaprop: attenuation coefficient must be non-negative, got %g", coeff)
	}
	return &ConstantAttenuation{coeff: coeff}, nil
}

// Attenuate implements Attenuation.
func (a *ConstantAttenuation) Attenuate(_ Position, freq grid.Axis, distance float64, loss []float64) {
	for i := range loss {
		loss[i] = a.coeff
	}
	floats.Scale(distance/1000, loss)
}

// ThorpAttenuation is Thorp's empirical fit for the absorption of
// low-frequency sound in sea water.
type ThorpAttenuation struct{}

// NewThorp creates a Thorp attenuation model.
func NewThorp() *ThorpAttenuation { return &ThorpAttenuation{} }

// Attenuate implements Attenuation. The coefficient combines the boric
// acid and magnesium sulfate relaxation terms with the fresh water
// viscosity term, in dB/km with frequency in kHz.
func (*ThorpAttenuation) Attenuate(_ Position, freq grid.Axis, distance float64, loss []float64) {
	for i := range loss {
		f2 := freq.Value(i) / 1000
		f2 *= f2
		loss[i] = 0.11*f2/(1+f2) + 44*f2/(4100+f2) + 2.75e-4*f2 + 0.003
	}
	floats.Scale(distance/1000, loss)
}
