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

package ocean_test

import (
	"testing"

	"github.com/oceanmodel/seaprop/ocean"
)

// An isovelocity ocean with a flat bottom: constant sound speed, no
// absorption, published to the registry.
func TestMakeIso(t *testing.T) {
	defer ocean.Reset()

	o, err := ocean.MakeIso(100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ocean.Current() != o {
		t.Error("make iso should publish the ocean")
	}

	for _, pos := range []ocean.Position{
		{},
		{Latitude: 10, Longitude: -45, Altitude: -50},
	} {
		if got := o.SoundSpeed(pos, nil); got != 1500 {
			t.Errorf("sound speed at %+v: want 1500, got %g", pos, got)
		}
	}
	if got := o.Bottom().Height(ocean.Position{Latitude: 36, Longitude: 16}, nil); got != -100 {
		t.Errorf("bottom height: want -100, got %g", got)
	}
	if got := o.Surface().Height(ocean.Position{}, nil); got != 0 {
		t.Errorf("surface height: want 0, got %g", got)
	}

	freq := freqAxis(t)
	loss := make([]float64, freq.Size())
	o.Attenuate(ocean.Position{}, freq, 10000, loss)
	for i, l := range loss {
		if l != 0 {
			t.Errorf("attenuation[%d]: want 0, got %g", i, l)
		}
	}

	amp := make([]float64, freq.Size())
	o.Bottom().ReflectLoss(ocean.Position{}, freq, 0.5, amp, nil)
	for i, v := range amp {
		if v != 0 {
			t.Errorf("bottom loss[%d]: want 0, got %g", i, v)
		}
	}
}
