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
	"math"
	"testing"

	"github.com/oceanmodel/seaprop/ocean"
)

func TestConstantScattering(t *testing.T) {
	s := ocean.NewConstantScattering(-30)
	freq := freqAxis(t)
	out := make([]float64, freq.Size())
	s.Scattering(ocean.Position{}, freq, 0.3, 0.4, 0, 1, out)
	for i, v := range out {
		if v != -30 {
			t.Errorf("constant scattering[%d]: want -30, got %g", i, v)
		}
	}
}

func TestLambertScattering(t *testing.T) {
	s := ocean.NewLambert(ocean.MackenzieCoeff)
	freq := freqAxis(t)
	out := make([]float64, freq.Size())
	angle := math.Pi / 2
	s.Scattering(ocean.Position{}, freq, angle, angle, 0, 0, out)
	// normal incidence in and out: strength equals the coefficient
	for i, v := range out {
		if math.Abs(v-ocean.MackenzieCoeff) > 1e-12 {
			t.Errorf("lambert at normal incidence[%d]: want %g, got %g",
				i, ocean.MackenzieCoeff, v)
		}
	}

	// shallower angles scatter less
	shallow := make([]float64, freq.Size())
	s.Scattering(ocean.Position{}, freq, math.Pi/6, math.Pi/6, 0, 0, shallow)
	if shallow[0] >= out[0] {
		t.Errorf("lambert should weaken at shallow angles: %g >= %g", shallow[0], out[0])
	}
}

func TestChapmanScattering(t *testing.T) {
	if _, err := ocean.NewChapman(-2); err == nil {
		t.Error("negative wind speed should fail")
	}
	s, err := ocean.NewChapman(10)
	if err != nil {
		t.Fatal(err)
	}
	freq := freqAxis(t)
	steep := make([]float64, freq.Size())
	shallow := make([]float64, freq.Size())
	s.Scattering(ocean.Position{}, freq, 45*math.Pi/180, 0, 0, 0, steep)
	s.Scattering(ocean.Position{}, freq, 10*math.Pi/180, 0, 0, 0, shallow)
	for i := range steep {
		if steep[i] <= shallow[i] {
			t.Errorf("surface scattering should grow with grazing angle at %g Hz: steep %g, shallow %g",
				freq.Value(i), steep[i], shallow[i])
		}
	}
}

func TestWenzAmbient(t *testing.T) {
	if _, err := ocean.NewWenz(-1, 0.5); err == nil {
		t.Error("negative wind speed should fail")
	}
	if _, err := ocean.NewWenz(5, 2); err == nil {
		t.Error("shipping activity above 1 should fail")
	}

	calm, err := ocean.NewWenz(0, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	windy, err := ocean.NewWenz(20, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	freq := freqAxis(t)
	n := freq.Size()
	calmNoise := make([]float64, n)
	windyNoise := make([]float64, n)
	calm.Ambient(ocean.Position{}, freq, calmNoise)
	windy.Ambient(ocean.Position{}, freq, windyNoise)
	for i := 0; i < n; i++ {
		if windyNoise[i] <= calmNoise[i] {
			t.Errorf("wind should raise the noise floor at %g Hz: calm %g, windy %g",
				freq.Value(i), calmNoise[i], windyNoise[i])
		}
	}

	c := ocean.NewConstantAmbient(60)
	out := make([]float64, n)
	c.Ambient(ocean.Position{}, freq, out)
	for i, v := range out {
		if v != 60 {
			t.Errorf("constant ambient[%d]: want 60, got %g", i, v)
		}
	}
}

func TestVolume(t *testing.T) {
	if _, err := ocean.NewVolume(600, -5, nil); err == nil {
		t.Error("negative layer thickness should fail")
	}
	v, err := ocean.NewVolume(600, 150, ocean.NewConstantScattering(-45))
	if err != nil {
		t.Fatal(err)
	}
	depth, thickness := v.Layer(ocean.Position{})
	if depth != 600 || thickness != 150 {
		t.Errorf("layer: want (600, 150), got (%g, %g)", depth, thickness)
	}
	freq := freqAxis(t)
	out := make([]float64, freq.Size())
	v.Scattering(ocean.Position{}, freq, 0.5, 0.5, 0, 0, out)
	if out[0] != -45 {
		t.Errorf("volume scattering: want -45, got %g", out[0])
	}
}
