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

	"github.com/ctessum/sparse"
	"github.com/oceanmodel/seaprop/grid"
)

// Profile computes the environmental parameters of the water column:
// the sound speed and the absorption of sea water. Every profile owns
// exactly one attenuation delegate, injected at construction, so that
// a published profile is fully immutable.
type Profile interface {
	// SoundSpeed returns the speed of sound in m/s at p. If grad is
	// non-nil it must have three elements and receives the sound
	// speed gradient in (altitude, latitude, longitude) order, with
	// the altitude component in (m/s)/m.
	SoundSpeed(p Position, grad []float64) float64

	// Attenuate fills loss with the absorption loss in dB over a
	// path of length distance (m) at each frequency (Hz).
	Attenuate(p Position, freq grid.Axis, distance float64, loss []float64)
}

// profileBase carries the attenuation delegate shared by all profile
// variants.
type profileBase struct {
	att Attenuation
}

func newProfileBase(att Attenuation) profileBase {
	if att == nil {
		att, _ = NewConstantAttenuation(0)
	}
	return profileBase{att: att}
}

// Attenuate implements Profile by delegation.
func (b profileBase) Attenuate(p Position, freq grid.Axis, distance float64, loss []float64) {
	b.att.Attenuate(p, freq, distance, loss)
}

// LinearProfile is an isovelocity water column.
type LinearProfile struct {
	profileBase
	speed float64
}

// NewLinearProfile creates a profile with a constant sound speed in
// m/s. A nil attenuation delegate means a lossless water column.
func NewLinearProfile(speed float64, att Attenuation) (*LinearProfile, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("seaprop: sound speed must be positive, got %g", speed)
	}
	return &LinearProfile{profileBase: newProfileBase(att), speed: speed}, nil
}

// SoundSpeed implements Profile.
func (l *LinearProfile) SoundSpeed(_ Position, grad []float64) float64 {
	zeroGrad(grad)
	return l.speed
}

// MunkProfile is Munk's idealized deep sound channel.
type MunkProfile struct {
	profileBase
	axisDepth float64 // channel axis depth, m
	scale     float64 // perturbation scale, m
	axisSpeed float64 // sound speed on the axis, m/s
	epsilon   float64 // perturbation coefficient
}

// NewMunkProfile creates a Munk profile. The canonical SOFAR channel
// uses axisDepth 1300 m, scale 1300 m, axisSpeed 1500 m/s, and
// epsilon 7.37e-3.
func NewMunkProfile(axisDepth, scale, axisSpeed, epsilon float64, att Attenuation) (*MunkProfile, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("seaprop: munk perturbation scale must be positive, got %g", scale)
	}
	if axisSpeed <= 0 {
		return nil, fmt.Errorf("seaprop: sound speed must be positive, got %g", axisSpeed)
	}
	return &MunkProfile{
		profileBase: newProfileBase(att),
		axisDepth:   axisDepth,
		scale:       scale,
		axisSpeed:   axisSpeed,
		epsilon:     epsilon,
	}, nil
}

// SoundSpeed implements Profile.
func (m *MunkProfile) SoundSpeed(p Position, grad []float64) float64 {
	zt := 2 * (p.Depth() - m.axisDepth) / m.scale
	c := m.axisSpeed * (1 + m.epsilon*(zt-1+math.Exp(-zt)))
	if grad != nil {
		zeroGrad(grad)
		// chain rule: d(depth)/d(altitude) = -1
		grad[0] = -m.axisSpeed * m.epsilon * (1 - math.Exp(-zt)) * 2 / m.scale
	}
	return c
}

// N2Profile is the "n squared linear" downward refracting profile, in
// which the square of the index of refraction varies linearly with
// depth.
type N2Profile struct {
	profileBase
	surfaceSpeed float64
	gradient     float64
}

// NewN2Profile creates an n^2 linear profile from the surface sound
// speed in m/s and the index gradient g0 in 1/s.
func NewN2Profile(surfaceSpeed, gradient float64, att Attenuation) (*N2Profile, error) {
	if surfaceSpeed <= 0 {
		return nil, fmt.Errorf("seaprop: sound speed must be positive, got %g", surfaceSpeed)
	}
	return &N2Profile{profileBase: newProfileBase(att), surfaceSpeed: surfaceSpeed, gradient: gradient}, nil
}

// SoundSpeed implements Profile.
func (n *N2Profile) SoundSpeed(p Position, grad []float64) float64 {
	w := 1 + 2*n.gradient*p.Depth()/n.surfaceSpeed
	c := n.surfaceSpeed / math.Sqrt(w)
	if grad != nil {
		zeroGrad(grad)
		grad[0] = n.gradient * math.Pow(w, -1.5)
	}
	return c
}

// CatenaryProfile is an idealized channel whose rays are catenaries,
// c(z) = axisSpeed * cosh((z - axisDepth)/scale).
type CatenaryProfile struct {
	profileBase
	axisSpeed float64
	axisDepth float64
	scale     float64
}

// NewCatenaryProfile creates a catenary profile from the sound speed
// at the channel axis (m/s), the axis depth (m), and the perturbation
// scale (m).
func NewCatenaryProfile(axisSpeed, axisDepth, scale float64, att Attenuation) (*CatenaryProfile, error) {
	if axisSpeed <= 0 {
		return nil, fmt.Errorf("seaprop: sound speed must be positive, got %g", axisSpeed)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("seaprop: catenary scale must be positive, got %g", scale)
	}
	return &CatenaryProfile{
		profileBase: newProfileBase(att),
		axisSpeed:   axisSpeed,
		axisDepth:   axisDepth,
		scale:       scale,
	}, nil
}

// SoundSpeed implements Profile.
func (c *CatenaryProfile) SoundSpeed(p Position, grad []float64) float64 {
	u := (p.Depth() - c.axisDepth) / c.scale
	if grad != nil {
		zeroGrad(grad)
		grad[0] = -c.axisSpeed / c.scale * math.Sinh(u)
	}
	return c.axisSpeed * math.Cosh(u)
}

// GridProfile samples sound speed from a gridded field: either a
// rank-1 grid over altitude or a rank-3 grid over (altitude, latitude,
// longitude).
type GridProfile struct {
	profileBase
	ssp *grid.Grid
}

// NewGridProfile wraps a sound speed grid. The grid's first axis must
// be altitude in meters (negative down); a rank-3 grid adds latitude
// and longitude axes in degrees.
func NewGridProfile(ssp *grid.Grid, att Attenuation) (*GridProfile, error) {
	if r := ssp.Rank(); r != 1 && r != 3 {
		return nil, fmt.Errorf("seaprop: sound speed grid must have rank 1 or 3, got %d", r)
	}
	return &GridProfile{profileBase: newProfileBase(att), ssp: ssp}, nil
}

// SoundSpeed implements Profile.
func (g *GridProfile) SoundSpeed(p Position, grad []float64) float64 {
	if g.ssp.Rank() == 1 {
		loc := [1]float64{p.Altitude}
		if grad == nil {
			return g.ssp.Interpolate(loc[:], nil)
		}
		var d [1]float64
		c := g.ssp.Interpolate(loc[:], d[:])
		zeroGrad(grad)
		grad[0] = d[0]
		return c
	}
	loc := [3]float64{p.Altitude, p.Latitude, p.Longitude}
	if grad == nil {
		return g.ssp.Interpolate(loc[:], nil)
	}
	return g.ssp.Interpolate(loc[:], grad)
}

// MackenzieGrid derives a sound speed grid from temperature and
// salinity grids using Mackenzie's nine-term empirical formula.
// Temperature is in degrees C, salinity in parts per thousand, and
// depth comes from the first axis (altitude in meters, negative down).
// The two grids must share their shape; the result reuses the
// temperature grid's axes and interpolation settings.
func MackenzieGrid(temp, sal *grid.Grid) (*grid.Grid, error) {
	if temp.Rank() != 3 || sal.Rank() != 3 {
		return nil, fmt.Errorf("seaprop: mackenzie needs rank-3 temperature and salinity grids, got %d and %d",
			temp.Rank(), sal.Rank())
	}
	axes := make([]grid.Axis, 3)
	interp := make([]grid.Interp, 3)
	clamp := make([]bool, 3)
	shape := make([]int, 3)
	for dim := 0; dim < 3; dim++ {
		axes[dim] = temp.Axis(dim)
		interp[dim] = temp.InterpType(dim)
		clamp[dim] = temp.EdgeClamp(dim)
		shape[dim] = temp.Axis(dim).Size()
		if sal.Axis(dim).Size() != shape[dim] {
			return nil, fmt.Errorf("seaprop: mackenzie grid shape mismatch on axis %d: %d vs %d",
				dim, shape[dim], sal.Axis(dim).Size())
		}
	}
	data := sparse.ZerosDense(shape...)
	for i := 0; i < shape[0]; i++ {
		depth := -axes[0].Value(i)
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				data.Set(mackenzie(temp.Value(i, j, k), sal.Value(i, j, k), depth), i, j, k)
			}
		}
	}
	return grid.NewGrid(axes, data, interp, clamp)
}

// mackenzie is Mackenzie's 1981 nine-term equation for the speed of
// sound in sea water: temperature in degrees C, salinity in parts per
// thousand, depth in meters.
func mackenzie(t, s, d float64) float64 {
	return 1448.96 + 4.591*t - 5.304e-2*t*t + 2.374e-4*t*t*t +
		1.340*(s-35) + 1.630e-2*d + 1.675e-7*d*d -
		1.025e-2*t*(s-35) - 7.139e-13*t*d*d*d
}

func zeroGrad(grad []float64) {
	if grad == nil {
		return
	}
	for i := range grad {
		grad[i] = 0
	}
}
