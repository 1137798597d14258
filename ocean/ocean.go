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

// Ocean combines the surface, bottom, profile, volume layers, and
// ambient noise into a single environment. It adds no modeling logic
// of its own; queries forward to the components. An Ocean is frozen at
// construction so propagation workers can share it without locking.
type Ocean struct {
	surface Boundary
	bottom  Boundary
	profile Profile
	volumes []*Volume
	ambient Ambient
}

// NewOcean assembles an ocean from its components. Surface, bottom,
// and profile are required; volumes and ambient may be nil. The
// volumes slice is copied so the caller's slice stays independent.
func NewOcean(surface, bottom Boundary, profile Profile, volumes []*Volume, ambient Ambient) (*Ocean, error) {
	if surface == nil {
		return nil, fmt.Errorf("seaprop: ocean needs a surface boundary")
	}
	if bottom == nil {
		return nil, fmt.Errorf("seaprop: ocean needs a bottom boundary")
	}
	if profile == nil {
		return nil, fmt.Errorf("seaprop: ocean needs a sound speed profile")
	}
	o := &Ocean{surface: surface, bottom: bottom, profile: profile, ambient: ambient}
	if len(volumes) > 0 {
		o.volumes = make([]*Volume, len(volumes))
		copy(o.volumes, volumes)
	}
	return o, nil
}

// Surface returns the ocean surface boundary.
func (o *Ocean) Surface() Boundary { return o.surface }

// Bottom returns the ocean bottom boundary.
func (o *Ocean) Bottom() Boundary { return o.bottom }

// Profile returns the sound speed profile.
func (o *Ocean) Profile() Profile { return o.profile }

// Volumes returns the volume scattering layers, which may be empty.
// Callers must not modify the returned slice.
func (o *Ocean) Volumes() []*Volume { return o.volumes }

// Ambient returns the ambient noise model, or nil when the ocean
// carries none.
func (o *Ocean) Ambient() Ambient { return o.ambient }

// SoundSpeed forwards to the profile.
func (o *Ocean) SoundSpeed(p Position, grad []float64) float64 {
	return o.profile.SoundSpeed(p, grad)
}

// Attenuate forwards to the profile's attenuation delegate.
func (o *Ocean) Attenuate(p Position, freq grid.Axis, distance float64, loss []float64) {
	o.profile.Attenuate(p, freq, distance, loss)
}
