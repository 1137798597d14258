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

// Package ocean models the synthetic natural environment sampled by
// acoustic propagation engines: the sound speed profile of the water
// column, the reflecting and scattering surface and bottom boundaries,
// volume scattering layers, and ambient noise.
//
// The package composes three orthogonal capabilities at construction
// time: profiles own an attenuation delegate, boundaries own a
// reflection loss and a scattering delegate. Every model is frozen
// once its constructor returns, so many propagation workers can share
// a single Ocean without locking. The process-wide registry
// (Current/Update) atomically publishes one Ocean at a time; readers
// keep their snapshot alive for the duration of a computation while
// publishers swap in replacements.
package ocean
