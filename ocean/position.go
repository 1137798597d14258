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

// Position locates a point in the ocean by geodetic coordinates.
// Altitude is measured upward from the mean sea surface, so points in
// the water column carry negative altitudes.
type Position struct {
	Latitude  float64 // degrees north
	Longitude float64 // degrees east
	Altitude  float64 // meters above the sea surface
}

// Depth returns the positive-down depth of the position in meters.
func (p Position) Depth() float64 { return -p.Altitude }

// reference sound speed in sea water used by the surface loss models
const refSoundSpeed = 1500.0 // m/s
