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

// Package grid supports N-dimensional gridded geophysical fields and
// their associated axes. An axis is a read-only, strictly monotonic
// sequence of values with fast index lookup. A Grid combines axes with
// a flat row-major sample buffer and interpolates it with nearest,
// linear, or piecewise cubic Hermite (PCHIP) schemes. Bathy wraps a
// two-dimensional Grid with precomputed derivative tables and a
// closed-form bicubic evaluation for the bathymetry lookups that
// dominate ray-tracing workloads.
//
// Everything in this package is immutable once constructed, so grids
// and axes may be shared freely between goroutines without locking.
package grid
