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

import "sync/atomic"

// The shared registry holds the one ocean currently published to the
// propagation workers of this process. Publication is a single atomic
// pointer swap: Update is release-ordered and Current is
// acquire-ordered, so a reader that calls Current after an Update
// returns observes the new ocean in full. Readers never block each
// other or the publisher, and an ocean stays alive as long as any
// reader still holds its snapshot.
var shared atomic.Pointer[Ocean]

// Current returns the currently published ocean, or nil when none has
// been published. Callers keep the returned snapshot for the duration
// of a computation; later Update calls do not invalidate it.
func Current() *Ocean { return shared.Load() }

// Update atomically replaces the published ocean.
func Update(o *Ocean) { shared.Store(o) }

// Reset clears the registry. Snapshots already held by readers remain
// valid.
func Reset() { shared.Store(nil) }
