// This file is part of emukit.
//
// emukit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emukit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emukit.  If not, see <https://www.gnu.org/licenses/>.

package device

import (
	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/environment"
	"github.com/jetsetilly/emukit/random"
)

// Random is a device of fixed length that returns a random value on every
// read and ignores writes. Useful for emulating floating data lines or
// uninitialised hardware.
type Random struct {
	size int
	rnd  *random.Random
}

// NewRandom is the preferred method of initialisation for the Random type.
// Random numbers are taken from the environment. The env argument can be nil
// in which case a private source of random numbers is used.
func NewRandom(env *environment.Environment, size int) *Random {
	r := &Random{size: size}
	if env != nil {
		r.rnd = env.Random
	} else {
		r.rnd = random.NewRandom()
	}
	return r
}

// Reset implements the Block interface.
func (r *Random) Reset() {
}

// Contains implements the Device interface.
func (r *Random) Contains(idx int) bool {
	return InRange(idx, r.size)
}

// Len implements the Device interface.
func (r *Random) Len() int {
	return r.size
}

// Read implements the Device interface.
func (r *Random) Read(idx int) uint8 {
	if !r.Contains(idx) {
		panic(curated.Errorf(OutOfRange, idx))
	}
	return r.rnd.Byte()
}

// Write implements the Device interface.
func (r *Random) Write(idx int, _ uint8) {
	if !r.Contains(idx) {
		panic(curated.Errorf(OutOfRange, idx))
	}
}
