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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the source of random numbers for an emulation. Devices that need
// randomness (random reset state, the Random device) should take their numbers
// from a Random instance rather than from math/rand directly.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable. changing the field after initialisation has no effect
	// until the next call to Reset()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset the random number sequence. The sequence is restarted from the
// beginning if ZeroSeed is true.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rnd = rand.New(rand.NewSource(0))
	} else {
		rnd.rnd = rand.New(rand.NewSource(baseSeed))
	}
}

// Intn returns a random number in the range [0, n). Panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	if rnd.rnd == nil {
		rnd.Reset()
	}
	return rnd.rnd.Intn(n)
}

// Byte returns a random byte value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.Intn(0x100))
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(b []uint8) {
	for i := range b {
		b[i] = rnd.Byte()
	}
}
