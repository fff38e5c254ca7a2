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

package mem

import (
	"encoding/hex"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/environment"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/logger"
)

// RAM is a fixed-capacity read/write store.
type RAM struct {
	env  *environment.Environment
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// memory is zeroed. The env argument can be nil.
func NewRAM(env *environment.Environment, size int) *RAM {
	return &RAM{
		env:  env,
		data: make([]uint8, size),
	}
}

// NewRAMFromImage creates a RAM store with the same capacity as the image and
// initialised with a copy of it. A reset will not restore the image.
func NewRAMFromImage(env *environment.Environment, image []uint8) *RAM {
	ram := NewRAM(env, len(image))
	copy(ram.data, image)
	return ram
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.data = make([]uint8, len(ram.data))
	copy(n.data, ram.data)
	return &n
}

// Reset contents of RAM. Memory is zeroed unless the environment asks for a
// random state.
func (ram *RAM) Reset() {
	if ram.env.RandomState() {
		ram.env.Random.Fill(ram.data)
		logger.Logf(ram.env, "ram", "randomised %d bytes", len(ram.data))
		return
	}
	clear(ram.data)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.data)
}

// Bytes returns a copy of the contents of RAM.
func (ram *RAM) Bytes() []uint8 {
	b := make([]uint8, len(ram.data))
	copy(b, ram.data)
	return b
}

// Contains implements the device.Device interface.
func (ram *RAM) Contains(idx int) bool {
	return device.InRange(idx, len(ram.data))
}

// Len implements the device.Device interface.
func (ram *RAM) Len() int {
	return len(ram.data)
}

// Read implements the device.Device interface.
func (ram *RAM) Read(idx int) uint8 {
	if !ram.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	return ram.data[idx]
}

// Write implements the device.Device interface.
func (ram *RAM) Write(idx int, data uint8) {
	if !ram.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	ram.data[idx] = data
}
