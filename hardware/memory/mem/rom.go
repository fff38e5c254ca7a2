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
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// ROM is a fixed-capacity read-only store. There is no valid way of changing
// the contents of a ROM through the device.Device interface and any call to
// Write() will panic. This catches emulated code that tries to write to ROM
// when it shouldn't.
type ROM struct {
	data []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The ROM
// has the same capacity as the image and is initialised with a copy of it.
func NewROM(image []uint8) *ROM {
	rom := &ROM{
		data: make([]uint8, len(image)),
	}
	copy(rom.data, image)
	return rom
}

// Reset implements the device.Block interface. The power-on state of a ROM is
// the image it was created with, which never changes, so there is nothing to
// do.
func (rom *ROM) Reset() {
}

func (rom *ROM) String() string {
	return hex.Dump(rom.data)
}

// Bytes returns a copy of the contents of ROM.
func (rom *ROM) Bytes() []uint8 {
	b := make([]uint8, len(rom.data))
	copy(b, rom.data)
	return b
}

// Contains implements the device.Device interface.
func (rom *ROM) Contains(idx int) bool {
	return device.InRange(idx, len(rom.data))
}

// Len implements the device.Device interface.
func (rom *ROM) Len() int {
	return len(rom.data)
}

// Read implements the device.Device interface.
func (rom *ROM) Read(idx int) uint8 {
	if !rom.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	return rom.data[idx]
}

// Write implements the device.Device interface. It always panics.
func (rom *ROM) Write(idx int, _ uint8) {
	panic(curated.Errorf(device.ReadOnly, idx))
}
