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

package register

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// Unsigned is the set of types a Register can hold.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Register is a fixed-width unsigned register. The zero value is a valid
// register with a value of zero and no label.
type Register[U Unsigned] struct {
	value U
	label string
}

// NewRegister is the preferred method of initialisation for the Register type.
func NewRegister[U Unsigned](val U, label string) *Register[U] {
	return &Register[U]{
		value: val,
		label: label,
	}
}

// width of U in bytes
func width[U Unsigned]() int {
	return int(unsafe.Sizeof(U(0)))
}

func (r *Register[U]) String() string {
	return fmt.Sprintf("%s=0x%0*x", r.label, r.Width()*2, r.value)
}

// Label returns the name of the register.
func (r *Register[U]) Label() string {
	return r.label
}

// Width returns the number of bytes in the register.
func (r *Register[U]) Width() int {
	return width[U]()
}

// Value returns the current value of the register.
func (r *Register[U]) Value() U {
	return r.value
}

// Load value into register.
func (r *Register[U]) Load(val U) {
	r.value = val
}

// Reset implements the device.Block interface. The register is zeroed.
func (r *Register[U]) Reset() {
	r.value = 0
}

// Contains implements the device.Device interface.
func (r *Register[U]) Contains(idx int) bool {
	return device.InRange(idx, r.Width())
}

// Len implements the device.Device interface.
func (r *Register[U]) Len() int {
	return r.Width()
}

// Read implements the device.Device interface. Returns the little-endian byte
// at the index.
func (r *Register[U]) Read(idx int) uint8 {
	if !r.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	return uint8(r.value >> (8 * uint(idx)))
}

// Write implements the device.Device interface. Replaces the little-endian
// byte at the index, leaving the other bytes untouched.
func (r *Register[U]) Write(idx int, data uint8) {
	if !r.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	shift := 8 * uint(idx)
	r.value = r.value&^(U(0xff)<<shift) | U(data)<<shift
}
