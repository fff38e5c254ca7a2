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

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// Uint128 is an unsigned 128-bit value.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func (v Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", v.Hi, v.Lo)
}

// Register128 is a 128-bit unsigned register. It behaves in the same way as
// the Register type.
type Register128 struct {
	value Uint128
	label string
}

// NewRegister128 is the preferred method of initialisation for the Register128 type.
func NewRegister128(val Uint128, label string) *Register128 {
	return &Register128{
		value: val,
		label: label,
	}
}

func (r *Register128) String() string {
	return fmt.Sprintf("%s=%s", r.label, r.value)
}

// Label returns the name of the register.
func (r *Register128) Label() string {
	return r.label
}

// Width returns the number of bytes in the register.
func (r *Register128) Width() int {
	return 16
}

// Value returns the current value of the register.
func (r *Register128) Value() Uint128 {
	return r.value
}

// Load value into register.
func (r *Register128) Load(val Uint128) {
	r.value = val
}

// Reset implements the device.Block interface. The register is zeroed.
func (r *Register128) Reset() {
	r.value = Uint128{}
}

// Contains implements the device.Device interface.
func (r *Register128) Contains(idx int) bool {
	return device.InRange(idx, r.Width())
}

// Len implements the device.Device interface.
func (r *Register128) Len() int {
	return r.Width()
}

// half returns the 64-bit half of the value containing the byte at idx and the
// shift required to reach that byte.
func (r *Register128) half(idx int) (*uint64, uint) {
	if idx < 8 {
		return &r.value.Lo, 8 * uint(idx)
	}
	return &r.value.Hi, 8 * uint(idx-8)
}

// Read implements the device.Device interface.
func (r *Register128) Read(idx int) uint8 {
	if !r.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	v, shift := r.half(idx)
	return uint8(*v >> shift)
}

// Write implements the device.Device interface.
func (r *Register128) Write(idx int, data uint8) {
	if !r.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	v, shift := r.half(idx)
	*v = *v&^(0xff<<shift) | uint64(data)<<shift
}
