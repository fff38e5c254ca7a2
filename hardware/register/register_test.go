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

package register_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/hardware/register"
	"github.com/jetsetilly/emukit/test"
)

// named types are sized by their underlying type
type address uint16

func TestWidth(t *testing.T) {
	test.ExpectEquality(t, register.NewRegister[address](0, "").Width(), 2)
	test.ExpectEquality(t, register.NewRegister[address](0x1234, "PC").String(), "PC=0x1234")

	test.ExpectEquality(t, register.NewRegister[uint8](0, "").Len(), 1)
	test.ExpectEquality(t, register.NewRegister[uint16](0, "").Len(), 2)
	test.ExpectEquality(t, register.NewRegister[uint32](0, "").Len(), 4)
	test.ExpectEquality(t, register.NewRegister[uint64](0, "").Len(), 8)
	test.ExpectEquality(t, register.NewRegister128(register.Uint128{}, "").Len(), 16)

	var r register.Register[uint16]
	test.ExpectSuccess(t, r.Contains(1))
	test.ExpectFailure(t, r.Contains(2))
	test.ExpectFailure(t, r.Contains(-1))
}

func TestNew(t *testing.T) {
	r8 := register.NewRegister[uint8](0, "A")
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "A=0x00")

	r16 := register.NewRegister[uint16](0x1234, "PC")
	test.ExpectEquality(t, r16.Value(), 0x1234)
	test.ExpectEquality(t, r16.String(), "PC=0x1234")
	test.ExpectEquality(t, r16.Label(), "PC")

	r128 := register.NewRegister128(register.Uint128{Hi: 1, Lo: 2}, "Q")
	test.ExpectEquality(t, r128.String(), "Q=0x00000000000000010000000000000002")
}

func TestLittleEndianRead(t *testing.T) {
	const x = 0x0123456789abcdef

	r64 := register.NewRegister[uint64](x, "")
	b := make([]uint8, 8)
	binary.LittleEndian.PutUint64(b, x)
	for i := range 8 {
		test.ExpectEquality(t, r64.Read(i), b[i])
	}

	r32 := register.NewRegister[uint32](0xdeadbeef, "")
	test.ExpectEquality(t, r32.Read(0), 0xef)
	test.ExpectEquality(t, r32.Read(1), 0xbe)
	test.ExpectEquality(t, r32.Read(2), 0xad)
	test.ExpectEquality(t, r32.Read(3), 0xde)

	r128 := register.NewRegister128(register.Uint128{Hi: x, Lo: x}, "")
	for i := range 16 {
		test.ExpectEquality(t, r128.Read(i), b[i%8])
	}
}

func TestLittleEndianWrite(t *testing.T) {
	r32 := register.NewRegister[uint32](0xdeadbeef, "")
	r32.Write(0, 0x00)
	test.ExpectEquality(t, r32.Value(), 0xdeadbe00)
	r32.Write(3, 0x11)
	test.ExpectEquality(t, r32.Value(), 0x11adbe00)

	// writing each byte changes only that byte
	r64 := register.NewRegister[uint64](0, "")
	for i := range 8 {
		r64.Write(i, uint8(i+1))
	}
	test.ExpectEquality(t, r64.Value(), 0x0807060504030201)

	r8 := register.NewRegister[uint8](0, "")
	r8.Write(0, 0xaa)
	test.ExpectEquality(t, r8.Value(), 0xaa)

	r128 := register.NewRegister128(register.Uint128{}, "")
	r128.Write(0, 0x01)
	r128.Write(8, 0x02)
	r128.Write(15, 0xff)
	test.ExpectEquality(t, r128.Value(), register.Uint128{Hi: 0xff00000000000002, Lo: 0x01})
}

func TestReset(t *testing.T) {
	r16 := register.NewRegister[uint16](0x1234, "")
	r16.Reset()
	test.ExpectEquality(t, r16.Value(), 0)

	r128 := register.NewRegister128(register.Uint128{Hi: 1, Lo: 1}, "")
	r128.Reset()
	test.ExpectEquality(t, r128.Value(), register.Uint128{})
}

func TestLoad(t *testing.T) {
	r16 := register.NewRegister[uint16](0, "")
	r16.Load(0xbeef)
	test.ExpectEquality(t, r16.Read(0), 0xef)
	test.ExpectEquality(t, r16.Read(1), 0xbe)
}

func TestOutOfRange(t *testing.T) {
	r8 := register.NewRegister[uint8](0, "")
	err := test.ExpectPanicError(t, func() { r8.Read(1) })
	test.ExpectSuccess(t, curated.Is(err, device.OutOfRange))

	r128 := register.NewRegister128(register.Uint128{}, "")
	err = test.ExpectPanicError(t, func() { r128.Write(16, 0) })
	test.ExpectSuccess(t, curated.Is(err, device.OutOfRange))
}

// register types can be used through the device interface
func TestDevice(t *testing.T) {
	var devs = []device.Device{
		register.NewRegister[uint8](0, ""),
		register.NewRegister[uint16](0, ""),
		register.NewRegister[uint32](0, ""),
		register.NewRegister[uint64](0, ""),
		register.NewRegister128(register.Uint128{}, ""),
	}
	for _, d := range devs {
		for i := range d.Len() {
			d.Write(i, 0x55)
			test.ExpectEquality(t, d.Read(i), 0x55)
		}
	}
}
