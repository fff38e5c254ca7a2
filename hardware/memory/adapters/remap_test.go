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

package adapters_test

import (
	"testing"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/adapters"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/hardware/memory/mem"
	"github.com/jetsetilly/emukit/test"
)

func counting(n int) []uint8 {
	b := make([]uint8, n)
	for i := range b {
		b[i] = uint8(i)
	}
	return b
}

// newRemap is NewRemap() for arguments that are known to be valid
func newRemap(t *testing.T, dev device.Device, translate adapters.Translator, extent int) *adapters.Remap {
	t.Helper()
	r, err := adapters.NewRemap(device.NewShared(dev), translate, extent)
	test.DemandSuccess(t, err)
	return r
}

func TestTranslators(t *testing.T) {
	test.ExpectEquality(t, adapters.Identity().Translate(0x1234), 0x1234)
	test.ExpectEquality(t, adapters.Offset(0x8000).Translate(0x8010), 0x10)
	test.ExpectEquality(t, adapters.Offset(0x8000).Translate(0x10), -0x7ff0)
	test.ExpectEquality(t, adapters.Mask(0x7f).Translate(0x1ff), 0x7f)
	test.ExpectEquality(t, adapters.Mask(0x7f).Translate(-1), -1)
	test.ExpectEquality(t, adapters.Mirror(0x30).Translate(0x65), 0x05)
	test.ExpectEquality(t, adapters.Mirror(0).Translate(0x65), -1)
	test.ExpectEquality(t, adapters.Chain(adapters.Offset(0x1000), adapters.Mask(0xff)).Translate(0x1234), 0x34)
	test.ExpectEquality(t, adapters.Chain(adapters.Offset(0x1000), adapters.Mask(0xff)).Translate(0x0234), -1)

	double := adapters.TranslatorFunc(func(idx int) int { return idx * 2 })
	test.ExpectEquality(t, double.Translate(0x10), 0x20)
}

func TestReach(t *testing.T) {
	reach := func(tr adapters.Translator, lo, hi int) [2]int {
		l, h := tr.Reach(lo, hi)
		return [2]int{l, h}
	}

	test.ExpectEquality(t, reach(adapters.Identity(), 0, 0x100), [2]int{0, 0x100})
	test.ExpectEquality(t, reach(adapters.Offset(0x8000), 0, 0x100), [2]int{0x8000, 0x8100})
	test.ExpectEquality(t, reach(adapters.Mask(0x7f), 0, 0x80), [2]int{0, device.Unbounded})
	test.ExpectEquality(t, reach(adapters.Mirror(0x30), 0, 0x30), [2]int{0, device.Unbounded})
	test.ExpectEquality(t, reach(adapters.Mirror(0), 0, 0x30), [2]int{0, 0})
	test.ExpectEquality(t, reach(adapters.TranslatorFunc(func(i int) int { return i }), 0, 1), [2]int{0, device.Unbounded})

	// empty ranges have no reach
	test.ExpectEquality(t, reach(adapters.Offset(0x8000), 0, 0), [2]int{0, 0})
	test.ExpectEquality(t, reach(adapters.Mask(0xff), 0x10, 0x10), [2]int{0, 0})

	// a chain is reached in reverse order
	c := adapters.Chain(adapters.Offset(0x1000), adapters.Offset(0x0100))
	test.ExpectEquality(t, reach(c, 0, 0x10), [2]int{0x1100, 0x1110})
	c = adapters.Chain(adapters.Mask(0x1fff), adapters.Offset(0x1000))
	test.ExpectEquality(t, reach(c, 0, 0x1000), [2]int{0, device.Unbounded})

	// the reach saturates rather than overflowing
	test.ExpectEquality(t, reach(adapters.Offset(0x10), 0, device.Unbounded), [2]int{0x10, device.Unbounded})
}

func TestRemapOffset(t *testing.T) {
	inner := mem.NewRAMFromImage(nil, counting(0x100))
	remap := newRemap(t, inner, adapters.Offset(0x8000), adapters.Inherit)

	test.ExpectEquality(t, remap.Len(), 0x100)
	test.ExpectFailure(t, remap.Contains(0x7fff))
	test.ExpectSuccess(t, remap.Contains(0x8000))
	test.ExpectSuccess(t, remap.Contains(0x80ff))
	test.ExpectFailure(t, remap.Contains(0x8100))
	test.ExpectFailure(t, remap.Contains(0x00))

	test.ExpectEquality(t, remap.Read(0x8042), 0x42)
	remap.Write(0x8042, 0xff)
	test.ExpectEquality(t, inner.Read(0x42), 0xff)

	err := test.ExpectPanicError(t, func() { remap.Read(0x10) })
	test.ExpectSuccess(t, curated.Is(err, device.OutOfRange))
	err = test.ExpectPanicError(t, func() { remap.Write(0x8100, 0) })
	test.ExpectSuccess(t, curated.Is(err, device.OutOfRange))
}

func TestRemapSpan(t *testing.T) {
	remap := newRemap(t, mem.NewRAM(nil, 0x100), adapters.Offset(0x8000), adapters.Inherit)
	lo, hi := remap.Span()
	test.ExpectEquality(t, lo, 0x8000)
	test.ExpectEquality(t, hi, 0x8100)

	// the span is not affected by the extent
	remap = newRemap(t, mem.NewRAM(nil, 0x100), adapters.Offset(0x8000), 0x10)
	lo, hi = remap.Span()
	test.ExpectEquality(t, lo, 0x8000)
	test.ExpectEquality(t, hi, 0x8100)

	// a remap of a remap
	outer := newRemap(t, remap, adapters.Offset(0x100), adapters.Inherit)
	lo, hi = device.Span(outer)
	test.ExpectEquality(t, lo, 0x8100)
	test.ExpectEquality(t, hi, 0x8200)
	test.ExpectEquality(t, outer.Read(0x8100), 0x00)

	mirrored := newRemap(t, mem.NewRAM(nil, 0x80), adapters.Mask(0x7f), 0x2000)
	lo, hi = mirrored.Span()
	test.ExpectEquality(t, lo, 0)
	test.ExpectEquality(t, hi, device.Unbounded)

	// devices that are not spanners span their length
	lo, hi = device.Span(mem.NewRAM(nil, 0x40))
	test.ExpectEquality(t, lo, 0)
	test.ExpectEquality(t, hi, 0x40)
}

func TestRemapConsistency(t *testing.T) {
	inner := mem.NewRAMFromImage(nil, counting(0x80))
	remap := newRemap(t, inner, adapters.Mask(0x7f), 0x2000)

	test.ExpectEquality(t, remap.Len(), 0x2000)

	// every mirror of an address reads the same value, every time
	for addr := range 0x2000 {
		i, ok := remap.Translate(addr)
		test.ExpectSuccess(t, ok)
		j, _ := remap.Translate(addr)
		test.ExpectEquality(t, i, j)
		test.ExpectEquality(t, remap.Read(addr), remap.Read(addr))
		test.ExpectEquality(t, remap.Read(addr), uint8(addr&0x7f))
	}

	// writing to one mirror is visible in all mirrors
	remap.Write(0x0080, 0xaa)
	test.ExpectEquality(t, remap.Read(0x0000), 0xaa)
	test.ExpectEquality(t, remap.Read(0x1f80), 0xaa)
}

func TestRemapSetTranslator(t *testing.T) {
	remap := newRemap(t, mem.NewRAMFromImage(nil, counting(0x10)), adapters.Identity(), adapters.Inherit)
	test.ExpectEquality(t, remap.Read(0x01), 0x01)

	test.ExpectSuccess(t, remap.SetTranslator(adapters.Offset(0x100)))
	test.ExpectFailure(t, remap.Contains(0x01))
	test.ExpectEquality(t, remap.Read(0x101), 0x01)

	// a nil translator is refused and the existing translator is kept
	err := remap.SetTranslator(nil)
	test.ExpectSuccess(t, curated.Is(err, adapters.InvalidRemap))
	test.ExpectEquality(t, remap.Read(0x101), 0x01)
}

func TestRemapInvalid(t *testing.T) {
	ram := device.NewShared(mem.NewRAM(nil, 0x10))

	_, err := adapters.NewRemap(ram, nil, adapters.Inherit)
	test.ExpectSuccess(t, curated.Is(err, adapters.InvalidRemap))

	var f adapters.TranslatorFunc
	_, err = adapters.NewRemap(ram, f, adapters.Inherit)
	test.ExpectSuccess(t, curated.Is(err, adapters.InvalidRemap))

	_, err = adapters.NewRemap(nil, adapters.Identity(), adapters.Inherit)
	test.ExpectSuccess(t, curated.Is(err, adapters.InvalidRemap))

	_, err = adapters.NewRemap(ram, adapters.Identity(), -2)
	test.ExpectSuccess(t, curated.Is(err, adapters.InvalidRemap))

	_, err = adapters.NewRemap(ram, adapters.Identity(), 0)
	test.ExpectSuccess(t, err)
}

func TestRemapReset(t *testing.T) {
	inner := mem.NewRAM(nil, 0x10)
	remap := newRemap(t, inner, adapters.Offset(0x100), adapters.Inherit)
	remap.Write(0x100, 0xaa)
	remap.Reset()
	test.ExpectEquality(t, inner.Read(0), 0x00)
}
