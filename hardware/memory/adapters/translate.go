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

package adapters

import "github.com/jetsetilly/emukit/hardware/memory/device"

// Translator converts an index in the coordinate space of a Remap into an
// index in the coordinate space of the device it wraps. A negative result
// means the index cannot be translated.
//
// Translate must be a pure function. Translating the same index twice must
// give the same result.
//
// Reach is the inverse of Translate applied to a range. Given the range
// [lo, hi) in the coordinate space of the wrapped device it returns a range
// that includes every index that Translate() maps into [lo, hi). The result
// can be larger than necessary but never smaller. A range that is empty
// (lo >= hi) is returned as [0, 0).
type Translator interface {
	Translate(idx int) int
	Reach(lo int, hi int) (int, int)
}

// TranslatorFunc allows an ordinary function to be used as a Translator. The
// reach of a TranslatorFunc is unbounded because nothing is known about the
// function.
type TranslatorFunc func(idx int) int

// Translate implements the Translator interface.
func (f TranslatorFunc) Translate(idx int) int {
	return f(idx)
}

// Reach implements the Translator interface.
func (f TranslatorFunc) Reach(lo int, hi int) (int, int) {
	return unbounded(lo, hi)
}

// unbounded is the reach of translators that can map any non-negative index
// into a non-empty range
func unbounded(lo int, hi int) (int, int) {
	if lo >= hi {
		return 0, 0
	}
	return 0, device.Unbounded
}

// add with saturation at the limits of the int type
func add(a int, b int) int {
	if b > 0 && a > device.Unbounded-b {
		return device.Unbounded
	}
	if b < 0 && a < -device.Unbounded-b {
		return -device.Unbounded
	}
	return a + b
}

type identity struct{}

// Identity leaves the index unchanged.
func Identity() Translator {
	return identity{}
}

func (identity) Translate(idx int) int {
	return idx
}

func (identity) Reach(lo int, hi int) (int, int) {
	if lo >= hi {
		return 0, 0
	}
	return lo, hi
}

type offset int

// Offset relocates a device so that its first index appears at base.
func Offset(base int) Translator {
	return offset(base)
}

func (o offset) Translate(idx int) int {
	return idx - int(o)
}

func (o offset) Reach(lo int, hi int) (int, int) {
	if lo >= hi {
		return 0, 0
	}
	return add(lo, int(o)), add(hi, int(o))
}

type mask int

// Mask keeps only the bits in mask. This is how partial address decoding is
// emulated: address lines that the hardware ignores are masked out and the
// device appears at every combination of those lines.
func Mask(m int) Translator {
	return mask(m)
}

func (m mask) Translate(idx int) int {
	if idx < 0 {
		return -1
	}
	return idx & int(m)
}

func (m mask) Reach(lo int, hi int) (int, int) {
	return unbounded(lo, hi)
}

type mirror int

// Mirror repeats a device of the given size. Unlike Mask() the size does not
// need to be a power of two. A size of zero or less cannot be mirrored and
// every index will fail to translate.
func Mirror(size int) Translator {
	return mirror(size)
}

func (m mirror) Translate(idx int) int {
	if idx < 0 || m <= 0 {
		return -1
	}
	return idx % int(m)
}

func (m mirror) Reach(lo int, hi int) (int, int) {
	if m <= 0 {
		return 0, 0
	}
	return unbounded(lo, hi)
}

type chain []Translator

// Chain applies the translators in order, left to right. Translation stops
// as soon as one of them fails.
func Chain(ts ...Translator) Translator {
	return chain(ts)
}

func (c chain) Translate(idx int) int {
	for _, t := range c {
		idx = t.Translate(idx)
		if idx < 0 {
			return -1
		}
	}
	return idx
}

// the reach of a chain is found by working backwards from the last translator
func (c chain) Reach(lo int, hi int) (int, int) {
	for i := len(c) - 1; i >= 0; i-- {
		if lo >= hi {
			return 0, 0
		}
		lo, hi = c[i].Reach(lo, hi)
	}
	if lo >= hi {
		return 0, 0
	}
	return lo, hi
}
