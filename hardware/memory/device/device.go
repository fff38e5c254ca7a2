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

import "math"

// Block is implemented by any component that can be reset to its power-on
// state. A composite must reset every device it owns, regardless of which
// device is currently selected or visible.
type Block interface {
	Reset()
}

// Device is a byte-addressable range.
type Device interface {
	Block

	// Contains returns true if the index is addressable. Read() and Write()
	// must not be called with an index for which Contains() returns false.
	Contains(idx int) bool

	// Len returns the number of addressable indices. For contiguous devices
	// this is the range [0, Len()). Zero is a valid length.
	Len() int

	// Read returns the byte at the index.
	Read(idx int) uint8

	// Write stores the byte at the index. Devices that cannot be written to
	// will panic.
	Write(idx int, data uint8)
}

// Composite is implemented by devices that wrap other devices. Inner returns
// the handles of every wrapped device, whether or not the device is currently
// visible.
type Composite interface {
	Inner() []*Shared
}

// Unbounded is the upper bound of a span that has no upper bound.
const Unbounded = math.MaxInt

// Spanner is implemented by devices that can contain indices outside of the
// range [0, Len()). Span returns the half-open range [lo, hi) outside of
// which the device contains nothing. The device need not contain every index
// inside the span.
type Spanner interface {
	Span() (lo int, hi int)
}

// Span returns the span of the device. For devices that do not implement the
// Spanner interface the span is [0, Len()).
func Span(dev Device) (lo int, hi int) {
	if s, ok := dev.(Spanner); ok {
		return s.Span()
	}
	return 0, dev.Len()
}

// Patterns for the curated errors raised, with panic(), when the device
// contract is violated.
const (
	OutOfRange  = "device: index out of range (%#x)"
	ReadOnly    = "device: write to read-only memory (%#x)"
	Reentrant   = "device: re-entrant access to %s"
	NoSelection = "device: bank selection out of range (%d of %d)"
)

// InRange returns true if idx is in the range [0, size).
func InRange(idx int, size int) bool {
	return idx >= 0 && idx < size
}
