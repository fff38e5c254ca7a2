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

import "github.com/jetsetilly/emukit/curated"

// Null is a device of fixed length that reads as zero and ignores writes.
// Useful as an empty bank or as a placeholder for unpopulated hardware.
type Null struct {
	size int
}

// NewNull is the preferred method of initialisation for the Null type.
func NewNull(size int) *Null {
	return &Null{size: size}
}

// Reset implements the Block interface.
func (n *Null) Reset() {
}

// Contains implements the Device interface.
func (n *Null) Contains(idx int) bool {
	return InRange(idx, n.size)
}

// Len implements the Device interface.
func (n *Null) Len() int {
	return n.size
}

// Read implements the Device interface.
func (n *Null) Read(idx int) uint8 {
	if !n.Contains(idx) {
		panic(curated.Errorf(OutOfRange, idx))
	}
	return 0
}

// Write implements the Device interface.
func (n *Null) Write(idx int, _ uint8) {
	if !n.Contains(idx) {
		panic(curated.Errorf(OutOfRange, idx))
	}
}
