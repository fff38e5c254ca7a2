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

import (
	"fmt"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/hardware/memory/device"
)

// InvalidWindow is the pattern for the curated error returned by NewView()
// when the window is not valid for the device.
const InvalidWindow = "view: invalid window [%#x, %#x): %v"

// View restricts a device to the half-open window [lo, hi). The window is
// re-exposed starting at index zero, so index i of the View is index i+lo of
// the wrapped device.
//
// A view restricts visibility only. Resetting a view resets the whole of the
// wrapped device.
type View struct {
	dev *device.Shared
	lo  int
	hi  int
}

// NewView is the preferred method of initialisation for the View type. The
// window must satisfy 0 <= lo <= hi <= dev.Len().
func NewView(dev *device.Shared, lo int, hi int) (*View, error) {
	if dev == nil {
		return nil, curated.Errorf(InvalidWindow, lo, hi, "no device")
	}
	l, err := length(dev)
	if err != nil {
		return nil, curated.Errorf(InvalidWindow, lo, hi, err)
	}
	if lo < 0 || lo > hi || hi > l {
		return nil, curated.Errorf(InvalidWindow, lo, hi, fmt.Sprintf("device of length %#x", l))
	}
	return &View{
		dev: dev,
		lo:  lo,
		hi:  hi,
	}, nil
}

// length returns the length of the device. A device that panics with a
// curated error, such as a Bank with an out of range selection, has no length
// and the error is returned instead.
func length(dev *device.Shared) (l int, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !curated.IsAny(e) {
				panic(r)
			}
			err = e
		}
	}()
	return dev.Len(), nil
}

// Window returns the bounds of the window in the coordinates of the wrapped
// device.
func (v *View) Window() (lo int, hi int) {
	return v.lo, v.hi
}

// Inner implements the device.Composite interface.
func (v *View) Inner() []*device.Shared {
	return []*device.Shared{v.dev}
}

// Reset implements the device.Block interface.
func (v *View) Reset() {
	v.dev.Reset()
}

// Contains implements the device.Device interface.
func (v *View) Contains(idx int) bool {
	return device.InRange(idx, v.hi-v.lo)
}

// Len implements the device.Device interface.
func (v *View) Len() int {
	return v.hi - v.lo
}

// Read implements the device.Device interface. Indices outside of the window
// are never forwarded to the wrapped device.
func (v *View) Read(idx int) uint8 {
	if !v.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	return v.dev.Read(idx + v.lo)
}

// Write implements the device.Device interface. Indices outside of the window
// are never forwarded to the wrapped device.
func (v *View) Write(idx int, data uint8) {
	if !v.Contains(idx) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	v.dev.Write(idx+v.lo, data)
}
