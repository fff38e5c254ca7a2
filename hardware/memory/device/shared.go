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

import (
	"fmt"

	"github.com/jetsetilly/emukit/curated"
)

// Shared is a handle to a Device that can be held by many owners. The same
// physical storage can be mounted on a bus more than once, selected by a bank
// and windowed by a view, all at the same time.
//
// Only one access can be in progress on a handle at any instant. A second
// access while the first is still in progress can only happen if the device
// graph contains a cycle (a device that reaches itself through its own Read()
// or Write()) and causes a panic with the Reentrant pattern.
//
// Shared implements the Device interface itself and so can be used anywhere a
// Device is expected.
type Shared struct {
	dev  Device
	busy bool
}

// NewShared is the preferred method of initialisation for the Shared type.
func NewShared(dev Device) *Shared {
	return &Shared{dev: dev}
}

func (s *Shared) String() string {
	return fmt.Sprintf("shared %T", s.dev)
}

func (s *Shared) acquire() {
	if s.busy {
		panic(curated.Errorf(Reentrant, fmt.Sprintf("%T", s.dev)))
	}
	s.busy = true
}

func (s *Shared) release() {
	s.busy = false
}

// Borrow gives the function exclusive access to the underlying device. This
// is the way to reach type specific functions of a device that has been
// shared, for example to load a register value:
//
//	s.Borrow(func(d device.Device) {
//		d.(*register.Register[uint16]).Load(0x1234)
//	})
//
// The device must not be retained after the function returns.
func (s *Shared) Borrow(f func(dev Device)) {
	s.acquire()
	defer s.release()
	f(s.dev)
}

// Reset implements the Block interface.
func (s *Shared) Reset() {
	s.acquire()
	defer s.release()
	s.dev.Reset()
}

// Contains implements the Device interface.
func (s *Shared) Contains(idx int) bool {
	s.acquire()
	defer s.release()
	return s.dev.Contains(idx)
}

// Len implements the Device interface.
func (s *Shared) Len() int {
	s.acquire()
	defer s.release()
	return s.dev.Len()
}

// Span implements the Spanner interface. The span is the span of the wrapped
// device.
func (s *Shared) Span() (int, int) {
	s.acquire()
	defer s.release()
	return Span(s.dev)
}

// Read implements the Device interface.
func (s *Shared) Read(idx int) uint8 {
	s.acquire()
	defer s.release()
	return s.dev.Read(idx)
}

// Write implements the Device interface.
func (s *Shared) Write(idx int, data uint8) {
	s.acquire()
	defer s.release()
	s.dev.Write(idx, data)
}
