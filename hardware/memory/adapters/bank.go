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
	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/environment"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/logger"
)

// Bank presents one of several devices at a time. The selected device is
// chosen by index. The default selection is zero.
//
// The selection may refer to a bank that doesn't exist. This is allowed so
// that banks can be inserted and removed without worrying about the current
// selection. While the selection is out of range Contains() returns false and
// the other device functions panic.
type Bank struct {
	env   *environment.Environment
	sel   int
	banks []*device.Shared
}

// NewBank is the preferred method of initialisation for the Bank type. The
// env argument can be nil.
func NewBank(env *environment.Environment, banks ...*device.Shared) *Bank {
	return &Bank{
		env:   env,
		banks: banks,
	}
}

// Inner implements the device.Composite interface.
func (b *Bank) Inner() []*device.Shared {
	inner := make([]*device.Shared, len(b.banks))
	copy(inner, b.banks)
	return inner
}

// Span implements the device.Spanner interface. The span of a Bank covers
// the spans of every bank, not just the selected one.
func (b *Bank) Span() (int, int) {
	var lo, hi int
	var found bool
	for _, d := range b.banks {
		l, h := device.Span(d)
		if l >= h {
			continue
		}
		if !found {
			lo, hi = l, h
			found = true
			continue
		}
		lo = min(lo, l)
		hi = max(hi, h)
	}
	return lo, hi
}

// Get returns the selected bank.
func (b *Bank) Get() int {
	return b.sel
}

// Set changes the selected bank. An out of range selection is accepted but
// logged.
func (b *Bank) Set(sel int) {
	if !device.InRange(sel, len(b.banks)) {
		logger.Logf(b.env, "bank", "selection %d is out of range (%d banks)", sel, len(b.banks))
	}
	b.sel = sel
}

// Num returns the number of banks.
func (b *Bank) Num() int {
	return len(b.banks)
}

// Add appends a device to the end of the list of banks.
func (b *Bank) Add(dev *device.Shared) {
	b.banks = append(b.banks, dev)
}

// Clear removes all devices. The selection is not changed.
func (b *Bank) Clear() {
	b.banks = nil
}

// Insert a device at position idx, shifting all devices after it to the
// right. Panics if idx is not in the range [0, Num()].
func (b *Bank) Insert(idx int, dev *device.Shared) {
	if idx < 0 || idx > len(b.banks) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	b.banks = append(b.banks, nil)
	copy(b.banks[idx+1:], b.banks[idx:])
	b.banks[idx] = dev
}

// Remove and return the device at position idx, shifting all devices after it
// to the left. Panics if idx is not in the range [0, Num()).
func (b *Bank) Remove(idx int) *device.Shared {
	if !device.InRange(idx, len(b.banks)) {
		panic(curated.Errorf(device.OutOfRange, idx))
	}
	dev := b.banks[idx]
	copy(b.banks[idx:], b.banks[idx+1:])
	b.banks[len(b.banks)-1] = nil
	b.banks = b.banks[:len(b.banks)-1]
	return dev
}

// selected returns the selected device. panics if the selection is out of
// range
func (b *Bank) selected() *device.Shared {
	if !device.InRange(b.sel, len(b.banks)) {
		panic(curated.Errorf(device.NoSelection, b.sel, len(b.banks)))
	}
	return b.banks[b.sel]
}

// Reset implements the device.Block interface. The selection returns to zero
// and every bank is reset, not just the selected one.
func (b *Bank) Reset() {
	b.sel = 0
	for _, d := range b.banks {
		d.Reset()
	}
}

// Contains implements the device.Device interface.
func (b *Bank) Contains(idx int) bool {
	if !device.InRange(b.sel, len(b.banks)) {
		return false
	}
	return b.banks[b.sel].Contains(idx)
}

// Len implements the device.Device interface.
func (b *Bank) Len() int {
	return b.selected().Len()
}

// Read implements the device.Device interface.
func (b *Bank) Read(idx int) uint8 {
	return b.selected().Read(idx)
}

// Write implements the device.Device interface.
func (b *Bank) Write(idx int, data uint8) {
	b.selected().Write(idx, data)
}
