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

package bus

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emukit/curated"
	"github.com/jetsetilly/emukit/environment"
	"github.com/jetsetilly/emukit/hardware/memory/device"
	"github.com/jetsetilly/emukit/logger"
)

// Policy decides how overlapping mappings are treated by Mount().
type Policy int

// List of valid Policy values.
const (
	// overlapping mappings are accepted and logged. the mapping mounted first
	// claims the shared addresses
	FirstMounted Policy = iota

	// a mapping that overlaps an existing mapping is rejected
	RejectOverlap
)

func (p Policy) String() string {
	switch p {
	case FirstMounted:
		return "first mounted"
	case RejectOverlap:
		return "reject overlap"
	}
	return "unknown policy"
}

// Patterns for the curated errors returned by Mount().
const (
	InvalidMount = "bus: cannot mount %s: %v"
	OverlapMount = "bus: cannot mount %s: overlaps %s"
)

// Mapping is a device mounted on the bus.
type Mapping struct {
	Label string
	Base  int
	Dev   *device.Shared
}

func (m Mapping) String() string {
	lo, hi := m.Span()
	switch {
	case lo >= hi:
		return fmt.Sprintf("%04x -> ....\t%s", m.Base, m.Label)
	case hi == device.Unbounded:
		return fmt.Sprintf("%04x -> ****\t%s", lo, m.Label)
	}
	return fmt.Sprintf("%04x -> %04x\t%s", lo, hi-1, m.Label)
}

// Span returns the range of addresses [lo, hi) that the mapping can claim.
// This is the span of the device moved to the base address. The device may
// not contain every address in that range. A device that contains nothing
// has an empty span.
func (m Mapping) Span() (lo int, hi int) {
	lo, hi = device.Span(m.Dev)

	// the bus never asks a device for a negative index
	lo = max(lo, 0)
	if lo >= hi {
		return m.Base, m.Base
	}

	return add(m.Base, lo), add(m.Base, hi)
}

// add with saturation at device.Unbounded
func add(a int, b int) int {
	if a > device.Unbounded-b {
		return device.Unbounded
	}
	return a + b
}

// Overlaps returns true if the spans of the two mappings intersect. Empty
// mappings never overlap anything.
func (m Mapping) Overlaps(o Mapping) bool {
	mlo, mhi := m.Span()
	olo, ohi := o.Span()
	if mlo >= mhi || olo >= ohi {
		return false
	}
	return mlo < ohi && olo < mhi
}

// Bus is a list of mappings. It implements the device.Device interface.
type Bus struct {
	env      *environment.Environment
	policy   Policy
	mappings []Mapping
}

// NewBus is the preferred method of initialisation for the Bus type. The
// environment is used for logging and can be nil.
func NewBus(env *environment.Environment, policy Policy) *Bus {
	return &Bus{
		env:    env,
		policy: policy,
	}
}

func (b *Bus) String() string {
	return fmt.Sprintf("bus (%s) with %d mappings", b.policy, len(b.mappings))
}

// Policy returns the overlap policy of the bus.
func (b *Bus) Policy() Policy {
	return b.policy
}

// Mount the device at the base address. The label must be unique on the bus.
func (b *Bus) Mount(label string, base int, dev *device.Shared) error {
	if dev == nil {
		return curated.Errorf(InvalidMount, label, "no device")
	}
	if base < 0 {
		return curated.Errorf(InvalidMount, label, fmt.Sprintf("negative base address (%d)", base))
	}
	for _, m := range b.mappings {
		if m.Label == label {
			return curated.Errorf(InvalidMount, label, "label already in use")
		}
	}

	n := Mapping{
		Label: label,
		Base:  base,
		Dev:   dev,
	}

	for _, m := range b.mappings {
		if !n.Overlaps(m) {
			continue
		}
		if b.policy == RejectOverlap {
			return curated.Errorf(OverlapMount, label, m.Label)
		}
		logger.Logf(b.env, "bus", "%s overlaps %s. %s has precedence", label, m.Label, m.Label)
	}

	b.mappings = append(b.mappings, n)

	return nil
}

// Unmount removes the mapping with the label. Returns false if there is no
// such mapping.
func (b *Bus) Unmount(label string) bool {
	for i, m := range b.mappings {
		if m.Label == label {
			b.mappings = append(b.mappings[:i], b.mappings[i+1:]...)
			logger.Logf(b.env, "bus", "unmounted %s", label)
			return true
		}
	}
	return false
}

// Mappings returns a copy of the list of mappings in mount order.
func (b *Bus) Mappings() []Mapping {
	m := make([]Mapping, len(b.mappings))
	copy(m, b.mappings)
	return m
}

// Inner implements the device.Composite interface. Handles are in mount
// order. A handle mounted more than once appears more than once.
func (b *Bus) Inner() []*device.Shared {
	inner := make([]*device.Shared, len(b.mappings))
	for i, m := range b.mappings {
		inner[i] = m.Dev
	}
	return inner
}

// Overlaps returns every pair of overlapping mappings. The first mapping in
// each pair is the one with precedence.
func (b *Bus) Overlaps() [][2]Mapping {
	var o [][2]Mapping
	for i := range b.mappings {
		for j := i + 1; j < len(b.mappings); j++ {
			if b.mappings[i].Overlaps(b.mappings[j]) {
				o = append(o, [2]Mapping{b.mappings[i], b.mappings[j]})
			}
		}
	}
	return o
}

// Summary returns a single multiline string detailing every mapping in mount
// order. Useful for reference.
func (b *Bus) Summary() string {
	s := strings.Builder{}
	for _, m := range b.mappings {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Lookup returns the mapping that claims the address and the address relative
// to the base of that mapping. The boolean return value is false if no mapping
// claims the address.
func (b *Bus) Lookup(address int) (Mapping, int, bool) {
	for _, m := range b.mappings {
		if address < m.Base {
			continue
		}
		if m.Dev.Contains(address - m.Base) {
			return m, address - m.Base, true
		}
	}
	return Mapping{}, 0, false
}

// Reset implements the device.Block interface. Every mounted device is reset.
func (b *Bus) Reset() {
	for _, m := range b.mappings {
		m.Dev.Reset()
	}
}

// Contains implements the device.Device interface.
func (b *Bus) Contains(address int) bool {
	_, _, ok := b.Lookup(address)
	return ok
}

// Span implements the device.Spanner interface. The span of a bus covers the
// spans of every mapping.
func (b *Bus) Span() (int, int) {
	var lo, hi int
	var found bool
	for _, m := range b.mappings {
		l, h := m.Span()
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

// Len implements the device.Device interface. The length of a bus is the
// extent of the address space used by the mappings. Not every address below
// the length is necessarily contained.
func (b *Bus) Len() int {
	var l int
	for _, m := range b.mappings {
		l = max(l, m.Base+m.Dev.Len())
	}
	return l
}

// Read implements the device.Device interface.
func (b *Bus) Read(address int) uint8 {
	m, idx, ok := b.Lookup(address)
	if !ok {
		panic(curated.Errorf(device.OutOfRange, address))
	}
	return m.Dev.Read(idx)
}

// Write implements the device.Device interface.
func (b *Bus) Write(address int, data uint8) {
	m, idx, ok := b.Lookup(address)
	if !ok {
		panic(curated.Errorf(device.OutOfRange, address))
	}
	m.Dev.Write(idx, data)
}
