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

// Package bus routes addresses in a global address space to the devices that
// are mounted on it.
//
// A device is mounted at a base address with a label. An address is claimed
// by a mapping if the address is not below the base and the device contains
// the address relative to the base:
//
//	bus.Mount("RAM", 0x0080, device.NewShared(mem.NewRAM(env, 128)))
//
// The device can be any Device, including an adapter from the adapters
// package, and so mirrors and bank switched areas are mounted in exactly the
// same way as simple memory. A Bus is itself a Device and so one bus can be
// mounted on another.
//
// Mappings are tried in the order in which they were mounted. If more than one
// mapping claims an address then the mapping that was mounted first wins. How
// overlapping mappings are treated when they are mounted is decided by the
// Policy given to NewBus().
//
// Two mappings overlap if their spans intersect. The span of a mapping is the
// span of its device (see device.Spanner) moved to the base address. For most
// devices this is [base, base+Len()) but a Remap can claim addresses well
// beyond its length. A Remap using adapters.Mask() for example, claims every
// address above its base.
//
// Reading or writing an address that no mapping claims is a contract
// violation and will cause a panic with the device.OutOfRange pattern. Use
// Contains() first when the address might not be mapped.
package bus
