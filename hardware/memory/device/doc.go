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

// Package device defines the capability contracts shared by every component
// of a memory-mapped emulation: the Device interface (a byte-addressable
// range) and the Block interface (a resettable component).
//
// Every other memory component is defined in terms of these two interfaces.
// Leaf stores (see the mem and register packages) implement them directly over
// raw bytes. Adapters (see the adapters package) and the bus implement them by
// forwarding to other devices. Because adapters and leaves look the same from
// the outside they can be nested arbitrarily deep:
//
//	         Bus
//	          |
//	   -------------------
//	   |                 |
//	 Remap             Bank
//	   |              /    \
//	 View          RAM      ROM
//	   |
//	  RAM
//
// Indices are always in the device's own local coordinate space, starting at
// zero. Translating from the coordinates of a composite to the local
// coordinates of a child is the job of the composite.
//
// When the same physical storage must be reachable from more than one place
// in the graph (mirrors, aliases, a bank that is also mapped directly) it is
// wrapped in a Shared handle. Adapters and the bus only ever accept Shared
// handles, never raw devices.
//
// Accessing an index for which Contains() returns false is a programming
// error in the emulation being built and not a recoverable condition. Devices
// panic with a curated error in that case. The patterns for those errors are
// exported by this package so that they can be tested for with curated.Is()
// after a recover().
package device
