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

// Package memory is the root of the memory composition packages. There is no
// code in this package.
//
// Memory is built from devices. A device is anything that can be addressed
// by index and read from or written to one byte at a time. The contract is
// defined by the Device interface in the device package. Leaf devices own
// their storage and are found in the mem package (RAM and ROM) and the
// register package. The adapters package contains devices that own no
// storage of their own but which wrap other devices:
//
//	Bank    selects one device from a list of devices
//	Remap   translates indices before forwarding them
//	View    exposes a window of a device starting at index zero
//
// Adapters can wrap other adapters to any depth. A Bus from the bus package
// routes a global address space to devices mounted at base addresses. The
// following ASCII diagram shows a typical composition:
//
//
//	                        ---- RAM
//	                       |
//	    CPU ---- Bus ------|---- Remap (mirror) ---- RAM (same storage)
//	                       |
//	                        ---- Remap ---- Bank ---- ROM (bank 0)
//	                                            \
//	                                             \--- ROM (bank 1)
//
//
// Devices are wrapped in a device.Shared handle before they are given to an
// adapter or a bus. The same handle can be given to more than one owner,
// which is how storage is aliased. In the diagram the RAM is mounted once
// directly and once through a mirror.
//
// Resetting a composite device resets everything it owns. Resetting the Bus
// in the diagram resets the RAM and both banks of ROM, regardless of which
// bank is selected.
//
// The inspect package has helper functions for looking at devices while
// debugging.
package memory
