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

// Package script exposes devices to Lua scripts. Each device is bound to a
// global table with the following functions:
//
//	read(idx)          returns the byte at the index
//	write(idx, data)   stores the byte at the index
//	len()              returns the length of the device
//	contains(idx)      returns true if the index is addressable
//	reset()            resets the device
//
// For example, a bus bound with the name "mem" can be used like this:
//
//	mem.write(0x80, 0xff)
//	if mem.contains(0x1000) then
//		print(mem.read(0x1000))
//	end
//
// Violations of the device contract do not panic. Instead the script fails
// with a Lua error. A global log(msg) function adds an entry to the central
// logger.
package script
