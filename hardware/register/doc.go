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

// Package register implements fixed-width unsigned registers that are also
// byte-addressable devices.
//
// A register holds an integer value that can be accessed atomically with
// Value() and Load(). Because it implements device.Device it can also be
// mounted on a bus and accessed a byte at a time. Byte order is little-endian:
// index zero is the least significant byte.
//
// Register is generic over the unsigned integer types uint8, uint16, uint32 and
// uint64. Go has no native 128-bit integer type so the 128-bit register is the
// separate Register128 type, holding its value as a Uint128.
package register
