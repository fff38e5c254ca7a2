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

// Package adapters implements the structural device adapters. Each adapter
// wraps one or more shared devices and is itself a device, so adapters nest
// inside each other and can be mounted on a bus.
//
// Bank selects one of several devices. It is the basis of bank-switching
// schemes, where writing to a hotspot changes what is seen at a range of
// addresses.
//
// Remap translates an index before forwarding it. Translators for the common
// cases are provided: Offset() for relocating a device, Mask() and Mirror()
// for the partial address decoding that causes hardware to appear more than
// once in the address space. Any function can be used as a translator with
// TranslatorFunc. A Remap reports the range of indices it can claim with
// Span(), which is what a bus uses to detect overlapping mappings.
//
// View restricts a device to a window of its address range, re-exposing the
// window from index zero.
//
// None of the adapters own any storage. Adapters only accept device.Shared
// handles so the same storage can be reached from many adapters at once.
// Resetting an adapter resets every device it wraps, including banks that are
// not selected and the parts of a device that are outside a view.
package adapters
