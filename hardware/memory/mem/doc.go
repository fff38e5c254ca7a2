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

// Package mem implements the fixed-capacity leaf stores: random-access memory
// (RAM) and read-only memory (ROM). Both implement the device.Device and
// device.Block interfaces directly over a slice of bytes.
//
// Capacity is fixed at construction. Neither type performs any address
// translation. To place a store somewhere other than index zero, wrap it in
// an adapter or mount it on a bus.
package mem
