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

// Package inspect contains debugging aids for devices. None of the functions
// in this package change the state of a device, except that reading a Random
// device advances the random number sequence.
//
// Hexdump() and Histogram() read every index in the range [0, Len()) of a
// device. Indices that the device does not contain are treated as zero.
//
// Graph() writes the composition of a device in the Graphviz DOT language.
// Devices that are shared by more than one owner appear once in the graph
// with an edge from every owner.
package inspect
