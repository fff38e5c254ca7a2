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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later with the Is() function:
//
//	e := curated.Errorf(device.OutOfRange, 0x1000)
//
//	if curated.Is(e, device.OutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("bus: %v", e)
//
//	if curated.Has(f, device.OutOfRange) {
//		fmt.Println("true")
//	}
//
// Patterns are the nearest thing the package has to sentinel errors. They
// should be stored as exported const strings next to the code that raises
// them. The device package for example, exports the patterns used when a
// device contract is violated.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ': '. So wrapping an
// error with the same prefix more than once doesn't produce a stuttering
// message:
//
//	bus: bus: unmapped address
//
// becomes:
//
//	bus: unmapped address
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can look inside them.
package curated
