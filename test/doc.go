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

// Package test bundles helper functions that remove common boilerplate from
// tests. They are intended to be used alongside the standard go test harness.
//
// The Expect functions mark a test as failed but allow it to continue. The
// Demand functions are a testing fatality on failure and should be used when
// later parts of a test rely on the value being correct.
//
// ExpectSuccess() and ExpectFailure() test values for generic success or
// failure. It is worth describing how they handle nil because it is not
// obvious: nil is considered a success. This is because of how errors
// usually work, with a nil error indicating no error.
//
// Contract violations in emukit devices are fatal and are raised with panic().
// ExpectPanic() and ExpectPanicError() recover the panic and return the value
// for further inspection, usually with the curated package:
//
//	err := test.ExpectPanicError(t, func() { rom.Write(0, 0xff) })
//	test.ExpectSuccess(t, curated.Is(err, device.ReadOnly))
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
package test
