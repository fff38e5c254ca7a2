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

package random_test

import (
	"testing"

	"github.com/jetsetilly/emukit/random"
	"github.com/jetsetilly/emukit/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true
	a.Reset()
	b.Reset()

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestFill(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true
	a.Reset()

	x := make([]uint8, 256)
	a.Fill(x)

	a.Reset()
	y := make([]uint8, 256)
	a.Fill(y)

	for i := range x {
		test.ExpectEquality(t, x[i], y[i])
	}
}

func TestZeroValue(t *testing.T) {
	var a random.Random
	v := a.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
