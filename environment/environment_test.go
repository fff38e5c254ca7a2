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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/emukit/environment"
	"github.com/jetsetilly/emukit/test"
)

func TestEnvironment(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, nil)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.AllowLogging())
	test.ExpectFailure(t, env.RandomState())

	env.Prefs.RandomState.Store(true)
	test.ExpectSuccess(t, env.RandomState())

	env.Normalise()
	test.ExpectFailure(t, env.RandomState())

	other := environment.NewEnvironment("preview", env.Prefs)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("preview"))
	test.ExpectFailure(t, other.AllowLogging())
}

func TestNilEnvironment(t *testing.T) {
	var env *environment.Environment
	test.ExpectSuccess(t, env.AllowLogging())
	test.ExpectFailure(t, env.RandomState())
}
