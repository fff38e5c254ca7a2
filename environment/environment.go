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

package environment

import (
	"github.com/jetsetilly/emukit/hardware/preferences"
	"github.com/jetsetilly/emukit/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label of the environment of the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) *Environment {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(),
		Prefs:  prefs,
	}

	if env.Prefs == nil {
		env.Prefs = preferences.NewPreferences()
	}

	return env
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.Reset()
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log. A nil environment is treated as the main
// emulation.
func (env *Environment) AllowLogging() bool {
	return env == nil || env.IsMainEmulation()
}

// RandomState returns true if memory should be put into a random state on
// reset. A nil environment never requires random state.
func (env *Environment) RandomState() bool {
	return env != nil && env.Prefs.RandomState.Load()
}
