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

package preferences

import "sync/atomic"

// Preferences defines and collates the preference values that affect how the
// hardware behaves. Values are not loaded from or saved to disk.
type Preferences struct {
	// initialise memory to an unknown state after reset
	RandomState atomic.Bool
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Store(false)
}

func (p *Preferences) String() string {
	if p.RandomState.Load() {
		return "hardware.randstate: true"
	}
	return "hardware.randstate: false"
}
