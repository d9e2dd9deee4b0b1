// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package instance defines those parts of the emulation that might change
// from instance to instance of the System type, but is not the System
// itself.
//
// Particularly useful when running more than one emulated system in the
// same process, for example a headless test harness comparing several
// ROMs in parallel.
package instance

import (
	"github.com/jetsetilly/neogeo/hardware/preferences"
	"github.com/jetsetilly/neogeo/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the System type, but is not the System
// itself.
type Instance struct {
	Prefs  *preferences.Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. tv supplies the raster position Random derives its output from.
func NewInstance(tv random.TV) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(tv),
	}

	var err error

	ins.Prefs, err = preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every
// run of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
