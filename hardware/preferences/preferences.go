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

// Package preferences holds the user-configurable options that persist
// across runs: region, system type, and the handful of emulation-fidelity
// knobs that affect output but not correctness.
package preferences

import (
	"github.com/jetsetilly/neogeo/prefs"
	"github.com/jetsetilly/neogeo/resources"
)

// Preferences groups every persisted option behind a single Disk.
type Preferences struct {
	dsk *prefs.Disk

	Region         prefs.String
	SystemType     prefs.String
	SpritesPerLine prefs.Int
	ADPCMAWrap     prefs.Bool
	HighFidelity   prefs.Bool
	VerboseLog     prefs.Bool
}

// NewPreferences loads (or creates) the preferences file at the standard
// resource path and registers every known option against it.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath("prefs")
	if err != nil {
		return nil, err
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p := &Preferences{dsk: dsk}

	if err := p.dsk.Add("region", &p.Region); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("systemtype", &p.SystemType); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("spritesperline", &p.SpritesPerLine); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("adpcmawrap", &p.ADPCMAWrap); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("highfidelity", &p.HighFidelity); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("verboselog", &p.VerboseLog); err != nil {
		return nil, err
	}

	p.SetDefaults()

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults resets every option to its out-of-the-box value.
func (p *Preferences) SetDefaults() {
	_ = p.Region.Set("JP")
	_ = p.SystemType.Set("MVS")
	_ = p.SpritesPerLine.Set(96)
	_ = p.ADPCMAWrap.Set(false)
	_ = p.HighFidelity.Set(false)
	_ = p.VerboseLog.Set(false)
}

// Load reads the preferences file, applying any values found for the
// registered options.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save writes the current option values to the preferences file.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
