// This file is part of Phosphene.
//
// Phosphene is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphene is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphene.  If not, see <https://www.gnu.org/licenses/>.

package glow

import (
	"github.com/kelyard/phosphene/prefs"
	"github.com/kelyard/phosphene/resources"
)

// Preferences for the glow filter as presented by the GUI.
//
// Note that the filter constants themselves (neighbourhood radius, falloff,
// normalisation) are not preferences. They are part of the look of the
// filter and changing them would change the look of every game rendered
// through it.
type Preferences struct {
	dsk *prefs.Disk

	// whether the filter is applied at all. when disabled the frame is
	// presented unfiltered
	Enabled prefs.Bool

	// the display scale factor
	Scale prefs.Float
}

const (
	enabled = true
	scale   = 3.0
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("glow.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("glow.scale", &p.Scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all glow settings to default values.
func (p *Preferences) SetDefaults() {
	p.Enabled.Set(enabled)
	p.Scale.Set(scale)
}

// Load preferences from disk and apply to the current settings.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
