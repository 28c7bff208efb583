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

package sdlglow

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/kelyard/phosphene/logger"
)

// winPrefs is the window through which the glow preferences are changed.
// opened with ReqPrefsWindow or the F10 key.
type winPrefs struct {
	img  *SdlGlow
	open bool
}

func newWinPrefs(img *SdlGlow) *winPrefs {
	return &winPrefs{img: img}
}

func (win *winPrefs) draw() {
	if !win.open {
		return
	}

	imgui.BeginV("Preferences", &win.open, imgui.WindowFlagsAlwaysAutoResize)

	enabled := win.img.prefs.Enabled.Get().(bool)
	if imgui.Checkbox("Glow Filter", &enabled) {
		err := win.img.prefs.Enabled.Set(enabled)
		if err != nil {
			logger.Logf("sdlglow", "%v", err)
		}
	}

	scale := float32(win.img.prefs.Scale.Get().(float64))
	if imgui.SliderFloat("Scale", &scale, 1.0, 6.0) {
		err := win.img.prefs.Scale.Set(float64(scale))
		if err != nil {
			logger.Logf("sdlglow", "%v", err)
		}
	}

	imgui.Spacing()

	if imgui.Button("Save") {
		err := win.img.prefs.Save()
		if err != nil {
			logger.Logf("sdlglow", "%v", err)
		}
	}

	imgui.SameLine()
	if imgui.Button("Restore") {
		err := win.img.prefs.Load()
		if err != nil {
			logger.Logf("sdlglow", "%v", err)
		}
	}

	imgui.End()
}
