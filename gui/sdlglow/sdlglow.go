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

// Package sdlglow is an sdl based presentation layer using imgui. The
// attached screen is drawn to the window background with the glow filter
// applied by the GPU.
package sdlglow

import (
	"io"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/logger"
	"github.com/kelyard/phosphene/resources"
	"github.com/kelyard/phosphene/screen"

	"github.com/inkyblackness/imgui-go/v4"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "phosphene_imgui.ini"

// SdlGlow is an sdl based visualiser using imgui.
type SdlGlow struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *glsl

	// the screen that is being presented. attached with ReqSetScreen
	scr *screen.Screen

	// the screen is drawn to the background of the platform window
	playScr *playScr

	// the preferences window
	winPrefs *winPrefs

	// glow filter preferences. shared with the renderer and the
	// preferences window
	prefs *glow.Preferences

	// polling encapsulates the programmatic communication to the service
	// loop. how the feature requests are handled by the service loop is
	// important to the GUI's responsiveness.
	polling *polling

	// quit requests are forwarded to the owner of the gui rather than
	// acted on immediately
	quit chan<- bool

	// current full screen state. set via ReqFullScreen
	fullScreen bool
}

// NewSdlGlow is the preferred method of initialisation for type SdlGlow.
//
// A quit request is sent on the quit channel when the user closes the
// window. The gui itself does not end until Destroy() is called.
//
// MUST ONLY be called from the gui thread.
func NewSdlGlow(quit chan<- bool) (*SdlGlow, error) {
	img := &SdlGlow{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		quit:    quit,
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlglow: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlglow: %v", err)
	}

	img.rnd, err = newGlsl(img)
	if err != nil {
		return nil, curated.Errorf("sdlglow: %v", err)
	}

	img.playScr = newPlayScr(img)
	img.winPrefs = newWinPrefs(img)

	img.prefs, err = glow.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("sdlglow: %v", err)
	}

	img.polling = newPolling(img)

	return img, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlGlow) Destroy(output io.Writer) {
	img.playScr.destroy()
	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// send a quit request to the owner of the gui.
func (img *SdlGlow) sendQuit() {
	select {
	case img.quit <- true:
	default:
		logger.Log("sdlglow", "dropped quit event")
	}
}

// save any outstanding preferences. called when we receive a ReqEnd.
func (img *SdlGlow) end() {
	err := img.prefs.Save()
	if err != nil {
		logger.Logf("sdlglow", "%v", err)
	}
}

// draw gui. called from service loop.
func (img *SdlGlow) draw() {
	if img.scr == nil {
		return
	}

	img.playScr.draw()
	img.winPrefs.draw()
}
