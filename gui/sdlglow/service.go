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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/kelyard/phosphene/resources"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlGlow) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.sendQuit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(deltaX, deltaY)

		case *sdl.MouseButtonEvent:
			// mouse buttons are forwarded to imgui in platform.newFrame().
			// the event is still useful to wake the service loop
			img.polling.alert()
		}
	}

	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	// draw all imgui elements
	img.draw()

	// rendering
	imgui.Render()
	img.rnd.preRender()
	img.playScr.render()
	img.rnd.render()
	img.plt.postRender()
}

func (img *SdlGlow) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYUP {
		switch ev.Keysym.Scancode {
		case sdl.SCANCODE_ESCAPE:
			img.sendQuit()

		case sdl.SCANCODE_F7:
			img.playScr.fpsOpen = !img.playScr.fpsOpen

		case sdl.SCANCODE_F10:
			img.winPrefs.open = !img.winPrefs.open

		case sdl.SCANCODE_F11:
			img.fullScreen = !img.fullScreen
			img.plt.setFullScreen(img.fullScreen)

		case sdl.SCANCODE_F12:
			// screenshot of the presented image, saved to the working
			// directory. taken as part of the next render
			img.rnd.scheduleScreenshot(fmt.Sprintf("%s.jpg", resources.UniqueFilename("screenshot")))

		case sdl.SCANCODE_G:
			// toggle the glow filter. not persisted until the preferences
			// are saved
			enabled := img.prefs.Enabled.Get().(bool)
			_ = img.prefs.Enabled.Set(!enabled)
		}

		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.updateKeyModifier()
	} else if ev.Type == sdl.KEYDOWN {
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.updateKeyModifier()
	}

	img.polling.alert()
}

func (img *SdlGlow) updateKeyModifier() {
	modState := sdl.GetModState()
	mapModifier := func(lMask sdl.Keymod, lKey sdl.Scancode, rMask sdl.Keymod, rKey sdl.Scancode) (lResult int, rResult int) {
		if modState&lMask != 0 {
			lResult = int(lKey)
		}
		if modState&rMask != 0 {
			rResult = int(rKey)
		}
		return
	}
	img.io.KeyShift(mapModifier(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	img.io.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	img.io.KeyAlt(mapModifier(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}
