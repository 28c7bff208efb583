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
	"image"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/kelyard/phosphene/screen"
)

type playScr struct {
	img *SdlGlow

	// reference to screen data. nil until ReqSetScreen
	scr *screen.Screen

	// screen texture
	screenTexture uint32

	// (re)create texture on next render()
	createTexture bool

	imagePosMin imgui.Vec2
	imagePosMax imgui.Vec2

	// the amount by which the screen image is scaled for presentation.
	// recalculated whenever the window size or the screen changes
	scaling float32

	// fps overlay
	fpsOpen    bool
	fpsPulse   *time.Ticker
	fps        string
	frameCount int
}

func newPlayScr(img *SdlGlow) *playScr {
	win := &playScr{
		img:      img,
		fpsPulse: time.NewTicker(time.Second),
		fps:      "waiting",
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &win.screenTexture)
	gl.BindTexture(gl.TEXTURE_2D, win.screenTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	return win
}

func (win *playScr) destroy() {
	win.fpsPulse.Stop()
	if win.screenTexture != 0 {
		gl.DeleteTextures(1, &win.screenTexture)
		win.screenTexture = 0
	}
}

// setScreen attaches the screen to the playscreen. called from the service
// loop via ReqSetScreen.
func (win *playScr) setScreen(scr *screen.Screen) {
	win.scr = scr
	win.createTexture = true
	win.setScaling()
}

// draw is called from the service loop.
func (win *playScr) draw() {
	if win.scr == nil {
		return
	}

	dl := imgui.BackgroundDrawList()
	dl.AddImage(imgui.TextureID(win.screenTexture), win.imagePosMin, win.imagePosMax)

	if win.fpsOpen {
		// update fps
		select {
		case <-win.fpsPulse.C:
			win.fps = fmt.Sprintf("%d fps", win.frameCount)
			win.frameCount = 0
		default:
		}

		imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})

		transparent := imgui.Vec4{X: 0.0, Y: 0.0, Z: 0.0, W: 0.0}
		imgui.PushStyleColor(imgui.StyleColorWindowBg, transparent)
		imgui.PushStyleColor(imgui.StyleColorBorder, transparent)

		imgui.BeginV("##playscrfps", &win.fpsOpen, imgui.WindowFlagsAlwaysAutoResize|
			imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoDecoration)

		imgui.Text(win.fps)

		imgui.PopStyleColorV(2)
		imgui.End()
	}
}

// render uploads the screen pixels to the screen texture. called from the
// service loop before the imgui draw data is rendered.
func (win *playScr) render() {
	if win.scr == nil {
		return
	}

	win.frameCount++

	// scaling depends on the window size which may have changed
	win.setScaling()

	win.scr.WithPixels(func(pixels *image.RGBA) {
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pixels.Stride)/4)
		defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, win.screenTexture)

		if win.createTexture {
			win.createTexture = false
			gl.TexImage2D(gl.TEXTURE_2D, 0,
				gl.RGBA, int32(pixels.Bounds().Size().X), int32(pixels.Bounds().Size().Y), 0,
				gl.RGBA, gl.UNSIGNED_BYTE,
				gl.Ptr(pixels.Pix))
		} else {
			gl.TexSubImage2D(gl.TEXTURE_2D, 0,
				0, 0, int32(pixels.Bounds().Size().X), int32(pixels.Bounds().Size().Y),
				gl.RGBA, gl.UNSIGNED_BYTE,
				gl.Ptr(pixels.Pix))
		}
	})
}

// recalculate the scaling value and the position of the image, letterboxing
// inside the current window.
func (win *playScr) setScaling() {
	sz := win.img.plt.displaySize()
	dim := imgui.Vec2{X: sz[0], Y: sz[1]}

	winAspectRatio := dim.X / dim.Y

	nw, nh := win.scr.Size()
	w := float32(nw)
	h := float32(nh)
	aspectRatio := w / h

	if aspectRatio < winAspectRatio {
		win.scaling = dim.Y / h
		win.imagePosMin = imgui.Vec2{X: float32(int((dim.X - (w * win.scaling)) / 2))}
	} else {
		win.scaling = dim.X / w
		win.imagePosMin = imgui.Vec2{Y: float32(int((dim.Y - (h * win.scaling)) / 2))}
	}

	win.imagePosMax = dim.Minus(win.imagePosMin)
}

func (win *playScr) scaledWidth() float32 {
	if win.scr == nil {
		return 0
	}
	w, _ := win.scr.Size()
	return float32(w) * win.scaling
}

func (win *playScr) scaledHeight() float32 {
	if win.scr == nil {
		return 0
	}
	_, h := win.scr.Size()
	return float32(h) * win.scaling
}
