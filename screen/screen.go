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

// Package screen provides the pixel buffer that game code plots to and that
// the glow filter reads from. The Screen type is safe for concurrent use;
// sampling for a render should go through an immutable Frame snapshot.
package screen

import (
	"image"
	"image/color"
	"sync"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/glow"

	"golang.org/x/image/draw"
)

// sentinal error returned by SetPixel().
const OutsideScreen = "screen: pixel (%d, %d) is outside the screen"

// Screen is the source frame for the glow filter. Pixels are at the game's
// native resolution; scaling happens at render time.
type Screen struct {
	crit screenCrit
}

// variables accessed in the critical section are encapsulated in their own
// subtype.
type screenCrit struct {
	section sync.Mutex

	pixels *image.RGBA

	// fallback color for samples outside the visible screen
	background glow.Color
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(width int, height int) *Screen {
	scr := &Screen{}
	scr.crit.pixels = image.NewRGBA(image.Rect(0, 0, width, height))
	scr.crit.background = glow.NonGlowing[0]
	scr.Clear()
	return scr
}

// Size returns the native dimensions of the screen.
func (scr *Screen) Size() (int, int) {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()
	b := scr.crit.pixels.Bounds()
	return b.Dx(), b.Dy()
}

// SetBackground changes the fallback color used for samples that fall
// outside the visible screen.
func (scr *Screen) SetBackground(c color.RGBA) {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()
	scr.crit.background = rgbaToColor(c)
}

// Background returns the current fallback color.
func (scr *Screen) Background() glow.Color {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()
	return scr.crit.background
}

// SetPixel plots a single pixel in native screen coordinates.
func (scr *Screen) SetPixel(x int, y int, c color.RGBA) error {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()

	if !image.Pt(x, y).In(scr.crit.pixels.Bounds()) {
		return curated.Errorf(OutsideScreen, x, y)
	}

	scr.crit.pixels.SetRGBA(x, y, c)
	return nil
}

// Clear fills the screen with the background color.
func (scr *Screen) Clear() {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()

	fill := colorToRGBA(scr.crit.background)
	b := scr.crit.pixels.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			scr.crit.pixels.SetRGBA(x, y, fill)
		}
	}
}

// LoadImage replaces the screen contents with the supplied image, resampling
// it to the native screen resolution if necessary.
func (scr *Screen) LoadImage(img image.Image) {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()

	if img.Bounds() == scr.crit.pixels.Bounds() {
		draw.Copy(scr.crit.pixels, image.Point{}, img, img.Bounds(), draw.Src, nil)
		return
	}
	draw.ApproxBiLinear.Scale(scr.crit.pixels, scr.crit.pixels.Bounds(), img, img.Bounds(), draw.Src, nil)
}

// WithPixels runs the supplied function inside the critical section, giving
// it direct access to the pixel array. Used for texture uploads. The
// function must not retain the image.
func (scr *Screen) WithPixels(f func(img *image.RGBA)) {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()
	f(scr.crit.pixels)
}

func rgbaToColor(c color.RGBA) glow.Color {
	return glow.Color{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

func colorToRGBA(c glow.Color) color.RGBA {
	conv := func(v float32) uint8 {
		if v >= 1.0 {
			return 255
		}
		if v <= 0.0 {
			return 0
		}
		return uint8(v*255.0 + 0.5)
	}
	return color.RGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: conv(c.A)}
}
