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

package screen_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/screen"
	"github.com/kelyard/phosphene/test"
)

func TestSetPixel(t *testing.T) {
	scr := screen.NewScreen(240, 320)

	w, h := scr.Size()
	test.Equate(t, w, 240)
	test.Equate(t, h, 320)

	err := scr.SetPixel(10, 10, color.RGBA{R: 255, A: 255})
	test.ExpectedSuccess(t, err)

	err = scr.SetPixel(240, 10, color.RGBA{R: 255, A: 255})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, screen.OutsideScreen))

	err = scr.SetPixel(-1, 0, color.RGBA{})
	test.ExpectedFailure(t, err)
}

func TestFrameSnapshot(t *testing.T) {
	scr := screen.NewScreen(32, 32)
	_ = scr.SetPixel(5, 5, color.RGBA{R: 255, A: 255})

	frm := scr.Frame()

	geom := frm.Geometry(1.0)
	c := frm.Color(geom.FragCoord(5, 5))
	test.Equate(t, c.R, 1)
	test.Equate(t, c.G, 0)

	// mutating the screen after the snapshot has no effect on the frame
	_ = scr.SetPixel(5, 5, color.RGBA{G: 255, A: 255})
	c = frm.Color(geom.FragCoord(5, 5))
	test.Equate(t, c.R, 1)
	test.Equate(t, c.G, 0)
}

func TestClear(t *testing.T) {
	scr := screen.NewScreen(16, 16)
	scr.SetBackground(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	_ = scr.SetPixel(3, 3, color.RGBA{R: 255, A: 255})
	scr.Clear()

	frm := scr.Frame()
	geom := frm.Geometry(1.0)

	bg := frm.Background()
	c := frm.Color(geom.FragCoord(3, 3))
	if c != bg {
		t.Errorf("clear did not restore the background color (%v != %v)", c, bg)
	}
}

func TestGeometry(t *testing.T) {
	scr := screen.NewScreen(240, 320)
	frm := scr.Frame()

	geom := frm.Geometry(3.0)
	test.Equate(t, geom.Width, 720)
	test.Equate(t, geom.Height, 960)

	// one texel step in the output coordinate space is one native pixel
	texel := geom.TexelSize()
	test.Equate(t, texel.X, float32(1.0/240.0))
	test.Equate(t, texel.Y, float32(1.0/320.0))
}

func TestLoadImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 60))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	// the screen is a different size to the image so the load resamples
	scr := screen.NewScreen(32, 32)
	scr.LoadImage(src)

	frm := scr.Frame()
	geom := frm.Geometry(1.0)

	want := glow.Color{R: 200.0 / 255.0, G: 100.0 / 255.0, B: 50.0 / 255.0, A: 1.0}
	for _, p := range [][2]int{{0, 0}, {16, 16}, {31, 31}} {
		c := frm.Color(geom.FragCoord(p[0], p[1]))
		if c != want {
			t.Errorf("resampled pixel (%d,%d) is %v, wanted %v", p[0], p[1], c, want)
		}
	}
}
