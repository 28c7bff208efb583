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

package main_test

import (
	"image/color"
	"testing"

	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/screen"
)

func BenchmarkRender(b *testing.B) {
	scr := screen.NewScreen(240, 320)

	// a frame of diagonal glowing stripes. a filter over a cleared screen
	// would skip every sample through the palette exclusion
	for y := 0; y < 320; y++ {
		for x := 0; x < 240; x++ {
			if (x+y)%7 == 0 {
				err := scr.SetPixel(x, y, color.RGBA{R: 255, G: 128, B: 64, A: 255})
				if err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	frm := scr.Frame()
	geom := frm.Geometry(3.0)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = glow.Render(frm, geom)
	}
}
