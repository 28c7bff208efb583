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

package screen

import (
	"image"

	"github.com/kelyard/phosphene/glow"
)

// Frame is an immutable copy of the screen contents. It implements
// glow.Source and, because nothing mutates it, tolerates the concurrent
// sampling that glow.Render() requires without any locking.
type Frame struct {
	pixels     *image.RGBA
	width      int
	height     int
	background glow.Color
}

// Frame returns a snapshot of the current screen contents.
func (scr *Screen) Frame() *Frame {
	scr.crit.section.Lock()
	defer scr.crit.section.Unlock()

	b := scr.crit.pixels.Bounds()
	cpy := image.NewRGBA(b)
	copy(cpy.Pix, scr.crit.pixels.Pix)

	return &Frame{
		pixels:     cpy,
		width:      b.Dx(),
		height:     b.Dy(),
		background: scr.crit.background,
	}
}

// Geometry describes the output image produced when the frame is rendered at
// the supplied scale. One texel step in the output coordinate space is then
// exactly one native screen pixel.
func (frm *Frame) Geometry(scale float32) glow.Geometry {
	return glow.Geometry{
		Scale:  scale,
		Width:  float32(frm.width) * scale,
		Height: float32(frm.height) * scale,
	}
}

// Color implements the glow.Source interface. Sampling is nearest-neighbour.
func (frm *Frame) Color(tc glow.Coord) glow.Color {
	x := int(tc.X * float32(frm.width))
	y := int(tc.Y * float32(frm.height))
	if x < 0 {
		x = 0
	} else if x >= frm.width {
		x = frm.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= frm.height {
		y = frm.height - 1
	}

	c := frm.pixels.RGBAAt(x, y)
	return rgbaToColor(c)
}

// Visible implements the glow.Source interface.
func (frm *Frame) Visible(tc glow.Coord) bool {
	return tc.X >= 0.0 && tc.X < 1.0 && tc.Y >= 0.0 && tc.Y < 1.0
}

// Background implements the glow.Source interface.
func (frm *Frame) Background() glow.Color {
	return frm.background
}
