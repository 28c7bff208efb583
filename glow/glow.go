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
	"github.com/chewxy/math32"
)

// Color is an RGBA color. Channel values are in the range 0.0 to 1.0
// although the filter output is not clamped - values greater than 1.0 are
// resolved by whatever presents the color (see render.go for the CPU path).
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Coord is a normalised texture coordinate. The visible screen covers 0.0
// to 1.0 on both axes.
type Coord struct {
	X float32
	Y float32
}

// Source supplies the frame content being filtered. Implementations must be
// safe to call from multiple goroutines (see Render()).
type Source interface {
	// Color of the screen at the texture coordinate
	Color(Coord) Color

	// Visible indicates whether the coordinate lies within the visible
	// screen
	Visible(Coord) bool

	// Background fill color used for coordinates outside the visible screen
	Background() Color
}

// Geometry is the mapping between output fragments and source texture
// coordinates. Supplied by the host for every render and read-only to the
// filter.
type Geometry struct {
	// the screen scale factor. one source pixel covers Scale fragments on
	// each axis
	Scale float32

	// dimensions of the output image in fragments
	Width  float32
	Height float32
}

// TexelSize is the size of one source pixel in texture coordinate units.
func (geom Geometry) TexelSize() Coord {
	return Coord{
		X: geom.Scale / geom.Width,
		Y: geom.Scale / geom.Height,
	}
}

// FragCoord is the texture coordinate of the centre of the numbered
// fragment.
func (geom Geometry) FragCoord(x int, y int) Coord {
	return Coord{
		X: (float32(x) + 0.5) / geom.Width,
		Y: (float32(y) + 0.5) / geom.Height,
	}
}

// Radius of the square neighbourhood that contributes to a fragment's glow.
// The neighbourhood is (2*Radius+1)^2 samples.
const Radius = 10

// distances up to knee contribute at full strength. beyond that the
// contribution attenuates with distance, producing the falloff halo.
const knee = 2.0

// the accumulated neighbourhood sum is divided by this before the sharp
// sample is added. the value is hand-tuned and is not derived from the
// sample count. do not "correct" it.
const normalisation = 90.0

// Weight of a neighbourhood sample at the given (unscaled) offset from the
// fragment.
func Weight(dx int, dy int) float32 {
	d := math32.Hypot(float32(dx), float32(dy))
	return knee / math32.Max(knee, d)
}

// Lookup is the color-lookup rule used for every sample taken by the
// filter: coordinates within the visible screen resolve to the screen
// color and anything else resolves to the background color. Alpha is 1.0 in
// both cases.
func Lookup(src Source, tc Coord) Color {
	var c Color
	if src.Visible(tc) {
		c = src.Color(tc)
	} else {
		c = src.Background()
	}
	c.A = 1.0
	return c
}

// Pixel runs the filter for a single fragment, returning the final color
// for that fragment.
//
// The function is deterministic given the same frame content and geometry.
// The returned color is not clamped.
func Pixel(src Source, geom Geometry, tc Coord) Color {
	texel := geom.TexelSize()

	// the accumulator lives only for the duration of this invocation
	var acc Color

	for dy := -Radius; dy <= Radius; dy++ {
		for dx := -Radius; dx <= Radius; dx++ {
			c := Lookup(src, Coord{
				X: tc.X + float32(dx)*texel.X,
				Y: tc.Y + float32(dy)*texel.Y,
			})

			// non-glowing surfaces contribute nothing
			if Excluded(c) {
				continue
			}

			// squaring each channel emphasises the bright areas of the frame
			w := Weight(dx, dy)
			acc.R += c.R * c.R * w
			acc.G += c.G * c.G * w
			acc.B += c.B * c.B * w
			acc.A += c.A * c.A * w
		}
	}

	// the sharp sample is added unweighted so the original image survives
	// underneath the halo
	sharp := Lookup(src, tc)

	return Color{
		R: acc.R/normalisation + sharp.R,
		G: acc.G/normalisation + sharp.G,
		B: acc.B/normalisation + sharp.B,
		A: acc.A/normalisation + sharp.A,
	}
}
