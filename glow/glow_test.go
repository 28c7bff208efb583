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

package glow_test

import (
	"testing"

	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/test"
)

// frame is a minimal glow.Source for testing. pixels are addressed in
// source pixel coordinates.
type frame struct {
	width  int
	height int
	pixels map[[2]int]glow.Color
	bg     glow.Color
}

func newFrame(width int, height int, bg glow.Color) *frame {
	return &frame{
		width:  width,
		height: height,
		pixels: make(map[[2]int]glow.Color),
		bg:     bg,
	}
}

func (f *frame) set(x int, y int, c glow.Color) {
	f.pixels[[2]int{x, y}] = c
}

func (f *frame) Color(tc glow.Coord) glow.Color {
	x := int(tc.X * float32(f.width))
	y := int(tc.Y * float32(f.height))
	if c, ok := f.pixels[[2]int{x, y}]; ok {
		return c
	}
	return f.bg
}

func (f *frame) Visible(tc glow.Coord) bool {
	return tc.X >= 0.0 && tc.X < 1.0 && tc.Y >= 0.0 && tc.Y < 1.0
}

func (f *frame) Background() glow.Color {
	return f.bg
}

func closeEnough(a, b glow.Color) bool {
	const tolerance = 1e-5
	diff := func(x, y float32) bool {
		d := x - y
		return d < tolerance && d > -tolerance
	}
	return diff(a.R, b.R) && diff(a.G, b.G) && diff(a.B, b.B) && diff(a.A, b.A)
}

// reference computation of the filter for a single fragment. written
// independently of Pixel() but using the same lookup rule.
func referencePixel(src glow.Source, geom glow.Geometry, tc glow.Coord) glow.Color {
	texel := geom.TexelSize()

	var acc glow.Color
	for dy := -glow.Radius; dy <= glow.Radius; dy++ {
		for dx := -glow.Radius; dx <= glow.Radius; dx++ {
			c := glow.Lookup(src, glow.Coord{
				X: tc.X + float32(dx)*texel.X,
				Y: tc.Y + float32(dy)*texel.Y,
			})
			if glow.Excluded(c) {
				continue
			}
			w := glow.Weight(dx, dy)
			acc.R += c.R * c.R * w
			acc.G += c.G * c.G * w
			acc.B += c.B * c.B * w
			acc.A += c.A * c.A * w
		}
	}

	sharp := glow.Lookup(src, tc)
	return glow.Color{
		R: acc.R/90.0 + sharp.R,
		G: acc.G/90.0 + sharp.G,
		B: acc.B/90.0 + sharp.B,
		A: acc.A/90.0 + sharp.A,
	}
}

func TestWeight(t *testing.T) {
	// within the knee distance the weight is exactly 1.0
	test.Equate(t, glow.Weight(0, 0), 1)
	test.Equate(t, glow.Weight(1, 0), 1)
	test.Equate(t, glow.Weight(0, 2), 1)
	test.Equate(t, glow.Weight(-2, 0), 1)

	// sqrt(1+1) < 2.0 so the diagonal neighbour is also full strength
	test.Equate(t, glow.Weight(1, 1), 1)

	// beyond the knee the weight attenuates
	if glow.Weight(3, 0) >= 1.0 {
		t.Error("expected attenuation beyond the knee distance")
	}

	// monotonicity: weight never increases with distance
	prev := glow.Weight(0, 0)
	for d := 1; d <= glow.Radius; d++ {
		w := glow.Weight(d, 0)
		if w > prev {
			t.Errorf("weight at distance %d is greater than at distance %d", d, d-1)
		}
		prev = w
	}
}

func TestWeightSymmetry(t *testing.T) {
	// the weight depends only on the length of the offset
	for dy := -glow.Radius; dy <= glow.Radius; dy++ {
		for dx := -glow.Radius; dx <= glow.Radius; dx++ {
			test.Equate(t, glow.Weight(dx, dy), glow.Weight(-dx, -dy))
		}
	}
}

func TestExcluded(t *testing.T) {
	for i := range glow.NonGlowing {
		test.ExpectedSuccess(t, glow.Excluded(glow.NonGlowing[i]))
	}

	test.ExpectedFailure(t, glow.Excluded(glow.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0}))
	test.ExpectedFailure(t, glow.Excluded(glow.Color{}))

	// close is not good enough. membership is exact
	c := glow.NonGlowing[0]
	c.R += 1e-6
	test.ExpectedFailure(t, glow.Excluded(c))
}

func TestLookup(t *testing.T) {
	bg := glow.Color{R: 0.1, G: 0.2, B: 0.3}
	f := newFrame(32, 32, bg)
	f.set(16, 16, glow.Color{R: 1.0})

	geom := glow.Geometry{Scale: 1.0, Width: 32, Height: 32}
	tc := geom.FragCoord(16, 16)

	// alpha is always forced to 1.0
	c := glow.Lookup(f, tc)
	test.Equate(t, c.R, 1)
	test.Equate(t, c.A, 1)

	// lookup is pure. identical coordinates yield identical colors
	if glow.Lookup(f, tc) != c {
		t.Error("lookup is not idempotent")
	}

	// coordinates outside the visible screen resolve to the background
	// color, again with alpha 1.0
	out := glow.Lookup(f, glow.Coord{X: -0.5, Y: 0.5})
	test.Equate(t, out.R, bg.R)
	test.Equate(t, out.A, 1)
}

func TestPixelAgainstReference(t *testing.T) {
	f := newFrame(64, 64, glow.Color{R: 0.2, G: 0.2, B: 0.2})
	f.set(32, 32, glow.Color{R: 1.0, G: 0.8, B: 0.1})
	f.set(33, 32, glow.Color{R: 0.9, G: 0.1, B: 0.7})
	f.set(30, 35, glow.NonGlowing[1])

	geom := glow.Geometry{Scale: 1.0, Width: 64, Height: 64}

	// a fragment far from the screen edge. the full neighbourhood lies
	// within the visible screen
	tc := geom.FragCoord(32, 32)
	if !closeEnough(glow.Pixel(f, geom, tc), referencePixel(f, geom, tc)) {
		t.Error("filter does not match reference computation")
	}
}

func TestPixelPurity(t *testing.T) {
	f := newFrame(64, 64, glow.Color{R: 0.2})
	f.set(32, 32, glow.Color{R: 1.0})

	geom := glow.Geometry{Scale: 1.0, Width: 64, Height: 64}
	tc := geom.FragCoord(32, 32)

	// identical inputs produce identical outputs
	a := glow.Pixel(f, geom, tc)
	b := glow.Pixel(f, geom, tc)
	if a != b {
		t.Error("filter is not deterministic")
	}
}

func TestExcludedBackground(t *testing.T) {
	// the entire frame, and the background, is a non-glowing color. the
	// accumulated halo is exactly zero and the output is the sharp sample
	// alone
	f := newFrame(64, 64, glow.NonGlowing[0])

	geom := glow.Geometry{Scale: 1.0, Width: 64, Height: 64}
	tc := geom.FragCoord(32, 32)

	out := glow.Pixel(f, geom, tc)
	if out != glow.NonGlowing[0] {
		t.Errorf("expected sharp sample alone, got %v", out)
	}
}

func TestSymmetry(t *testing.T) {
	bg := glow.Color{R: 0.1, G: 0.1, B: 0.1}
	bright := glow.Color{R: 1.0, G: 0.9, B: 0.4}

	// two frames with the same pattern rotated 180 degrees around the
	// sample point
	a := newFrame(64, 64, bg)
	a.set(35, 30, bright)
	a.set(28, 36, bright)

	b := newFrame(64, 64, bg)
	b.set(29, 34, bright)
	b.set(36, 28, bright)

	geom := glow.Geometry{Scale: 1.0, Width: 64, Height: 64}
	tc := geom.FragCoord(32, 32)

	if !closeEnough(glow.Pixel(a, geom, tc), glow.Pixel(b, geom, tc)) {
		t.Error("neighbourhood sum is not invariant under rotation of the offsets")
	}
}

func TestBoundary(t *testing.T) {
	// a glowing background combined with a fragment at the very corner of
	// the screen. many of the neighbourhood offsets fall outside the
	// visible screen and must resolve to the background color without
	// disturbing the rest of the sum
	f := newFrame(64, 64, glow.Color{R: 0.5, G: 0.5, B: 0.5})

	geom := glow.Geometry{Scale: 1.0, Width: 64, Height: 64}
	tc := geom.FragCoord(0, 0)

	if !closeEnough(glow.Pixel(f, geom, tc), referencePixel(f, geom, tc)) {
		t.Error("filter does not match reference computation at the screen edge")
	}

	// with background equal to frame content the corner fragment must
	// equal a fragment at the centre. every sample resolves to the same
	// color either way
	centre := glow.Pixel(f, geom, geom.FragCoord(32, 32))
	corner := glow.Pixel(f, geom, tc)
	if !closeEnough(centre, corner) {
		t.Error("background fallback distorts the neighbourhood sum")
	}
}

func TestTexelSize(t *testing.T) {
	// texel size follows from the scale factor and the output dimensions
	geom := glow.Geometry{Scale: 3.0, Width: 720, Height: 960}
	texel := geom.TexelSize()
	test.Equate(t, texel.X, float32(3.0/720.0))
	test.Equate(t, texel.Y, float32(3.0/960.0))
}
