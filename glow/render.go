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
	"image"
	"image/color"
	"runtime"
	"sync"
)

// Render applies the filter to every fragment of the output image described
// by the geometry.
//
// Fragments are mutually independent so rows are distributed over a pool of
// goroutines, one per CPU. The Source implementation must tolerate
// concurrent calls.
func Render(src Source, geom Geometry) *image.RGBA {
	width := int(geom.Width)
	height := int(geom.Height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rows := make(chan int, height)
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < width; x++ {
					c := Pixel(src, geom, geom.FragCoord(x, y))
					img.SetRGBA(x, y, color.RGBA{
						R: clamp8(c.R),
						G: clamp8(c.G),
						B: clamp8(c.B),
						A: clamp8(c.A),
					})
				}
			}
		}()
	}
	wg.Wait()

	return img
}

// the filter itself never clamps but an 8bit image forces the issue. this
// mirrors what the GPU does when the shader writes to the framebuffer.
func clamp8(v float32) uint8 {
	if v >= 1.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v * 255.0)
}
