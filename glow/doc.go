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

// Package glow implements a bloom style post-processing filter for low
// resolution screens. Bright areas of the frame bleed into their
// neighbourhood, producing a halo, while the original image is layered
// sharply on top.
//
// For every fragment of the output image the filter sums a fixed square
// neighbourhood of source samples. Each sample is squared component-wise
// and weighted by distance from the fragment. Samples matching one of the
// non-glowing palette colors contribute nothing. The accumulated sum is
// normalised and the unweighted sample at the fragment's own coordinate is
// added on top.
//
// The filter is pure. The same frame content and geometry always produce
// the same output and no state survives between invocations. Every fragment
// is independent of every other fragment, which is what allows the Render()
// function to process fragments concurrently and the GLSL rendition of the
// filter (see the shaders sub-package) to run on the GPU.
//
// The Source interface describes the frame being filtered: a sampling
// function, a visibility predicate and a background fill color. Coordinates
// outside the visible screen resolve to the background color. The screen
// package provides the standard implementation.
package glow
