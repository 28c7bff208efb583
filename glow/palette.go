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

// NonGlowing is the set of palette colors that never emit a halo. These are
// the background/skin tones of the palette. Alpha is 1.0, matching the
// alpha forced by the Lookup() function.
//
// Membership is decided by exact floating point equality against these
// values.
var NonGlowing = [...]Color{
	{R: 238.0 / 255.0, G: 238.0 / 255.0, B: 238.0 / 255.0, A: 1.0},
	{R: 237.0 / 255.0, G: 199.0 / 255.0, B: 176.0 / 255.0, A: 1.0},
	{R: 169.0 / 255.0, G: 193.0 / 255.0, B: 255.0 / 255.0, A: 1.0},
}

// Excluded indicates whether the color is a member of the NonGlowing set.
func Excluded(c Color) bool {
	for i := range NonGlowing {
		if c == NonGlowing[i] {
			return true
		}
	}
	return false
}
