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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the formatting pattern
// doubles as the identity of the error:
//
//	e := curated.Errorf("glow: %v", err)
//
//	if curated.Is(e, "glow: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain, rather than just the outermost error.
//
// The IsAny() function answers whether the error was created by this package
// at all. A convenient way of thinking about curated/uncurated errors is as
// 'expected' and 'unexpected' errors.
//
// The Error() function for curated errors normalises the message chain,
// removing duplicate adjacent parts. This means an error can be wrapped at
// every level of a call stack without the message degenerating into a
// stuttering mess when it is finally printed.
package curated
