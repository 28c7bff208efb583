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

package resources

import (
	"fmt"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Note that the function does not
// test for this.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS
//
// The filename has no extension.
func UniqueFilename(prepend string) string {
	n := time.Now()
	return fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend,
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
}
