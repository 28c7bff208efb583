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

package resources_test

import (
	"regexp"
	"testing"

	"github.com/kelyard/phosphene/resources"
	"github.com/kelyard/phosphene/test"
)

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("screenshot")

	// prepend string followed by a date and time stamp
	match, err := regexp.MatchString("^screenshot_[0-9]{8}_[0-9]{6}$", fn)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, match)

	// empty prepend string still produces the stamp
	match, err = regexp.MatchString("^_[0-9]{8}_[0-9]{6}$", resources.UniqueFilename(""))
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, match)
}
