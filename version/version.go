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

// Package version records the version number of the application and the
// revision of the source tree it was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Phosphene"

// if number is empty then the project was not built using the makefile.
var number string

// Revision contains the vcs revision. If the source has been modified but
// has not been committed then the Revision string is suffixed with "+dirty".
var Revision string

// Version contains the current version number of the project.
//
// If the version string is "unreleased" then the project has been built
// manually (ie. not with the makefile). If the version string is "local"
// then there is no version number and no vcs information at all.
var Version string

func init() {
	revision := "no revision information"
	dirty := false

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				dirty = v.Value == "true"
			}
		}
	}

	Revision = revision
	if dirty {
		Revision = fmt.Sprintf("%s+dirty", Revision)
	}

	if number == "" {
		if ok {
			Version = "unreleased"
		} else {
			Version = "local"
		}
	} else {
		Version = number
	}
}
