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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/kelyard/phosphene/prefs"
	"github.com/kelyard/phosphene/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool

	// zero value
	test.Equate(t, b.Get().(bool), false)

	test.ExpectedSuccess(t, b.Set(true))
	test.Equate(t, b.Get().(bool), true)
	test.Equate(t, b.String(), "true")

	// string conversion. anything other than "true" is false
	test.ExpectedSuccess(t, b.Set("TRUE"))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectedSuccess(t, b.Set("not a bool"))
	test.Equate(t, b.Get().(bool), false)

	// unsupported type
	test.ExpectedFailure(t, b.Set(1.0))
}

func TestFloat(t *testing.T) {
	var f prefs.Float

	test.Equate(t, f.Get().(float64), 0)

	test.ExpectedSuccess(t, f.Set(2.5))
	test.Equate(t, f.Get().(float64), 2.5)

	test.ExpectedSuccess(t, f.Set("3.5"))
	test.Equate(t, f.Get().(float64), 3.5)

	test.ExpectedFailure(t, f.Set("not a float"))
}

func TestHookPost(t *testing.T) {
	var b prefs.Bool

	hooked := false
	b.SetHookPost(func(v prefs.Value) error {
		hooked = v.(bool)
		return nil
	})

	test.ExpectedSuccess(t, b.Set(true))
	test.ExpectedSuccess(t, hooked)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.prefs")

	dsk, err := prefs.NewDisk(pth)
	test.ExpectedSuccess(t, err)

	var b prefs.Bool
	var f prefs.Float
	var s prefs.String

	test.ExpectedSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectedSuccess(t, dsk.Add("test.float", &f))
	test.ExpectedSuccess(t, dsk.Add("test.string", &s))

	// duplicate keys are rejected
	test.ExpectedFailure(t, dsk.Add("test.bool", &b))

	test.ExpectedSuccess(t, b.Set(true))
	test.ExpectedSuccess(t, f.Set(2.5))
	test.ExpectedSuccess(t, s.Set("glow"))
	test.ExpectedSuccess(t, dsk.Save())

	// reset values and reload from disk
	test.ExpectedSuccess(t, b.Reset())
	test.ExpectedSuccess(t, f.Reset())
	test.ExpectedSuccess(t, s.Reset())
	test.Equate(t, b.Get().(bool), false)

	test.ExpectedSuccess(t, dsk.Load())
	test.Equate(t, b.Get().(bool), true)
	test.Equate(t, f.Get().(float64), 2.5)
	test.Equate(t, s.Get().(string), "glow")
}

func TestDiskMissingFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "does-not-exist.prefs")

	dsk, err := prefs.NewDisk(pth)
	test.ExpectedSuccess(t, err)

	var b prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test.bool", &b))

	// loading from a file that does not exist is not an error
	test.ExpectedSuccess(t, dsk.Load())
}
