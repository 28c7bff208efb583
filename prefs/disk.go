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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/logger"
)

// DefaultPrefsFile is the default filename of the main preferences file,
// relative to the resource path.
const DefaultPrefsFile = "phosphene.prefs"

// the first line of a valid prefs file.
const warningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk. Keys are registered
// with the Add() function; Load() and Save() transfer values between the
// registered pref types and the file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to save/load from disk. The key
// must be unique to this instance of Disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: key contains character sequence '%s'", keySep)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key '%s' already registered", key)
	}

	dsk.entries[key] = p
	return nil
}

// String returns all the current preference values as a single string, one
// key per line. Keys are sorted.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// Load preference values from disk. Keys in the file that have not been
// registered with Add() are logged and otherwise ignored. A missing prefs
// file is not an error.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by looking at the first line
	if scanner.Scan() {
		if scanner.Text() != warningBoilerPlate {
			return curated.Errorf("prefs: %s is not a valid prefs file", dsk.path)
		}
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}

		if p, ok := dsk.entries[kv[0]]; ok {
			err = p.Set(kv[1])
			if err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		} else {
			logger.Logf("prefs", "unrecognised key '%s' in %s", kv[0], dsk.path)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", warningBoilerPlate)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	_, err = f.WriteString(dsk.String())
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
