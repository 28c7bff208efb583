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

// Package digest produces fingerprints of rendered frames. Fingerprints are
// chained so a single hash is enough to say whether two sequences of frames
// are identical. Useful for regression testing the filter.
package digest

// Digest implementations compute a cumulative hash of some stream of data.
type Digest interface {
	// Hash returns a string representation of the current fingerprint
	Hash() string

	// ResetDigest resets the fingerprint to its initial value
	ResetDigest()
}
