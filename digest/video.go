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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/kelyard/phosphene/curated"
)

// sentinal error returned by NewFrame().
const NoFrame = "digest: %v"

// Video computes a chained fingerprint of rendered frames. The fingerprint
// of each frame covers the value of the previous fingerprint, so the hash
// after N frames identifies the entire sequence.
type Video struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames folded into the fingerprint since
// the last reset.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame folds a rendered frame into the fingerprint.
func (dig *Video) NewFrame(img *image.RGBA) error {
	if img == nil {
		return curated.Errorf(NoFrame, "nil image")
	}

	// the previous fingerprint sits at the head of the hashed data,
	// chaining the frames together
	l := len(dig.digest) + len(img.Pix)
	if len(dig.buffer) != l {
		dig.buffer = make([]byte, l)
	}
	copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[len(dig.digest):], img.Pix)

	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum++

	return nil
}
