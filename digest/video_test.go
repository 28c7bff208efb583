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

package digest_test

import (
	"image"
	"testing"

	"github.com/kelyard/phosphene/digest"
	"github.com/kelyard/phosphene/test"
)

func TestVideo(t *testing.T) {
	frameA := image.NewRGBA(image.Rect(0, 0, 8, 8))
	frameA.Pix[0] = 255

	frameB := image.NewRGBA(image.Rect(0, 0, 8, 8))
	frameB.Pix[0] = 128

	// identical sequences produce identical hashes
	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectedSuccess(t, a.NewFrame(frameA))
	test.ExpectedSuccess(t, b.NewFrame(frameA))
	test.Equate(t, a.Hash(), b.Hash())
	test.Equate(t, a.FrameNum(), 1)

	// a differing frame produces a differing hash
	test.ExpectedSuccess(t, a.NewFrame(frameA))
	test.ExpectedSuccess(t, b.NewFrame(frameB))
	if a.Hash() == b.Hash() {
		t.Error("hashes are equal despite differing frames")
	}

	// order matters. the same frames in a different order produce a
	// different hash
	c := digest.NewVideo()
	d := digest.NewVideo()
	_ = c.NewFrame(frameA)
	_ = c.NewFrame(frameB)
	_ = d.NewFrame(frameB)
	_ = d.NewFrame(frameA)
	if c.Hash() == d.Hash() {
		t.Error("hashes are equal despite differing frame order")
	}
}

func TestVideoReset(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 8, 8))

	dig := digest.NewVideo()
	empty := dig.Hash()

	test.ExpectedSuccess(t, dig.NewFrame(frame))
	if dig.Hash() == empty {
		t.Error("hash did not change after a new frame")
	}

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), empty)
	test.Equate(t, dig.FrameNum(), 0)
}

func TestVideoNilFrame(t *testing.T) {
	dig := digest.NewVideo()
	test.ExpectedFailure(t, dig.NewFrame(nil))
}
