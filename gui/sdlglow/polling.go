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

package sdlglow

import (
	"github.com/kelyard/phosphene/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop sleeps for at the end
// of each service() call.
const (
	activeSleepPeriod = 10
	idleSleepPeriod   = 500
)

type polling struct {
	img *SdlGlow

	// wake is used to preempt the timeout when we want to communicate
	// between iterations of the service loop. for example, closing imgui
	// windows might feel laggy without it.
	wake bool

	// SetFeature() and GetFeature() hand off requests to the feature
	// channels for servicing on the gui thread.
	featureSet     chan featureRequest
	featureSetErr  chan error
	featureGet     chan featureRequest
	featureGetData chan gui.FeatureReqData
	featureGetErr  chan error
}

func newPolling(img *SdlGlow) *polling {
	pol := &polling{
		img:            img,
		featureSet:     make(chan featureRequest, 1),
		featureSetErr:  make(chan error, 1),
		featureGet:     make(chan featureRequest, 1),
		featureGetData: make(chan gui.FeatureReqData, 1),
		featureGetErr:  make(chan error, 1),
	}
	return pol
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

func (pol *polling) wait() sdl.Event {
	select {
	case r := <-pol.featureSet:
		pol.img.serviceSetFeature(r)
	case r := <-pol.featureGet:
		pol.img.serviceGetFeature(r)
	default:
	}

	var timeout int

	if pol.wake {
		pol.wake = false
	} else {
		// once a screen has been attached the window is animating and we
		// poll frequently. before that there is nothing to present and the
		// loop can idle.
		if pol.img.scr != nil {
			timeout = activeSleepPeriod
		} else {
			timeout = idleSleepPeriod
		}
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	return sdl.WaitEventTimeout(timeout)
}
