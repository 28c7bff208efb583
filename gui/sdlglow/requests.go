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
	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/gui"
	"github.com/kelyard/phosphene/logger"
	"github.com/kelyard/phosphene/screen"
)

// featureRequest is used to pass a request and its arguments to the service
// loop.
type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface. Waits for the request to be
// serviced on the gui thread.
func (img *SdlGlow) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	img.polling.alert()
	return <-img.polling.featureSetErr
}

// SetFeatureNoError implements gui.GUI interface. Does not wait for the
// request to be serviced. Any error is logged rather than returned.
func (img *SdlGlow) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	img.polling.alert()
	go func() {
		err := <-img.polling.featureSetErr
		if err != nil {
			logger.Logf("sdlglow", "%v", err)
		}
	}()
}

// GetFeature implements gui.GUI interface.
func (img *SdlGlow) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	img.polling.featureGet <- featureRequest{request: request}
	img.polling.alert()
	return <-img.polling.featureGetData, <-img.polling.featureGetErr
}

// serviceSetFeature is run from the service loop.
//
// lazy (but clear) handling of type assertion errors with recover().
func (img *SdlGlow) serviceSetFeature(request featureRequest) {
	defer func() {
		if r := recover(); r != nil {
			img.polling.featureSetErr <- curated.Errorf("sdlglow: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetScreen:
		img.scr = request.args[0].(*screen.Screen)
		img.playScr.setScreen(img.scr)

	case gui.ReqSetVisibility:
		if request.args[0].(bool) {
			img.plt.window.Show()
		} else {
			img.plt.window.Hide()
		}

	case gui.ReqFullScreen:
		img.fullScreen = request.args[0].(bool)
		img.plt.setFullScreen(img.fullScreen)

	case gui.ReqGlow:
		err = img.prefs.Enabled.Set(request.args[0].(bool))

	case gui.ReqFPSOverlay:
		img.playScr.fpsOpen = request.args[0].(bool)

	case gui.ReqScreenshot:
		img.rnd.scheduleScreenshot(request.args[0].(string))

	case gui.ReqPrefsWindow:
		img.winPrefs.open = request.args[0].(bool)

	case gui.ReqEnd:
		img.end()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	img.polling.featureSetErr <- err
}

// serviceGetFeature is run from the service loop.
func (img *SdlGlow) serviceGetFeature(request featureRequest) {
	switch request.request {
	case gui.ReqGlow:
		img.polling.featureGetData <- img.prefs.Enabled.Get().(bool)
		img.polling.featureGetErr <- nil

	case gui.ReqFullScreen:
		img.polling.featureGetData <- img.fullScreen
		img.polling.featureGetErr <- nil

	case gui.ReqFPSOverlay:
		img.polling.featureGetData <- img.playScr.fpsOpen
		img.polling.featureGetErr <- nil

	default:
		img.polling.featureGetData <- nil
		img.polling.featureGetErr <- curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}
}
