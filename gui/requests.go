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

package gui

// FeatureReq is used to request the setting of a gui attribute, eg. toggling
// the glow filter.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// attach the screen that the GUI should display.
	ReqSetScreen FeatureReq = "ReqSetScreen" // *screen.Screen

	// whether the gui window is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// enable or disable the glow filter. the setting is not persisted, use
	// the preferences window for that.
	ReqGlow FeatureReq = "ReqGlow" // bool

	// whether to show the FPS overlay.
	ReqFPSOverlay FeatureReq = "ReqFPSOverlay" // bool

	// save the next rendered frame to the supplied path.
	ReqScreenshot FeatureReq = "ReqScreenshot" // string

	// open or close the preferences window.
	ReqPrefsWindow FeatureReq = "ReqPrefsWindow" // bool

	// notify the GUI that the application is ending.
	ReqEnd FeatureReq = "ReqEnd" // nil
)
