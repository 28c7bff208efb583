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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/kelyard/phosphene/gui/sdlglow/framebuffer"
)

// indexes into the glowSequencer's framebuffer sequence.
const (
	glowProcessIdx = iota
	numGlowTextures
)

// glowSequencer runs the glow shader against the screen texture before
// presentation.
type glowSequencer struct {
	img *SdlGlow
	seq *framebuffer.Sequence

	glowShader         shaderProgram
	colorShader        shaderProgram
	colorShaderFlipped shaderProgram
}

func newGlowSequencer(img *SdlGlow) *glowSequencer {
	return &glowSequencer{
		img:                img,
		seq:                framebuffer.NewSequence(numGlowTextures),
		glowShader:         newGlowShader(),
		colorShader:        newColorShader(false),
		colorShaderFlipped: newColorShader(true),
	}
}

func (sh *glowSequencer) destroy() {
	sh.seq.Destroy()
	sh.glowShader.destroy()
	sh.colorShader.destroy()
	sh.colorShaderFlipped.destroy()
}

// process the screen texture, applying the glow filter if it is enabled, and
// select the shader that will present the result.
//
// if forceProcess is true the off-screen pass happens even when the filter
// is disabled. used when a screenshot of the presented image is wanted.
func (sh *glowSequencer) process(env shaderEnvironment, enabled bool, forceProcess bool, scale float32, background [3]float32) {
	sh.seq.Setup(env.width, env.height)

	if enabled {
		// the filter works from the screen texture into an off-screen
		// framebuffer texture
		env.useInternalProj = true
		env.srcTextureID = sh.seq.Process(glowProcessIdx, func() {
			sh.glowShader.(*glowShader).setAttributesArgs(env, scale, background)
			env.draw()
		})

		// present the processed texture. the framebuffer texture is
		// y-inverted with respect to the screen texture
		env.useInternalProj = false
		sh.colorShaderFlipped.setAttributes(env)
		return
	}

	if forceProcess {
		env.useInternalProj = true
		env.srcTextureID = sh.seq.Process(glowProcessIdx, func() {
			sh.colorShader.setAttributes(env)
			env.draw()
		})
		env.useInternalProj = false
		sh.colorShaderFlipped.setAttributes(env)
		return
	}

	// filter disabled. present the screen texture as it is
	sh.colorShader.setAttributes(env)
}

type playscrShader struct {
	img  *SdlGlow
	glow *glowSequencer

	// path of a pending screenshot request. empty when no screenshot is
	// wanted. only accessed from the gui thread
	screenshotPath string
}

func newPlayscrShader(img *SdlGlow) shaderProgram {
	return &playscrShader{
		img:  img,
		glow: newGlowSequencer(img),
	}
}

func (sh *playscrShader) destroy() {
	sh.glow.destroy()
}

func (sh *playscrShader) scheduleScreenshot(path string) {
	sh.screenshotPath = path
}

func (sh *playscrShader) setAttributes(env shaderEnvironment) {
	if sh.img.scr == nil {
		return
	}

	env.width = int32(sh.img.playScr.scaledWidth())
	env.height = int32(sh.img.playScr.scaledHeight())
	env.internalProj = env.presentationProj

	// set viewport and scissor so that the quad fills the off-screen
	// framebuffer exactly
	gl.Viewport(int32(-sh.img.playScr.imagePosMin.X),
		int32(-sh.img.playScr.imagePosMin.Y),
		env.width+(int32(sh.img.playScr.imagePosMin.X*2)),
		env.height+(int32(sh.img.playScr.imagePosMin.Y*2)),
	)
	gl.Scissor(int32(-sh.img.playScr.imagePosMin.X),
		int32(-sh.img.playScr.imagePosMin.Y),
		env.width+(int32(sh.img.playScr.imagePosMin.X*2)),
		env.height+(int32(sh.img.playScr.imagePosMin.Y*2)),
	)

	enabled := sh.img.prefs.Enabled.Get().(bool)

	bg := sh.img.scr.Background()
	background := [3]float32{bg.R, bg.G, bg.B}

	sh.glow.process(env, enabled, sh.screenshotPath != "", sh.img.playScr.scaling, background)

	if sh.screenshotPath != "" {
		sh.glow.seq.SaveJPEG(glowProcessIdx, sh.screenshotPath, "screenshot")
		sh.screenshotPath = ""
	}
}
