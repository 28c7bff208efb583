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

// Package performance measures the speed of the CPU implementation of the
// glow filter, optionally through the pprof instrumentation.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/screen"
)

// Check the performance of the CPU glow filter against the supplied screen.
//
// The filter will run repeatedly for the specified duration and will create
// a cpu and/or memory profile as defined by the Profile argument.
func Check(output io.Writer, profile Profile, scr *screen.Screen, scale float32, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	frm := scr.Frame()
	geom := frm.Geometry(scale)

	// one render outside the measurement period. the first frame pays for
	// cache warming and worker startup
	_ = glow.Render(frm, geom)

	numFrames := 0

	runner := func() error {
		done := time.After(dur)
		for {
			select {
			case <-done:
				return nil
			default:
			}
			_ = glow.Render(frm, geom)
			numFrames++
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	fps := float64(numFrames) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, dur.Seconds())))

	return nil
}
