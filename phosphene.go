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

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"

	_ "image/jpeg"

	"github.com/kelyard/phosphene/digest"
	"github.com/kelyard/phosphene/glow"
	"github.com/kelyard/phosphene/gui"
	"github.com/kelyard/phosphene/gui/sdlglow"
	"github.com/kelyard/phosphene/logger"
	"github.com/kelyard/phosphene/modalflag"
	"github.com/kelyard/phosphene/performance"
	"github.com/kelyard/phosphene/screen"
	"github.com/kelyard/phosphene/statsview"
	"github.com/kelyard/phosphene/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with the reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "FILTER", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "FILTER":
		err = filter(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadScreen decodes the image at the supplied path and plots it to a new
// screen instance. the screen is created at the image's native resolution.
func loadScreen(path string) (*screen.Screen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	scr := screen.NewScreen(b.Dx(), b.Dy())
	scr.LoadImage(img)

	return scr, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	noGlow := md.AddBool("noglow", false, "start with the glow filter disabled")
	fullScreen := md.AddBool("fullscreen", false, "start in full screen mode")
	fpsOverlay := md.AddBool("fps", false, "show the FPS overlay")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("image file required for %s mode", md)
	case 1:
		scr, err := loadScreen(md.GetArg(0))
		if err != nil {
			return err
		}

		// the gui sends on this channel when the user closes the window
		quit := make(chan bool, 1)

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			return sdlglow.NewSdlGlow(quit)
		}

		// wait for creator result
		var scrGui gui.GUI
		select {
		case g := <-sync.creation:
			scrGui = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		err = scrGui.SetFeature(gui.ReqSetScreen, scr)
		if err != nil {
			return err
		}

		if *noGlow {
			err = scrGui.SetFeature(gui.ReqGlow, false)
			if err != nil {
				return err
			}
		}

		if *fullScreen {
			err = scrGui.SetFeature(gui.ReqFullScreen, true)
			if err != nil {
				return err
			}
		}

		if *fpsOverlay {
			err = scrGui.SetFeature(gui.ReqFPSOverlay, true)
			if err != nil {
				return err
			}
		}

		err = scrGui.SetFeature(gui.ReqSetVisibility, true)
		if err != nil {
			return err
		}

		// wait for the user to close the window
		<-quit

		// save preferences before finishing
		return scrGui.SetFeature(gui.ReqEnd)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func filter(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 0.0, "output scale. zero means the saved preference value")
	printDigest := md.AddBool("digest", false, "print the fingerprint of the rendered frame")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("input and output image files required for %s mode", md)
	}

	scr, err := loadScreen(md.GetArg(0))
	if err != nil {
		return err
	}

	s := float32(*scale)
	if s <= 0.0 {
		prefs, err := glow.NewPreferences()
		if err != nil {
			return err
		}
		s = float32(prefs.Scale.Get().(float64))
	}

	frm := scr.Frame()
	img := glow.Render(frm, frm.Geometry(s))

	if *printDigest {
		dig := digest.NewVideo()
		err = dig.NewFrame(img)
		if err != nil {
			return err
		}
		md.Output.Write([]byte(fmt.Sprintf("%s\n", dig.Hash())))
	}

	f, err := os.Create(md.GetArg(1))
	if err != nil {
		return err
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 3.0, "output scale used during the measurement")
	duration := md.AddString("duration", "5s", "run duration (with an additional warm-up lag)")
	profile := md.AddString("profile", "none", "run through the pprof profiler: CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "run the statistics server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			return fmt.Errorf("statsview is not available in this build")
		}
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("image file required for %s mode", md)
	}

	scr, err := loadScreen(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, scr, float32(*scale), *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display the source code revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.Output.Write([]byte(fmt.Sprintf("%s (%s)\n", version.ApplicationName, version.Version)))
	if *revision {
		md.Output.Write([]byte(fmt.Sprintf("%s\n", version.Revision)))
	}

	return nil
}
