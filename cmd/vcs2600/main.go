// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/retrocore/vcs2600/hardware/cartridge"
	"github.com/retrocore/vcs2600/hardware/clocks"
	"github.com/retrocore/vcs2600/hardware/memory/bus"
	"github.com/retrocore/vcs2600/hardware/vcs"
	"github.com/retrocore/vcs2600/internal/logger"
	"github.com/retrocore/vcs2600/platform/memviz"
	"github.com/retrocore/vcs2600/platform/sdlplatform"
	"github.com/retrocore/vcs2600/platform/statsdash"
	"github.com/retrocore/vcs2600/platform/termplatform"
	"github.com/retrocore/vcs2600/platform/wavcapture"
)

// clockRates maps the -tv flag's accepted values to a CPU clock rate in
// megahertz, following the hardware/clocks table.
var clockRates = map[string]float64{
	"NTSC":  clocks.NTSC,
	"PAL":   clocks.PAL,
	"PAL_M": clocks.PAL_M,
	"SECAM": clocks.SECAM,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flgs := flag.NewFlagSet("vcs2600", flag.ContinueOnError)
	tv := flgs.String("tv", "NTSC", fmt.Sprintf("television standard: %s", standardsList()))
	headless := flgs.Bool("headless", false, "run without an SDL window, using the raw terminal for input")
	wavPath := flgs.String("wav", "", "capture audio to this WAV file instead of (or as well as) playing it live")
	dashAddr := flgs.String("dashboard", "", "serve a live runtime dashboard at this address, e.g. localhost:18066")
	memvizPath := flgs.String("memviz", "", "on exit, dump a Graphviz rendering of the console's object graph here")
	scale := flgs.Int("scale", 3, "window scale factor (headless mode ignores this)")
	samplingRate := flgs.Int("samplerate", 44100, "host audio sample rate")
	echoLog := flgs.Bool("log", false, "echo the diagnostic log to stderr on exit")

	if err := flgs.Parse(args); err != nil {
		return 2
	}
	if flgs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vcs2600 [flags] <rom-file>")
		return 2
	}

	rate, ok := clockRates[strings.ToUpper(*tv)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown television standard %q: want one of %s\n", *tv, standardsList())
		return 2
	}

	if *echoLog {
		defer logger.Write(os.Stderr)
	}

	cart, err := cartridge.Load(flgs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
		return 1
	}

	var input bus.InputSource
	var frames bus.FrameSink
	var term *termplatform.Terminal
	var window *sdlplatform.Window

	if *headless {
		term, err = termplatform.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
			return 1
		}
		defer term.Close()
		input = term
	} else {
		window, err = sdlplatform.New(int32(*scale), int32(*samplingRate))
		if err != nil {
			fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
			return 1
		}
		defer window.Close()
		input = window
		frames = window
	}

	v := vcs.New(cart, rate*1e6, float64(*samplingRate), input)
	v.TIA.FrameSink = frames

	if *wavPath != "" {
		capture, err := wavcapture.New(*wavPath, *samplingRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
			return 1
		}
		defer capture.Close()
		if window != nil {
			v.TIA.AudioSink = teeAudio{a: window, b: capture}
		} else {
			v.TIA.AudioSink = capture
		}
	} else if window != nil {
		v.TIA.AudioSink = window
	}

	if *dashAddr != "" {
		dash := statsdash.New(*dashAddr)
		dash.Start()
		defer dash.Stop()
		fmt.Fprintf(os.Stderr, "runtime dashboard: %s\n", dash)
	}

	if *memvizPath != "" {
		defer func() {
			if err := memviz.Dump(*memvizPath, v); err != nil {
				fmt.Fprintf(os.Stderr, "vcs2600: memviz: %s\n", err)
			}
		}()
	}

	if err := v.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
		return 1
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)

	cont := func() bool {
		select {
		case <-interrupted:
			return false
		default:
		}
		if term != nil {
			return !term.Quit()
		}
		return window.PollEvents()
	}

	if err := v.Run(cont); err != nil {
		fmt.Fprintf(os.Stderr, "vcs2600: %s\n", err)
		return 1
	}

	return 0
}

func standardsList() string {
	list := make([]string, 0, len(clockRates))
	for k := range clockRates {
		list = append(list, k)
	}
	return strings.Join(list, ", ")
}

// teeAudio fans a single audio stream out to two sinks (e.g. the live
// SDL device and a WAV capture file running at the same time).
type teeAudio struct {
	a, b bus.AudioSink
}

func (t teeAudio) QueueAudio(left, right []uint8) {
	t.a.QueueAudio(left, right)
	t.b.QueueAudio(left, right)
}
