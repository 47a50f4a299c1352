package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// Renderer repaints one status frame in place on every tick. Without a
// terminal on stdout it stays quiet instead of flooding piped output.
type Renderer struct {
	writer *uilive.Writer
	tty    bool
}

func NewRenderer() *Renderer {
	r := &Renderer{tty: isatty.IsTerminal(os.Stdout.Fd())}
	if r.tty {
		r.writer = uilive.New()
	}
	return r
}

func (r *Renderer) Start() {
	if r.writer != nil {
		r.writer.Start()
	}
}

// Stop flushes the last frame and ends the repaint loop.
func (r *Renderer) Stop() {
	if r.writer != nil {
		r.writer.Stop()
	}
}

// Render buffers one frame. It is called from the metronome's timer
// goroutine; uilive flushes on its own schedule.
func (r *Renderer) Render(s Snapshot) {
	if r.writer == nil {
		return
	}
	fmt.Fprint(r.writer, formatFrame(s))
}

// formatFrame lays out the two line frame, the current beat bracketed:
//
//	120 bpm   4 beats   quarter   playing
//	[1]  2   3   4
func formatFrame(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g bpm   %d beats   %s   %s\n",
		s.Tempo, s.TimeSignature, subdivisionName(s.Subdivision), stateWord(s.Running))
	for i := 0; i < s.TimeSignature; i++ {
		if i == s.BeatIndex {
			fmt.Fprintf(&b, "[%d] ", i+1)
		} else {
			fmt.Fprintf(&b, " %d  ", i+1)
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func stateWord(running bool) string {
	if running {
		return "playing"
	}
	return "stopped"
}

func subdivisionName(n int) string {
	if name, ok := SUBDIVISION_NAMES[n]; ok {
		return name
	}
	return fmt.Sprintf("%d per beat", n)
}
