package main

import "time"

// Practical ranges exposed by the UI. The scheduler core accepts values
// outside of them; flags and key handlers are the gatekeepers.
const (
	MIN_TEMPO = 40
	MAX_TEMPO = 208

	MIN_BEATS = 2
	MAX_BEATS = 16

	MIN_SUBDIVISION = 1
	MAX_SUBDIVISION = 4
)

const (
	DEFAULT_TEMPO       = 120
	DEFAULT_BEATS       = 4
	DEFAULT_SUBDIVISION = 1
)

// Voicing of the synthesized clicks used when no sample files are given.
const (
	ACCENT_FREQ = 1760 // Hz, first tick of every beat
	TICK_FREQ   = 880  // Hz, remaining subdivision ticks
	SYNTH_RATE  = 44100
	CLICK_LEN   = 30 * time.Millisecond
)

var SUBDIVISION_NAMES = map[int]string{
	1: "quarter",
	2: "eighth",
	3: "triplet",
	4: "sixteenth",
}
