package main

import (
	"math/rand"
	"sync"
	"time"
)

// Player receives one trigger per tick. Implementations own playback and
// sample loading; a sound that is missing or failed to load must degrade
// to silence instead of surfacing an error here.
type Player interface {
	PlayAccent()
	PlaySubdivision()
}

// Snapshot is a read-only copy of the metronome state. The renderer and
// other observers only ever see snapshots, never the live fields.
type Snapshot struct {
	Tempo         float64
	TimeSignature int
	Subdivision   int
	Running       bool
	TickCount     int
	BeatIndex     int
}

// Metronome turns tempo parameters into a stream of accent and
// subdivision triggers and keeps track of the position inside the
// measure. One mutex serializes ticks, mutations, and dispatch, and the
// armed timer is a single slot that is only ever replaced as a whole:
// cancel the old one, install the new one.
type Metronome struct {
	mu    sync.Mutex
	clock Clock

	player Player

	// OnTick, when set before Start, receives a snapshot after every
	// completed tick. It runs on the timer goroutine with the metronome
	// locked, so it must not call back into the metronome.
	OnTick func(Snapshot)

	tempo         float64
	timeSignature int
	subdivision   int

	running   bool
	tickCount int

	timer Timer
	gen   uint64
}

func NewMetronome(player Player) *Metronome {
	return &Metronome{
		clock:         systemClock{},
		player:        player,
		tempo:         DEFAULT_TEMPO,
		timeSignature: DEFAULT_BEATS,
		subdivision:   DEFAULT_SUBDIVISION,
	}
}

// Interval is the time between two ticks: 60/(tempo*subdivision) seconds.
func (m *Metronome) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval()
}

func (m *Metronome) interval() time.Duration {
	return time.Duration(60.0 / (m.tempo * float64(m.subdivision)) * float64(time.Second))
}

// SetTempo stores the new tempo and, while running, immediately rebuilds
// the armed timer with the new interval instead of waiting for the next
// tick to pick it up.
func (m *Metronome) SetTempo(bpm float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tempo = bpm
	m.rearm()
}

// SetTimeSignature stores the new number of beats per measure. The tick
// count is left alone even when it now points past the shorter measure;
// the next tick wraps it (see DESIGN.md).
func (m *Metronome) SetTimeSignature(beats int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeSignature = beats
	m.rearm()
}

// SetSubdivision stores the new number of ticks per beat and, while
// running, rebuilds the timer since the tick interval depends on it.
func (m *Metronome) SetSubdivision(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subdivision = n
	m.rearm()
}

// Shuffle applies a random whole-number tempo from the practical range.
// It goes through SetTempo, so a running metronome rearms exactly as it
// would for any other tempo change.
func (m *Metronome) Shuffle() {
	m.SetTempo(float64(MIN_TEMPO + rand.Intn(MAX_TEMPO-MIN_TEMPO+1)))
}

// Start arms the metronome at the beginning of a measure. The first tick
// fires one full interval later. No-op while already running.
func (m *Metronome) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.start()
}

// Stop cancels the armed timer; once it returns, no tick from that timer
// is observed anymore. The tick count keeps its value until the next
// Start. No-op while already stopped.
func (m *Metronome) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop()
}

// Toggle starts a stopped metronome and stops a running one.
func (m *Metronome) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		m.stop()
	} else {
		m.start()
	}
}

// Snapshot returns a copy of the observable state.
func (m *Metronome) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Metronome) start() {
	if m.running {
		return
	}
	m.running = true
	m.tickCount = 0
	m.arm()
}

func (m *Metronome) stop() {
	if !m.running {
		return
	}
	m.running = false
	m.cancel()
}

// cancel invalidates the armed timer. A callback that fired before the
// cancellation carries the old generation and is discarded once it
// reaches the lock.
func (m *Metronome) cancel() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// arm installs a fresh timer for the current interval, superseding
// whatever was armed before. Nothing is armed while the parameters
// cannot produce a positive interval; a later valid mutation rearms.
func (m *Metronome) arm() {
	m.cancel()
	if m.tempo <= 0 || m.subdivision < 1 {
		return
	}
	gen := m.gen
	m.timer = m.clock.AfterFunc(m.interval(), func() { m.fire(gen) })
}

// rearm rebuilds the timer with a freshly computed interval and leaves
// the tick count alone. No-op while stopped.
func (m *Metronome) rearm() {
	if !m.running {
		return
	}
	m.arm()
}

// fire handles one tick: classify with the pre-increment count, trigger
// the player, advance, wrap at the measure boundary, then hand the
// renderer a snapshot with the recomputed beat index. The first tick of
// every measure is an accent.
func (m *Metronome) fire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	if m.player != nil {
		if m.tickCount%m.subdivision == 0 {
			m.player.PlayAccent()
		} else {
			m.player.PlaySubdivision()
		}
	}
	m.tickCount++
	if m.tickCount >= m.subdivision*m.timeSignature {
		m.tickCount = 0
	}
	m.arm()
	if m.OnTick != nil {
		m.OnTick(m.snapshot())
	}
}

func (m *Metronome) snapshot() Snapshot {
	return Snapshot{
		Tempo:         m.tempo,
		TimeSignature: m.timeSignature,
		Subdivision:   m.subdivision,
		Running:       m.running,
		TickCount:     m.tickCount,
		BeatIndex:     m.beatIndex(),
	}
}

// beatIndex derives the highlighted beat from the tick count.
func (m *Metronome) beatIndex() int {
	if m.subdivision < 1 || m.timeSignature < 1 {
		return 0
	}
	return (m.tickCount / m.subdivision) % m.timeSignature
}
