package main

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func TestHandleKeyToggleAndQuit(t *testing.T) {
	m, _ := newTestMetronome(nil)
	m.SetTempo(120)
	r := &Renderer{}

	if quit := handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeySpace}); quit {
		t.Fatal("space requested quit")
	}
	if !m.Snapshot().Running {
		t.Fatal("space did not start the metronome")
	}

	// Some terminals report space as a rune instead of a key.
	if quit := handleKey(m, r, keyboard.KeyEvent{Rune: ' '}); quit {
		t.Fatal("space rune requested quit")
	}
	if m.Snapshot().Running {
		t.Fatal("space rune did not stop the metronome")
	}

	for _, ev := range []keyboard.KeyEvent{
		{Key: keyboard.KeyEsc},
		{Key: keyboard.KeyCtrlC},
		{Rune: 'q'},
	} {
		if quit := handleKey(m, r, ev); !quit {
			t.Errorf("%+v did not request quit", ev)
		}
	}
}

func TestHandleKeyTempoSteps(t *testing.T) {
	m, _ := newTestMetronome(nil)
	m.SetTempo(120)
	r := &Renderer{}

	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowUp})
	if got := m.Snapshot().Tempo; got != 121 {
		t.Errorf("tempo after up = %g, want 121", got)
	}
	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowRight})
	if got := m.Snapshot().Tempo; got != 126 {
		t.Errorf("tempo after right = %g, want 126", got)
	}
	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowDown})
	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowLeft})
	if got := m.Snapshot().Tempo; got != 120 {
		t.Errorf("tempo after down and left = %g, want 120", got)
	}

	m.SetTempo(MAX_TEMPO)
	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowRight})
	if got := m.Snapshot().Tempo; got != MAX_TEMPO {
		t.Errorf("tempo stepped past the ceiling: %g", got)
	}

	m.SetTempo(MIN_TEMPO)
	handleKey(m, r, keyboard.KeyEvent{Key: keyboard.KeyArrowLeft})
	if got := m.Snapshot().Tempo; got != MIN_TEMPO {
		t.Errorf("tempo stepped past the floor: %g", got)
	}
}

func TestHandleKeyBeatsSteps(t *testing.T) {
	m, _ := newTestMetronome(nil)
	r := &Renderer{}

	handleKey(m, r, keyboard.KeyEvent{Rune: 't'})
	if got := m.Snapshot().TimeSignature; got != 5 {
		t.Errorf("beats after t = %d, want 5", got)
	}
	handleKey(m, r, keyboard.KeyEvent{Rune: 'T'})
	if got := m.Snapshot().TimeSignature; got != 4 {
		t.Errorf("beats after T = %d, want 4", got)
	}

	m.SetTimeSignature(MAX_BEATS)
	handleKey(m, r, keyboard.KeyEvent{Rune: 't'})
	if got := m.Snapshot().TimeSignature; got != MAX_BEATS {
		t.Errorf("beats stepped past the ceiling: %d", got)
	}
}

func TestHandleKeySubdivisionCycle(t *testing.T) {
	m, _ := newTestMetronome(nil)
	r := &Renderer{}

	want := []int{2, 3, 4, 1}
	for _, w := range want {
		handleKey(m, r, keyboard.KeyEvent{Rune: 's'})
		if got := m.Snapshot().Subdivision; got != w {
			t.Fatalf("subdivision = %d, want %d", got, w)
		}
	}
}

func TestHandleKeyShuffle(t *testing.T) {
	m, _ := newTestMetronome(nil)
	r := &Renderer{}

	handleKey(m, r, keyboard.KeyEvent{Rune: 'r'})
	got := m.Snapshot().Tempo
	if got < MIN_TEMPO || got > MAX_TEMPO {
		t.Errorf("shuffled tempo %g outside [%d, %d]", got, MIN_TEMPO, MAX_TEMPO)
	}
}
