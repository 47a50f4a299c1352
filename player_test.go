package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
)

func TestSynthClickLength(t *testing.T) {
	format := beep.Format{SampleRate: SYNTH_RATE, NumChannels: 2, Precision: 2}
	for _, freq := range []int{ACCENT_FREQ, TICK_FREQ} {
		buf, err := bufferize(format, nil, freq)
		if err != nil {
			t.Fatalf("bufferize %dhz: %v", freq, err)
		}
		if want := format.SampleRate.N(CLICK_LEN); buf.Len() != want {
			t.Errorf("%dhz click is %d samples, want %d", freq, buf.Len(), want)
		}
	}
}

// A click that never loaded degrades to silence, not a panic.
func TestPlayWithoutBuffersIsSilent(t *testing.T) {
	p := &beepPlayer{}
	p.PlayAccent()
	p.PlaySubdivision()
}

func TestReadSampleMissingFile(t *testing.T) {
	if _, _, err := readSample(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("reading a missing sample succeeded")
	}
}

func TestReadSampleRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.bin")
	if err := os.WriteFile(path, []byte("not a wav"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readSample(path); err == nil {
		t.Fatal("decoding garbage succeeded")
	}
}
