package main

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// beepPlayer plays one short click per trigger. Every trigger replays a
// pre-rendered buffer from the start, clearing whatever was still
// sounding, so a fast tempo never stacks streams.
type beepPlayer struct {
	format beep.Format
	accent *beep.Buffer
	tick   *beep.Buffer
	gain   float64
}

// NewBeepPlayer prepares the accent and subdivision clicks and opens the
// speaker. Empty paths fall back to synthesized sine clicks. Volume is a
// 0..1 factor; Gain multiplies by 1+Gain, so it maps to -1..0.
func NewBeepPlayer(accentPath, tickPath string, volume float64) (*beepPlayer, error) {
	p := &beepPlayer{
		format: beep.Format{
			SampleRate:  SYNTH_RATE,
			NumChannels: 2,
			Precision:   2,
		},
		gain: volume - 1,
	}

	// The first sample read from disk decides the playback format, like
	// the synthesized fallback does otherwise. Both clicks go through one
	// speaker, so they have to share it.
	var accentStream, tickStream beep.StreamSeekCloser
	if accentPath != "" {
		s, format, err := readSample(accentPath)
		if err != nil {
			return nil, err
		}
		accentStream, p.format = s, format
	}
	if tickPath != "" {
		s, format, err := readSample(tickPath)
		if err != nil {
			return nil, err
		}
		tickStream = s
		if accentStream == nil {
			p.format = format
		}
	}

	var err error
	if p.accent, err = bufferize(p.format, accentStream, ACCENT_FREQ); err != nil {
		return nil, err
	}
	if p.tick, err = bufferize(p.format, tickStream, TICK_FREQ); err != nil {
		return nil, err
	}

	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "initializing speaker")
	}
	return p, nil
}

func (p *beepPlayer) PlayAccent()      { p.play(p.accent) }
func (p *beepPlayer) PlaySubdivision() { p.play(p.tick) }

func (p *beepPlayer) play(buffer *beep.Buffer) {
	if buffer == nil {
		return
	}
	speaker.Clear()
	speaker.Play(&effects.Gain{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Gain:     p.gain,
	})
}

// Close silences and releases the speaker.
func (p *beepPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}

// bufferize renders the decoded sample, or without one a CLICK_LEN sine
// click at freq, into a replayable buffer.
func bufferize(format beep.Format, s beep.StreamSeekCloser, freq int) (*beep.Buffer, error) {
	buffer := beep.NewBuffer(format)
	if s != nil {
		buffer.Append(s)
		s.Close()
		return buffer, nil
	}
	tone, err := generators.SinTone(format.SampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "synthesizing %dhz click", freq)
	}
	buffer.Append(beep.Take(format.SampleRate.N(CLICK_LEN), tone))
	return buffer, nil
}

func readSample(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "opening sample %s", path)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "decoding sample %s", path)
	}
	return streamer, format, nil
}

// nopPlayer mutes the metronome. The scheduler keeps its cadence and the
// display keeps moving, nothing reaches the speaker.
type nopPlayer struct{}

func (nopPlayer) PlayAccent()      {}
func (nopPlayer) PlaySubdivision() {}
