package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eiannone/keyboard"
)

var (
	// flags
	tempo       = flag.Float64("tempo", DEFAULT_TEMPO, "beats per minute")
	beats       = flag.Int("beats", DEFAULT_BEATS, "beats in each measure")
	subdivision = flag.Int("subdivision", DEFAULT_SUBDIVISION, "ticks per beat")
	accentPath  = flag.String("accent", "", "wav file for the first tick of each measure, synthesized when empty")
	tickPath    = flag.String("tick", "", "wav file for the remaining ticks, synthesized when empty")
	volume      = flag.Float64("volume", 1, "playback volume, 0 to 1")
	mute        = flag.Bool("mute", false, "run silent, display only")
	preset      = flag.String("preset", "", "start from a saved preset")
	save        = flag.String("save", "", "save the given settings under this key and exit")
	remove      = flag.String("delete", "", "delete the preset under this key and exit")
	presets     = flag.Bool("presets", false, "list saved presets and exit")
)

func main() {
	flag.Parse()
	if !ValidTempo(*tempo) {
		log.Fatalf("tempo is not valid, make sure it is between %v and %v", MIN_TEMPO, MAX_TEMPO)
	}
	if !ValidBeats(*beats) {
		log.Fatalf("beats is not valid, make sure it is between %v and %v", MIN_BEATS, MAX_BEATS)
	}
	if !ValidSubdivision(*subdivision) {
		log.Fatalf("subdivision is not valid, make sure it is between %v and %v", MIN_SUBDIVISION, MAX_SUBDIVISION)
	}
	if *volume < 0 || *volume > 1 {
		log.Fatalf("volume is not valid, make sure it is between 0 and 1")
	}

	if *presets {
		list, err := ListPresets()
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(list) == 0 {
			fmt.Println("no presets saved")
			return
		}
		for _, p := range list {
			fmt.Printf("%s: %g bpm, %d beats, %s\n",
				p.Key, p.Tempo, p.TimeSignature, subdivisionName(p.Subdivision))
		}
		return
	}

	if *remove != "" {
		if err := DeletePreset(*remove); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("deleted preset %q\n", *remove)
		return
	}

	if *save != "" {
		p := Preset{Key: *save, Tempo: *tempo, TimeSignature: *beats, Subdivision: *subdivision}
		if err := SavePreset(p); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("saved preset %q\n", *save)
		return
	}

	if *preset != "" {
		p, err := LoadPreset(*preset)
		if err != nil {
			log.Fatalf("%v", err)
		}
		// The preset file is hand editable, so clamp on the way in.
		*tempo = Clamp(p.Tempo, MIN_TEMPO, MAX_TEMPO)
		*beats = ClampInt(p.TimeSignature, MIN_BEATS, MAX_BEATS)
		*subdivision = ClampInt(p.Subdivision, MIN_SUBDIVISION, MAX_SUBDIVISION)
	}

	var player Player = nopPlayer{}
	if !*mute {
		bp, err := NewBeepPlayer(*accentPath, *tickPath, *volume)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer bp.Close()
		player = bp
	}

	keys, err := keyboard.GetKeys(10)
	if err != nil {
		log.Fatalf("opening keyboard: %v", err)
	}
	defer keyboard.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	m := NewMetronome(player)
	m.SetTempo(*tempo)
	m.SetTimeSignature(*beats)
	m.SetSubdivision(*subdivision)

	r := NewRenderer()
	m.OnTick = r.Render

	if r.tty {
		ClearTerminal()
	}
	printControls()
	r.Start()
	defer r.Stop()

	m.Start()
	defer m.Stop()
	r.Render(m.Snapshot())

	for {
		select {
		case ev := <-keys:
			if ev.Err != nil {
				log.Fatalf("reading keyboard: %v", ev.Err)
			}
			if quit := handleKey(m, r, ev); quit {
				return
			}
		case <-sig:
			return
		}
	}
}

// handleKey applies one key press and repaints. Tempo and measure edits
// clamp to the practical ranges; edits on a running metronome take
// effect immediately.
func handleKey(m *Metronome, r *Renderer, ev keyboard.KeyEvent) bool {
	switch {
	case ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC || ev.Rune == 'q':
		return true
	case ev.Key == keyboard.KeySpace || ev.Rune == ' ':
		m.Toggle()
	case ev.Key == keyboard.KeyArrowUp:
		m.SetTempo(Clamp(m.Snapshot().Tempo+1, MIN_TEMPO, MAX_TEMPO))
	case ev.Key == keyboard.KeyArrowDown:
		m.SetTempo(Clamp(m.Snapshot().Tempo-1, MIN_TEMPO, MAX_TEMPO))
	case ev.Key == keyboard.KeyArrowRight:
		m.SetTempo(Clamp(m.Snapshot().Tempo+5, MIN_TEMPO, MAX_TEMPO))
	case ev.Key == keyboard.KeyArrowLeft:
		m.SetTempo(Clamp(m.Snapshot().Tempo-5, MIN_TEMPO, MAX_TEMPO))
	case ev.Rune == 't':
		m.SetTimeSignature(ClampInt(m.Snapshot().TimeSignature+1, MIN_BEATS, MAX_BEATS))
	case ev.Rune == 'T':
		m.SetTimeSignature(ClampInt(m.Snapshot().TimeSignature-1, MIN_BEATS, MAX_BEATS))
	case ev.Rune == 's':
		next := m.Snapshot().Subdivision + 1
		if next > MAX_SUBDIVISION {
			next = MIN_SUBDIVISION
		}
		m.SetSubdivision(next)
	case ev.Rune == 'r':
		m.Shuffle()
	default:
		return false
	}
	r.Render(m.Snapshot())
	return false
}

func printControls() {
	fmt.Println("space play/pause   up/down +-1 bpm   left/right +-5 bpm")
	fmt.Println("t/T beats   s subdivision   r random tempo   q quit")
	fmt.Println()
}
