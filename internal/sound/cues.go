// internal/sound/cues.go
package sound

import (
	"log"
	"sync"
	"time"

	"go-grid-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Частоты сигналов, Гц
const (
	leakFreq     = 220
	rejectFreq   = 150
	victoryFreq  = 660
	defeatFreq   = 110
	cueDuration  = 80 * time.Millisecond
	chimeSpacing = 120 * time.Millisecond
)

// Cues plays short sine beeps for game events. Without an audio device it stays silent.
type Cues struct {
	mu          sync.Mutex
	initialized bool
}

func NewCues() *Cues { return &Cues{} }

// Initialize opens the speaker. The game can run without sound, so callers may ignore the error.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Cleanup closes the speaker.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// OnEvent implements event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyReachedDestination:
		c.play(Tone(leakFreq, cueDuration))
	case event.EditRejected:
		c.play(Tone(rejectFreq, cueDuration/2))
	case event.GameOver:
		data, _ := e.Data.(event.GameOverData)
		c.play(Chime(data.Victory))
	}
}

// Subscribe registers the cues for the events that make a sound.
func (c *Cues) Subscribe(d *event.Dispatcher) {
	d.Subscribe(c, event.EnemyReachedDestination, event.EditRejected, event.GameOver)
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized || s == nil {
		return
	}
	speaker.Play(s)
}

// Tone returns a sine beep of the given length, or nil if freq is out of range.
func Tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("sound: тон %.0f Гц: %v", freq, err)
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

// Chime is a three-note cue, rising for a victory and falling for a defeat.
func Chime(victory bool) beep.Streamer {
	base, step := float64(defeatFreq)*3, -float64(defeatFreq)
	if victory {
		base, step = victoryFreq, victoryFreq/4
	}
	notes := make([]beep.Streamer, 0, 5)
	for i := 0; i < 3; i++ {
		if i > 0 {
			notes = append(notes, beep.Silence(sampleRate.N(chimeSpacing-cueDuration)))
		}
		notes = append(notes, Tone(base+float64(i)*step, cueDuration))
	}
	return beep.Seq(notes...)
}
