// Package audio plays effects and background music for simulation events.
// It degrades to silence when no audio device is available.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// Sink consumes simulation events and turns them into sound.
// A nil *Sink is valid and silent.
type Sink struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	rate    beep.SampleRate
	mixer   *beep.Mixer
	music   *beep.Ctrl
	ready   bool
	speaker bool // Mixer is attached to the device
}

// NewSink creates a sink for the given settings. Call Init before use.
func NewSink(cfg config.AudioConfig) *Sink {
	rate := beep.SampleRate(cfg.SampleRate)
	if cfg.SampleRate <= 0 {
		rate = beep.SampleRate(44100)
	}
	return &Sink{
		cfg:   cfg,
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. A disabled sink returns nil and stays silent.
func (s *Sink) Init() error {
	if s == nil || !s.cfg.Enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}
	speaker.Play(s.mixer)
	s.speaker = true
	s.ready = true
	return nil
}

// Enabled reports whether the sink produces sound.
func (s *Sink) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Handle plays the effects for one step's events.
func (s *Sink) Handle(events []core.Event) {
	if s == nil || len(events) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	s.lock()
	defer s.unlock()

	for _, e := range events {
		switch e.Kind {
		case core.EventMusicStart:
			s.startMusic()
		case core.EventMusicStop:
			if s.music != nil {
				s.music.Paused = true
			}
		default:
			if st := newSound(soundFor(e.Kind), s.rate, s.cfg.MasterVolume); st != nil {
				s.mixer.Add(st)
			}
		}
	}
}

// startMusic resumes the loop, creating it on first use.
func (s *Sink) startMusic() {
	if s.music == nil {
		s.music = &beep.Ctrl{Streamer: newMusic(s.rate, s.cfg.MasterVolume)}
		s.mixer.Add(s.music)
	}
	s.music.Paused = false
}

// MusicPlaying reports whether the background loop is audible.
func (s *Sink) MusicPlaying() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()
	return s.music != nil && !s.music.Paused
}

// Close stops all sounds.
func (s *Sink) Close() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	s.lock()
	if s.music != nil {
		s.music.Paused = true
		s.music = nil
	}
	s.mixer.Clear()
	s.unlock()

	s.ready = false
}

// lock guards the mixer against the device callback.
func (s *Sink) lock() {
	if s.speaker {
		speaker.Lock()
	}
}

func (s *Sink) unlock() {
	if s.speaker {
		speaker.Unlock()
	}
}
