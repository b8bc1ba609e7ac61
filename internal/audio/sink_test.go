package audio

import (
	"testing"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// offlineSink is ready to mix without opening a device.
func offlineSink() *Sink {
	s := NewSink(config.AudioConfig{Enabled: true, MasterVolume: 0.5, SampleRate: 44100})
	s.ready = true
	return s
}

func TestSinkNilIsSilent(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("nil sink panicked: %v", r)
		}
	}()

	var s *Sink
	if err := s.Init(); err != nil {
		t.Errorf("Init() = %v", err)
	}
	s.Handle([]core.Event{{Kind: core.EventStarCollected}})
	if s.Enabled() || s.MusicPlaying() {
		t.Error("nil sink reports sound")
	}
	s.Close()
}

func TestSinkDisabled(t *testing.T) {
	s := NewSink(config.AudioConfig{Enabled: false, SampleRate: 44100})

	if err := s.Init(); err != nil {
		t.Fatalf("Init() on disabled sink = %v", err)
	}
	if s.Enabled() {
		t.Error("disabled sink should stay silent")
	}

	s.Handle([]core.Event{{Kind: core.EventTeleported}, {Kind: core.EventMusicStart}})
	if s.mixer.Len() != 0 {
		t.Errorf("disabled sink queued %d streamers", s.mixer.Len())
	}
}

func TestSinkQueuesEffects(t *testing.T) {
	s := offlineSink()

	s.Handle([]core.Event{
		{Kind: core.EventTeleported},
		{Kind: core.EventStarCollected},
		{Kind: core.EventScored, Value: 10},
	})
	if s.mixer.Len() != 3 {
		t.Errorf("mixer has %d streamers, want 3", s.mixer.Len())
	}

	// Effects finish and leave the mixer
	drain(t, s.mixer, testRate.N(2e9))
	if s.mixer.Len() != 0 {
		t.Errorf("finished effects still mixed: %d", s.mixer.Len())
	}
}

func TestSinkMusicToggle(t *testing.T) {
	s := offlineSink()

	s.Handle([]core.Event{{Kind: core.EventMusicStart}})
	if !s.MusicPlaying() {
		t.Fatal("music should play after MusicStart")
	}
	first := s.music

	s.Handle([]core.Event{{Kind: core.EventGameOver, Value: 120}, {Kind: core.EventMusicStop}})
	if s.MusicPlaying() {
		t.Error("music should stop after MusicStop")
	}

	s.Handle([]core.Event{{Kind: core.EventMusicStart}})
	if s.music != first {
		t.Error("restart should reuse the loop")
	}
	if s.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, want music and the game over buzz", s.mixer.Len())
	}
}

func TestSinkClose(t *testing.T) {
	s := offlineSink()
	s.Handle([]core.Event{{Kind: core.EventMusicStart}, {Kind: core.EventLanded}})

	s.Close()

	if s.Enabled() || s.MusicPlaying() {
		t.Error("closed sink still active")
	}
	if s.mixer.Len() != 0 {
		t.Errorf("mixer not cleared: %d", s.mixer.Len())
	}
	s.Handle([]core.Event{{Kind: core.EventLanded}})
	if s.mixer.Len() != 0 {
		t.Error("closed sink accepted events")
	}
}
