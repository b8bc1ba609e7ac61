package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/icy-tower/internal/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		for i := range n {
			if math.IsNaN(buf[i][0]) || math.Abs(buf[i][0]) > 1.0001 {
				t.Fatalf("sample %d out of range: %f", total-n+i, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorWaves(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}

	for _, wave := range waves {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		got := drain(t, osc, 1<<20)
		if want := testRate.N(100 * time.Millisecond); got != want {
			t.Errorf("wave %d produced %d samples, want %d", wave, got, want)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d error: %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 200)
	n, _ := osc.Stream(buf)

	for i := range n {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // freq 0 is a constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silence at attack start", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[mid][0])
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, want near zero", last)
	}
}

func TestNewVolume(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 10)

	silent := newVolume(osc, 0)
	silent.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("silent volume produced %f", buf[0][0])
	}

	half := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0.5)
	half.Stream(buf)
	if math.Abs(buf[0][0]-0.5) > 1e-9 {
		t.Errorf("half volume produced %f", buf[0][0])
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Sound
	}{
		{core.EventLanded, SoundLand},
		{core.EventScored, SoundScore},
		{core.EventStarCollected, SoundStar},
		{core.EventTeleported, SoundTeleport},
		{core.EventPlatformFalling, SoundCollapse},
		{core.EventGameOver, SoundGameOver},
		{core.EventMusicStart, SoundNone},
		{core.EventMusicStop, SoundNone},
	}

	for _, tt := range tests {
		if got := soundFor(tt.kind); got != tt.want {
			t.Errorf("soundFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSoundsAreFinite(t *testing.T) {
	for s := SoundLand; s <= SoundGameOver; s++ {
		st := newSound(s, testRate, 1)
		if st == nil {
			t.Fatalf("sound %d has no streamer", s)
		}
		n := drain(t, st, testRate.N(5*time.Second))
		if n == 0 || n >= testRate.N(5*time.Second) {
			t.Errorf("sound %d produced %d samples", s, n)
		}
	}
	if newSound(SoundNone, testRate, 1) != nil {
		t.Error("SoundNone should have no streamer")
	}
}

func TestMusicLoops(t *testing.T) {
	music := newMusic(testRate, 1)
	limit := testRate.N(5 * time.Second) // longer than one bar
	if n := drain(t, music, limit); n < limit {
		t.Errorf("music stopped after %d samples", n)
	}
}
