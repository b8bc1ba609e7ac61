package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/icy-tower/internal/core"
)

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundLand
	SoundScore
	SoundStar
	SoundTeleport
	SoundCollapse
	SoundGameOver
)

// soundFor maps a simulation event to the effect it plays.
func soundFor(kind core.EventKind) Sound {
	switch kind {
	case core.EventLanded:
		return SoundLand
	case core.EventScored:
		return SoundScore
	case core.EventStarCollected:
		return SoundStar
	case core.EventTeleported:
		return SoundTeleport
	case core.EventPlatformFalling:
		return SoundCollapse
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// newSound builds the streamer for an effect at the given master volume.
func newSound(s Sound, rate beep.SampleRate, master float64) beep.Streamer {
	var st beep.Streamer
	vol := 1.0

	switch s {
	case SoundLand:
		st = tone(180, 40*time.Millisecond, WaveSine, rate)
		vol = 0.25
	case SoundScore:
		// Rising two-note blip
		st = beep.Seq(
			tone(660, 50*time.Millisecond, WaveSquare, rate),
			tone(990, 70*time.Millisecond, WaveSquare, rate),
		)
		vol = 0.3
	case SoundStar:
		// Bell: fundamental plus octave
		st = beep.Mix(
			newVolume(tone(880, 400*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(1760, 250*time.Millisecond, WaveSine, rate), 0.3),
		)
	case SoundTeleport:
		st = tone(0, 250*time.Millisecond, WaveNoise, rate)
		vol = 0.5
	case SoundCollapse:
		st = beep.Mix(
			newVolume(tone(0, 300*time.Millisecond, WaveNoise, rate), 0.4),
			newVolume(tone(80, 300*time.Millisecond, WaveSine, rate), 0.6),
		)
		vol = 0.6
	case SoundGameOver:
		// Falling saw buzz
		st = beep.Seq(
			tone(220, 150*time.Millisecond, WaveSaw, rate),
			tone(165, 150*time.Millisecond, WaveSaw, rate),
			tone(110, 400*time.Millisecond, WaveSaw, rate),
		)
		vol = 0.5
	default:
		return nil
	}
	return newVolume(st, vol*master)
}

// melody is one bar of the background loop, in Hz. Zero is a rest.
var melody = []float64{
	523.25, 659.25, 783.99, 659.25,
	587.33, 698.46, 880.00, 698.46,
	523.25, 659.25, 783.99, 1046.50,
	987.77, 783.99, 587.33, 0,
}

const noteLength = 140 * time.Millisecond

// newMusic returns an endless background loop.
func newMusic(rate beep.SampleRate, master float64) beep.Streamer {
	bar := func() beep.Streamer {
		notes := make([]beep.Streamer, 0, len(melody))
		for _, f := range melody {
			if f == 0 {
				notes = append(notes, beep.Silence(rate.N(noteLength)))
				continue
			}
			notes = append(notes, tone(f, noteLength, WaveSquare, rate))
		}
		return beep.Seq(notes...)
	}
	return newVolume(beep.Iterate(bar), 0.15*master)
}
