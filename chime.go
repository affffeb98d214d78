// ABOUTME: Hourly chime playback through the system audio output.
// ABOUTME: Synthesizes a short two-note sequence instead of shipping sound assets.

package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

const chimeSampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// PlayChime plays a short two-note chime asynchronously. Errors are logged
// and otherwise ignored; the clock keeps ticking without audio.
func PlayChime() {
	go func() {
		speakerOnce.Do(func() {
			speakerErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
		})
		if speakerErr != nil {
			log.Warn().Err(speakerErr).Msg("audio init failed")
			return
		}

		chime, err := chimeStreamer()
		if err != nil {
			log.Warn().Err(err).Msg("chime synthesis failed")
			return
		}
		speaker.Play(chime)
	}()
}

// chimeStreamer builds the chime: E5 then A5, each 220ms, played quietly.
func chimeStreamer() (beep.Streamer, error) {
	first, err := generators.SineTone(chimeSampleRate, 659.25)
	if err != nil {
		return nil, err
	}
	second, err := generators.SineTone(chimeSampleRate, 880.00)
	if err != nil {
		return nil, err
	}

	noteLen := chimeSampleRate.N(220 * time.Millisecond)
	seq := beep.Seq(
		beep.Take(noteLen, first),
		beep.Take(noteLen, second),
	)

	return &effects.Volume{
		Streamer: seq,
		Base:     2,
		Volume:   -2.5,
	}, nil
}
