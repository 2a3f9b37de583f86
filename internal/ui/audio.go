package ui

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"pacman/internal/game"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

type soundData struct {
	raw []byte
}

// AudioManager plays a short cue per simulation event. Audio is disabled
// unless PACMAN_ENABLE_AUDIO=1, so tests and headless runs never open a
// device.
type AudioManager struct {
	ctx     *audio.Context
	dot     *soundData
	power   *soundData
	ghost   *soundData
	death   *soundData
	fanfare *soundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	if os.Getenv("PACMAN_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(44100)
	})
	return audioCtx
}

// NewAudioManager loads cues from soundsDir, synthesizing a beep for any
// missing file.
func NewAudioManager(soundsDir string) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{ctx: getAudioContext()}
	am.dot = loadOrSynth(soundsDir, "dot.wav", 60, 880)
	am.power = loadOrSynth(soundsDir, "power.wav", 150, 660)
	am.ghost = loadOrSynth(soundsDir, "ghost.wav", 200, 440)
	am.death = loadOrSynth(soundsDir, "death.wav", 400, 220)
	am.fanfare = loadOrSynth(soundsDir, "round.wav", 300, 990)
	return am
}

// Attach subscribes the cues to the simulation's event bus.
func (am *AudioManager) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventCollected, func(e game.Event) {
		if e.Kind == game.KindPowerPellet {
			am.play(am.power)
		} else {
			am.play(am.dot)
		}
	})
	bus.Subscribe(game.EventGhostConsumed, func(game.Event) { am.play(am.ghost) })
	bus.Subscribe(game.EventLifeLost, func(game.Event) { am.play(am.death) })
	bus.Subscribe(game.EventRoundComplete, func(game.Event) { am.play(am.fanfare) })
	bus.Subscribe(game.EventGameComplete, func(game.Event) { am.play(am.fanfare) })
}

func loadOrSynth(dir, file string, durationMs int, freq float64) *soundData {
	if b, err := os.ReadFile(filepath.Join(dir, file)); err == nil {
		return &soundData{raw: b}
	}
	return &soundData{raw: synthBeepWAV(44100, durationMs, freq)}
}

func (am *AudioManager) play(sd *soundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time so cues can overlap.
	stream, err := wav.Decode(am.ctx, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.Play()
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16)
	putLE16(buf[20:22], 1) // PCM
	putLE16(buf[22:24], 1) // mono
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(sampleRate*2))
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))
	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767 * amp)
		buf[44+i*2] = byte(v)
		buf[44+i*2+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
