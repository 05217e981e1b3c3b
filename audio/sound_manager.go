package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/starfield/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the shot signal through the speaker
// Falls back to a caller-supplied signal (terminal bell) when the speaker is unavailable
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	fallback    func()
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager, fallback may be nil
func NewSoundManager(fallback func()) *SoundManager {
	return &SoundManager{
		mixer:    &beep.Mixer{},
		fallback: fallback,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences both the speaker and the fallback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Beep plays the fire-and-forget shot sound
func (sm *SoundManager) Beep() {
	sm.mu.Lock()
	initialized, muted := sm.initialized, sm.muted
	sm.mu.Unlock()

	if muted {
		return
	}
	if !initialized {
		if sm.fallback != nil {
			sm.fallback()
		}
		return
	}

	streamer := NewShotGenerator(
		sampleRate,
		constants.ShotSoundDuration,
		constants.ShotSoundRelease,
		constants.ShotSoundStartFreq,
		constants.ShotSoundEndFreq,
		constants.ShotSoundVolume,
	)

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
