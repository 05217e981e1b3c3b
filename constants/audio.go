package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration  = 120 * time.Millisecond
	ShotSoundStartFreq = 1400.0
	ShotSoundEndFreq   = 300.0
	ShotSoundVolume    = 0.25
	ShotSoundRelease   = 40 * time.Millisecond
)
