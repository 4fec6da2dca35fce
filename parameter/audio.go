package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 48000
	AudioBufferTime   = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Cue note shaping
const (
	CueAttack  = 4 * time.Millisecond
	CueRelease = 15 * time.Millisecond
)
