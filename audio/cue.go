package audio

import (
	"time"

	"github.com/lixenwraith/ragdoll-sandbox/event"
)

// Cue identifies a short feedback sound
type Cue int

const (
	CuePlace Cue = iota
	CueBreak
	CueExplosion
	CueSuccess
	CueFailure
	CueClick
	CueDrag
	CueCoin
	cueCount
)

var cueNames = [cueCount]string{
	CuePlace:     "place",
	CueBreak:     "break",
	CueExplosion: "explosion",
	CueSuccess:   "success",
	CueFailure:   "failure",
	CueClick:     "click",
	CueDrag:      "drag",
	CueCoin:      "coin",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// note is one tone of a cue, played in sequence with the others
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// cueNotes holds the tone sequence for every cue
var cueNotes = [cueCount][]note{
	CuePlace: {{800, ms(50), WaveSine}},
	CueBreak: {{400, ms(80), WaveSquare}, {300, ms(60), WaveSquare}},
	CueExplosion: {
		{250, ms(80), WaveNoise},
	},
	CueSuccess: {{523, ms(100), WaveSine}, {659, ms(100), WaveSine}, {784, ms(150), WaveSine}},
	CueFailure: {{400, ms(150), WaveSaw}, {300, ms(150), WaveSaw}, {200, ms(200), WaveSaw}},
	CueClick:   {{1000, ms(30), WaveSquare}},
	CueDrag:    {{600, ms(20), WaveSine}},
	CueCoin:    {{800, ms(100), WaveSine}, {1000, ms(100), WaveSine}},
}

// Duration returns the total length of a cue
func (c Cue) Duration() time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// CueForEvent maps a world event to its feedback cue
func CueForEvent(t event.EventType) (Cue, bool) {
	switch t {
	case event.EventStickBreak:
		return CueBreak, true
	case event.EventExplosion:
		return CueExplosion, true
	case event.EventTargetReached:
		return CueSuccess, true
	case event.EventSpawn:
		return CuePlace, true
	case event.EventCoinCollected:
		return CueCoin, true
	case event.EventUndo:
		return CueClick, true
	}
	return 0, false
}
