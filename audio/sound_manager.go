package audio

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/parameter"
)

// SoundManager plays feedback cues through a shared mixer
// Every method is safe without a working audio device; playback is simply skipped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	enabled     atomic.Bool
	played      atomic.Int64
	logger      *slog.Logger
}

// NewSoundManager creates a manager from the audio config; nil uses defaults
func NewSoundManager(cfg *config.AudioConfig, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		def := config.Default().Audio
		cfg = &def
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		logger: logger,
	}
	sm.enabled.Store(cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
// Calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferTime)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "rate", int(sm.rate))
	return nil
}

// Cleanup silences the mixer; the manager can be initialized again afterwards
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues cue c; skipped when disabled or uninitialized
func (sm *SoundManager) Play(c Cue) {
	if !sm.enabled.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewCueStreamer(c, sm.rate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// SetEnabled toggles cue playback without touching the device
func (sm *SoundManager) SetEnabled(on bool) {
	sm.enabled.Store(on)
}

// Toggle flips playback and returns the new state
func (sm *SoundManager) Toggle() bool {
	for {
		cur := sm.enabled.Load()
		if sm.enabled.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Enabled reports whether cues will be played
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// HandleEvent plays the cue mapped to ev, letting the manager subscribe to a runner
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if c, ok := CueForEvent(ev.Type); ok {
		sm.Play(c)
	}
}

// EventTypes lists every event with a cue
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStickBreak,
		event.EventExplosion,
		event.EventTargetReached,
		event.EventSpawn,
		event.EventCoinCollected,
		event.EventUndo,
	}
}
