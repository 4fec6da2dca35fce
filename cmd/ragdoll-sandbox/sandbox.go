package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ragdoll-sandbox/audio"
	"github.com/lixenwraith/ragdoll-sandbox/engine"
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/scene"
	"github.com/lixenwraith/ragdoll-sandbox/status"
)

// Tool is the placement mode bound to the number keys
type Tool int

const (
	ToolRagdoll Tool = iota
	ToolBomb
	ToolRope
	ToolPlatform
	ToolCrate
	ToolCoin
	ToolTarget
	ToolExplode
	ToolDrag
	toolCount
)

var toolNames = [toolCount]string{
	ToolRagdoll:  "ragdoll",
	ToolBomb:     "bomb",
	ToolRope:     "rope",
	ToolPlatform: "platform",
	ToolCrate:    "crate",
	ToolCoin:     "coin",
	ToolTarget:   "target",
	ToolExplode:  "explode",
	ToolDrag:     "drag",
}

func (t Tool) String() string {
	if t < 0 || t >= toolCount {
		return "unknown"
	}
	return toolNames[t]
}

const (
	targetRadius  = 4.0
	platformWidth = 7
)

// sandbox holds interactive state shared by the input loop and the runner goroutine
type sandbox struct {
	screen  tcell.Screen
	builder *scene.Builder
	sound   *audio.SoundManager
	reg     *status.Registry
	runner  *engine.Runner
	logger  *slog.Logger
	seed    int64

	mu        sync.Mutex
	cursorX   int
	cursorY   int
	tool      Tool
	ropeStart *[2]float64
	dragPoint int
	mouseDown bool
	message   string

	// Runner goroutine only
	intact bool
}

func newSandbox(screen tcell.Screen, b *scene.Builder, sound *audio.SoundManager, reg *status.Registry, seed int64, logger *slog.Logger) *sandbox {
	w, h := b.World().Size()
	return &sandbox{
		screen:    screen,
		builder:   b,
		sound:     sound,
		reg:       reg,
		seed:      seed,
		logger:    logger,
		cursorX:   int(w) / 2,
		cursorY:   int(h) / 4,
		dragPoint: physics.InvalidIndex,
		message:   "1-9 tools, space place, p play, u undo, q quit",
	}
}

// handleInput processes one terminal event, returns false to quit
func (s *sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.moveCursor(0, -1)
	case tcell.KeyDown:
		s.moveCursor(0, 1)
	case tcell.KeyLeft:
		s.moveCursor(-1, 0)
	case tcell.KeyRight:
		s.moveCursor(1, 0)
	case tcell.KeyEnter:
		s.apply()
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *sandbox) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		s.mu.Lock()
		s.tool = Tool(r - '1')
		s.ropeStart = nil
		s.message = "tool: " + s.tool.String()
		s.mu.Unlock()
		s.sound.Play(audio.CueClick)
	case r == 'q':
		return false
	case r == 'h':
		s.moveCursor(-1, 0)
	case r == 'j':
		s.moveCursor(0, 1)
	case r == 'k':
		s.moveCursor(0, -1)
	case r == 'l':
		s.moveCursor(1, 0)
	case r == ' ':
		s.apply()
	case r == 'p':
		if s.runner.ToggleSimulating() {
			s.setMessage("running")
		} else {
			s.setMessage("paused")
		}
	case r == 'u':
		s.submit(func(w *physics.World) {
			if !w.Undo() {
				s.setMessage("nothing to undo")
			}
		})
	case r == 'c':
		s.submit(func(w *physics.World) {
			w.ClearWorld()
			s.builder.Reset()
			s.setMessage("cleared")
		})
	case r == 'r':
		s.submit(func(w *physics.World) {
			w.ResetTargets()
			s.setMessage("targets reset")
		})
	case r == 't':
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnTerrain(s.seed); err != nil {
				s.fail("terrain", err)
			}
		})
	case r == 'm':
		if s.sound.Toggle() {
			s.setMessage("sound on")
		} else {
			s.setMessage("sound off")
		}
	}
	return true
}

func (s *sandbox) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	s.mu.Lock()
	s.cursorX, s.cursorY = s.clampCursor(x, y)
	pressed := down && !s.mouseDown
	released := !down && s.mouseDown
	s.mouseDown = down
	tool := s.tool
	s.mu.Unlock()

	if released {
		s.release()
		return
	}
	if !pressed {
		return
	}
	if tool == ToolDrag {
		s.pick(true)
		return
	}
	s.apply()
}

func (s *sandbox) moveCursor(dx, dy int) {
	s.mu.Lock()
	s.cursorX, s.cursorY = s.clampCursor(s.cursorX+dx, s.cursorY+dy)
	s.mu.Unlock()
}

// clampCursor keeps the cursor in the world; caller holds mu
func (s *sandbox) clampCursor(x, y int) (int, int) {
	w, h := s.builder.World().Size()
	return max(0, min(x, int(w)-1)), max(0, min(y, int(h)-1))
}

func (s *sandbox) cursor() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.cursorX) + 0.5, float64(s.cursorY) + 0.5
}

// apply uses the current tool at the cursor
func (s *sandbox) apply() {
	x, y := s.cursor()

	s.mu.Lock()
	tool := s.tool
	s.mu.Unlock()

	switch tool {
	case ToolRagdoll:
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnRagdoll(x, y); err != nil {
				s.fail("ragdoll", err)
			}
		})
	case ToolBomb:
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnBomb(x, y); err != nil {
				s.fail("bomb", err)
			}
		})
	case ToolRope:
		s.mu.Lock()
		start := s.ropeStart
		if start == nil {
			s.ropeStart = &[2]float64{x, y}
			s.message = "rope: pick the other end"
		} else {
			s.ropeStart = nil
		}
		s.mu.Unlock()
		if start == nil {
			return
		}
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnRope(start[0], start[1], x, y); err != nil {
				s.fail("rope", err)
			}
		})
	case ToolPlatform:
		s.submit(func(w *physics.World) {
			if _, _, err := s.builder.SpawnPlatform(x, y, platformWidth); err != nil {
				s.fail("platform", err)
			}
		})
	case ToolCrate:
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnCrate(x, y); err != nil {
				s.fail("crate", err)
			}
		})
	case ToolCoin:
		s.submit(func(w *physics.World) {
			if _, err := s.builder.SpawnCoin(x, y); err != nil {
				s.fail("coin", err)
			}
		})
	case ToolTarget:
		s.submit(func(w *physics.World) {
			if _, err := w.AddTarget(x, y, targetRadius); err != nil {
				s.fail("target", err)
			}
		})
	case ToolExplode:
		s.submit(func(w *physics.World) {
			w.Explode(x, y)
		})
	case ToolDrag:
		// Keyboard drag toggles: first press grabs, second releases
		s.mu.Lock()
		grabbed := s.dragPoint != physics.InvalidIndex
		s.mu.Unlock()
		if grabbed {
			s.release()
		} else {
			s.pick(false)
		}
	}
}

// pick pins the nearest point for dragging, or unpins it when it was already locked
// The tick hook eases the pinned point toward the cursor
func (s *sandbox) pick(mouse bool) {
	x, y := s.cursor()
	s.submit(func(w *physics.World) {
		i, grabbed := w.GrabPoint(x, y)
		s.mu.Lock()
		if grabbed && mouse && !s.mouseDown {
			// Button already released before the grab ran
			_ = w.SetLocked(i, false)
			grabbed = false
		}
		switch {
		case i == physics.InvalidIndex:
			s.dragPoint = physics.InvalidIndex
			s.message = "nothing to drag"
		case grabbed:
			s.dragPoint = i
			s.message = fmt.Sprintf("dragging point %d", i)
		default:
			s.dragPoint = physics.InvalidIndex
			s.message = fmt.Sprintf("point %d unpinned", i)
		}
		s.mu.Unlock()
		if i != physics.InvalidIndex {
			s.sound.Play(audio.CueDrag)
		}
	})
}

// release unpins the dragged point, leaving it to the simulation
func (s *sandbox) release() {
	s.mu.Lock()
	i := s.dragPoint
	s.dragPoint = physics.InvalidIndex
	s.mu.Unlock()
	if i == physics.InvalidIndex {
		return
	}
	s.submit(func(w *physics.World) {
		if w.Dragging(i) {
			_ = w.SetLocked(i, false)
		}
	})
}

// tickHook runs on the runner goroutine after each physics step
func (s *sandbox) tickHook(w *physics.World, simulating bool) {
	s.mu.Lock()
	drag := s.dragPoint
	x, y := float64(s.cursorX)+0.5, float64(s.cursorY)+0.5
	s.mu.Unlock()

	if drag != physics.InvalidIndex {
		// Undo, clear or an explosion can unpin the point
		if !w.Dragging(drag) {
			s.mu.Lock()
			if s.dragPoint == drag {
				s.dragPoint = physics.InvalidIndex
			}
			s.mu.Unlock()
		} else {
			_ = w.DragTo(drag, x, y)
		}
	}

	if !simulating {
		return
	}
	s.builder.CollectCoins()
	w.UpdateTargets()

	intact := w.CheckRagdollIntegrity()
	if s.intact && !intact && w.ActivePointCount() > 0 {
		s.sound.Play(audio.CueFailure)
		s.setMessage("ragdoll broken")
	}
	s.intact = intact
}

// onEvent surfaces game milestones in the status line
func (s *sandbox) onEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case event.TargetPayload:
		s.setMessage(fmt.Sprintf("target %d reached", p.Target))
	case event.CoinPayload:
		s.setMessage(fmt.Sprintf("coin collected at %.0f,%.0f", p.X, p.Y))
	default:
		if ev.Type == event.EventUndo {
			s.setMessage("undo")
		}
	}
}

func (s *sandbox) submit(cmd engine.Command) {
	if err := s.runner.Submit(cmd); err != nil {
		s.setMessage("busy, input dropped")
	}
}

func (s *sandbox) fail(what string, err error) {
	s.logger.Warn("spawn failed", "prefab", what, "error", err)
	s.sound.Play(audio.CueFailure)
	s.setMessage(fmt.Sprintf("%s: %v", what, err))
}

func (s *sandbox) setMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}
