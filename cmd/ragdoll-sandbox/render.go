package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ragdoll-sandbox/engine"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/scene"
	"github.com/lixenwraith/ragdoll-sandbox/vmath"
)

var tagColors = map[int]tcell.Color{
	scene.ColorWhite:   tcell.ColorWhite,
	scene.ColorCyan:    tcell.ColorAqua,
	scene.ColorYellow:  tcell.ColorYellow,
	scene.ColorRed:     tcell.ColorRed,
	scene.ColorGreen:   tcell.ColorGreen,
	scene.ColorMagenta: tcell.ColorFuchsia,
	scene.ColorGray:    tcell.ColorGray,
}

type particleLook struct {
	glyph rune
	color tcell.Color
}

var particleLooks = map[physics.ParticleKind]particleLook{
	physics.ParticleDebris:   {'.', tcell.ColorSilver},
	physics.ParticleSplinter: {',', tcell.ColorOlive},
	physics.ParticleFire:     {'*', tcell.ColorRed},
	physics.ParticleEmber:    {'+', tcell.ColorOrange},
	physics.ParticleSmoke:    {'~', tcell.ColorGray},
	physics.ParticleSpark:    {'\'', tcell.ColorYellow},
	physics.ParticleSparkle:  {'*', tcell.ColorLime},
	physics.ParticleCoin:     {'$', tcell.ColorGold},
	physics.ParticleStar:     {'+', tcell.ColorYellow},
	physics.ParticleGlint:    {'o', tcell.ColorAqua},
}

var (
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleRagdoll = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStick   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleReached = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

// draw renders one tick; runs on the runner goroutine
func (s *sandbox) draw(w *physics.World, f engine.Frame) {
	scr := s.screen
	scr.Clear()

	// Shake jitters the whole frame by a cell on alternating ticks
	ox, oy := 0, 0
	if f.Shake > 0.5 {
		if f.Tick%2 == 0 {
			ox = int(math.Round(f.Shake))
		} else {
			ox = -int(math.Round(f.Shake))
		}
		oy = int(f.Tick % 2)
	}
	set := func(x, y int, r rune, st tcell.Style) {
		scr.SetContent(x+ox, y+oy, r, nil, st)
	}

	width, height := w.Size()
	ww, wh := int(width), int(height)
	for x := 0; x < ww; x++ {
		set(x, wh, '=', styleBorder)
	}

	for i := range w.Boxes() {
		b := w.Box(i)
		if !b.Active {
			continue
		}
		st := styleBox
		if b.Wall {
			st = styleWall
		}
		l, r, t, btm := b.Bounds()
		for y := int(math.Floor(t)); y < int(math.Ceil(btm)); y++ {
			for x := int(math.Floor(l)); x < int(math.Ceil(r)); x++ {
				set(x, y, '░', st)
			}
		}
	}

	for i, t := range w.Targets() {
		st := styleTarget
		if t.Touching {
			st = styleReached
		}
		drawRing(set, t.X, t.Y, t.Radius, st)
		set(int(t.X), int(t.Y), rune('0'+i%10), st)
	}

	points := w.Points()
	for _, st := range w.Sticks() {
		if !st.Active {
			continue
		}
		p1, p2 := &points[st.P1], &points[st.P2]
		style := styleStick
		if st.Ragdoll {
			style = styleRagdoll
		}
		glyph := stickGlyph(p2.X-p1.X, p2.Y-p1.Y)
		vmath.Traverse(p1.X, p1.Y, p2.X, p2.Y, func(x, y int) bool {
			set(x, y, glyph, style)
			return true
		})
	}

	for _, p := range points {
		if !p.Active || p.Tag.Glyph == 0 {
			continue
		}
		color, ok := tagColors[p.Tag.Color]
		if !ok {
			color = tcell.ColorWhite
		}
		set(int(p.X), int(p.Y), p.Tag.Glyph, tcell.StyleDefault.Foreground(color))
	}

	for _, p := range w.Particles() {
		if !p.Active {
			continue
		}
		look := particleLooks[p.Kind]
		st := tcell.StyleDefault.Foreground(look.color)
		if p.LifeFraction() < 0.3 {
			st = st.Dim(true)
		}
		set(int(p.X), int(p.Y), look.glyph, st)
	}

	s.mu.Lock()
	cx, cy := s.cursorX, s.cursorY
	tool := s.tool
	msg := s.message
	s.mu.Unlock()

	mainc, _, _, _ := scr.GetContent(cx+ox, cy+oy)
	set(cx, cy, mainc, styleCursor)

	s.drawStatus(w, f, wh+1, tool, msg)
	scr.Show()
}

func (s *sandbox) drawStatus(w *physics.World, f engine.Frame, row int, tool Tool, msg string) {
	state := "paused"
	if f.Simulating {
		state = "running"
	}
	integrity := "intact"
	if !w.CheckRagdollIntegrity() {
		integrity = "broken"
	}
	_, floats := s.reg.Snapshot()
	sound := "on"
	if !s.sound.Enabled() {
		sound = "off"
	}
	_, _, _, targets := w.Counts()

	line := fmt.Sprintf(" %s | %s | pts %d sticks %d | ragdoll %s | targets %d/%d | undo %d | sfx %s | %.1fms | %s",
		tool, state,
		w.ActivePointCount(), w.ActiveStickCount(),
		integrity,
		w.TargetsReached(), targets,
		w.UndoAvailable(),
		sound,
		floats[engine.MetricTickMs],
		msg,
	)
	sw, _ := s.screen.Size()
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		s.screen.SetContent(x, row, r, nil, styleStatus)
	}
}

func drawRing(set func(x, y int, r rune, st tcell.Style), cx, cy, radius float64, st tcell.Style) {
	steps := int(radius * 8)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		set(int(cx+math.Cos(a)*radius), int(cy+math.Sin(a)*radius*0.5), '·', st)
	}
}

// stickGlyph picks a line character by slope
func stickGlyph(dx, dy float64) rune {
	if dx == 0 {
		return '|'
	}
	slope := dy / dx
	switch {
	case math.Abs(slope) < 0.4:
		return '-'
	case math.Abs(slope) > 2.5:
		return '|'
	case slope > 0:
		return '\\'
	default:
		return '/'
	}
}
