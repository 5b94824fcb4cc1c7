package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"
)

const (
	panelX    = 8
	panelY    = 8
	panelW    = 330
	panelPad  = 10
	rowH      = 20
	headerH   = 26
	trackW    = 110
	uiBtnW    = 100
	uiBtnH    = 18
	checkSize = 12
)

type widgetKind uint8

const (
	widgetLabel widgetKind = iota
	widgetCheckbox
	widgetSlider
	widgetSliderInt
	widgetButton
)

type widget struct {
	kind    widgetKind
	label   string
	dynamic func() string // labels only
	fval    *float64
	ival    *int
	bval    *bool
	lo, hi  float64
	onClick func()
	y       int
}

// Panel ---
// The live tuning surface: readouts, toggles, sliders over the settings
// record and the two one-shot commands. Rows are laid out once and hit-tested
// against the cursor every frame.
type Panel struct {
	widgets []*widget
	height  int
	drag    *widget // slider currently captured by the mouse
	hovered bool
}

func NewPanel(g *Game) *Panel {
	p := &Panel{}
	p.label(func() string { return "WASD/drag to pan, wheel to zoom" })
	p.label(func() string { return fmt.Sprintf("Time %.2f", g.sim.Clock()) })
	p.label(func() string { return fmt.Sprintf("FPS %.2f", ebiten.ActualFPS()) })
	p.label(func() string { return fmt.Sprintf("Number of objects %d", g.sim.Stats().Bodies) })
	p.checkbox("Center on the largest", &g.followLargest)
	p.checkbox("Draw traces", &g.drawTraces)
	p.slider("G constant", &g.settings.G, 0.5, 100)
	p.slider("Time step", &g.settings.TimeStep, 1, 1000)
	p.label(func() string { return "Higher means slower, more precise" })
	p.checkbox("Enable collisions", &g.settings.Collisions)
	p.button("Clear traces", g.sim.RequestClearTraces)
	p.label(func() string { return "Scene settings (applied on Start)" })
	p.sliderInt("Number of planets", &g.settings.NObjects, 10, 1000)
	p.slider("Minimum planet radius", &g.settings.MinPlanetSize, 0.5, 3)
	p.slider("Maximum planet radius", &g.settings.MaxPlanetSize, 3, 10)
	p.slider("Minimum planet density", &g.settings.MinPlanetDensity, 0.5, 5)
	p.slider("Maximum planet density", &g.settings.MaxPlanetDensity, 0.5, 50)
	p.slider("Minimum orbit radius", &g.settings.MinPlanetOrbitRadius, 100, 500)
	p.slider("Maximum orbit radius", &g.settings.MaxPlanetOrbitRadius, 500, 2000)
	p.slider("Sun radius", &g.settings.SunSize, 30, 100)
	p.slider("Sun density", &g.settings.SunDensity, 5, 100)
	p.button("Start", g.sim.RequestReset)
	return p
}

func (p *Panel) add(w *widget) {
	w.y = panelY + headerH + len(p.widgets)*rowH
	p.widgets = append(p.widgets, w)
	p.height = w.y + rowH + panelPad - panelY
}

func (p *Panel) label(f func() string) {
	p.add(&widget{kind: widgetLabel, dynamic: f})
}

func (p *Panel) checkbox(label string, v *bool) {
	p.add(&widget{kind: widgetCheckbox, label: label, bval: v})
}

func (p *Panel) slider(label string, v *float64, lo, hi float64) {
	p.add(&widget{kind: widgetSlider, label: label, fval: v, lo: lo, hi: hi})
}

func (p *Panel) sliderInt(label string, v *int, lo, hi int) {
	p.add(&widget{kind: widgetSliderInt, label: label, ival: v, lo: float64(lo), hi: float64(hi)})
}

func (p *Panel) button(label string, onClick func()) {
	p.add(&widget{kind: widgetButton, label: label, onClick: onClick})
}

// Hovered reports whether the cursor is over the panel (or a slider drag is
// in flight); camera input is suppressed then.
func (p *Panel) Hovered() bool { return p.hovered || p.drag != nil }

func (p *Panel) Update(g *Game) {
	mx, my := ebiten.CursorPosition()
	p.hovered = pointInRect(mx, my, panelX, panelY, panelW, p.height)

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.drag = nil
	}
	if p.drag != nil {
		p.drag.setFromCursor(mx)
		g.settings.Clamp()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	for _, w := range p.widgets {
		switch w.kind {
		case widgetCheckbox:
			if pointInRect(mx, my, panelX+panelPad, w.y, panelW-2*panelPad, rowH-4) {
				*w.bval = !*w.bval
				g.settings.Clamp()
				return
			}
		case widgetSlider, widgetSliderInt:
			if pointInRect(mx, my, panelX+panelPad-4, w.y+2, trackW+8, rowH-4) {
				p.drag = w
				w.setFromCursor(mx)
				g.settings.Clamp()
				return
			}
		case widgetButton:
			if pointInRect(mx, my, panelX+panelPad, w.y, uiBtnW, uiBtnH) {
				w.onClick()
				return
			}
		}
	}
}

func (w *widget) setFromCursor(mx int) {
	frac := float64(mx-(panelX+panelPad)) / trackW
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	v := w.lo + frac*(w.hi-w.lo)
	if w.kind == widgetSliderInt {
		*w.ival = int(v + 0.5)
	} else {
		*w.fval = v
	}
}

func (w *widget) frac() float64 {
	v := 0.0
	if w.kind == widgetSliderInt {
		v = float64(*w.ival)
	} else {
		v = *w.fval
	}
	f := (v - w.lo) / (w.hi - w.lo)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

var (
	panelBg    = color.RGBA{20, 20, 28, 215}
	panelText  = color.RGBA{230, 230, 230, 255}
	panelDim   = color.RGBA{170, 170, 170, 255}
	trackColor = color.RGBA{70, 70, 80, 255}
	knobColor  = color.RGBA{200, 200, 210, 255}
	checkColor = color.RGBA{120, 190, 120, 255}
)

func (p *Panel) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	vector.DrawFilledRect(screen, panelX, panelY, panelW, float32(p.height), panelBg, false)
	text.Draw(screen, "Moon creator", basicfont.Face7x13, panelX+panelPad, panelY+17, panelText)

	for _, w := range p.widgets {
		baseline := w.y + 14
		switch w.kind {
		case widgetLabel:
			text.Draw(screen, w.dynamic(), basicfont.Face7x13, panelX+panelPad, baseline, panelDim)
		case widgetCheckbox:
			bx, by := panelX+panelPad, w.y+2
			vector.StrokeRect(screen, float32(bx), float32(by), checkSize, checkSize, 1, panelText, false)
			if *w.bval {
				vector.DrawFilledRect(screen, float32(bx+2), float32(by+2), checkSize-4, checkSize-4, checkColor, false)
			}
			text.Draw(screen, w.label, basicfont.Face7x13, bx+checkSize+8, baseline, panelText)
		case widgetSlider, widgetSliderInt:
			tx, ty := panelX+panelPad, w.y+8
			vector.DrawFilledRect(screen, float32(tx), float32(ty), trackW, 4, trackColor, false)
			kx := float64(tx) + w.frac()*trackW
			vector.DrawFilledCircle(screen, float32(kx), float32(ty+2), 5, knobColor, true)
			var value string
			if w.kind == widgetSliderInt {
				value = fmt.Sprintf("%d", *w.ival)
			} else {
				value = fmt.Sprintf("%.2f", *w.fval)
			}
			text.Draw(screen, fmt.Sprintf("%s  %s", w.label, value), basicfont.Face7x13, tx+trackW+10, baseline, panelText)
		case widgetButton:
			hover := pointInRect(mx, my, panelX+panelPad, w.y, uiBtnW, uiBtnH)
			drawButton(screen, panelX+panelPad, w.y, uiBtnW, uiBtnH, w.label, false, false, hover)
		}
	}
}

func pointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}

func drawButton(screen *ebiten.Image, x, y, w, h int, label string, active bool, disabled bool, hover bool) {
	btn := ebiten.NewImage(w, h)
	bg := color.RGBA{20, 20, 20, 200}
	textColor := color.RGBA{240, 240, 240, 255}
	if disabled {
		bg = color.RGBA{60, 60, 60, 160}
		textColor = color.RGBA{160, 160, 160, 200}
	} else {
		if active {
			bg = color.RGBA{60, 120, 60, 220}
		}
		if hover {
			if active {
				bg = color.RGBA{100, 190, 100, 240}
			} else {
				bg = color.RGBA{90, 90, 90, 230}
			}
		}
	}
	btn.Fill(bg)
	inner := ebiten.NewImage(w-2, h-2)
	inner.Fill(color.RGBA{40, 40, 40, 120})
	opInner := &ebiten.DrawImageOptions{}
	opInner.GeoM.Translate(1, 1)
	btn.DrawImage(inner, opInner)
	charW := 7
	cw := len(label) * charW
	xText := (w - cw) / 2
	yText := (h + 8) / 2
	text.Draw(btn, label, basicfont.Face7x13, xText, yText, textColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(btn, op)
}
