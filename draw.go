package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjankiewicz/nbody/pkg/physics"
	"github.com/pjankiewicz/nbody/pkg/simulation"
)

var (
	spaceColor = color.RGBA{5, 5, 12, 255}
	traceColor = color.RGBA{128, 128, 128, 255}
)

func drawBodies(screen *ebiten.Image, sim *simulation.Simulator, cam *Camera) {
	sim.EachBody(func(b physics.Body) {
		x, y := cam.ToScreen(b.Pos)
		r := b.Radius * cam.Scale
		if x+r < 0 || x-r > screenWidth || y+r < 0 || y-r > screenHeight {
			return
		}
		if r < 1 {
			r = 1 // distant planets stay visible as a dot
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), b.Color, true)
	})
}

func drawTraces(screen *ebiten.Image, sim *simulation.Simulator, cam *Camera) {
	sim.EachTrace(func(pos r2.Vec) {
		x, y := cam.ToScreen(pos)
		if x < 0 || x >= screenWidth || y < 0 || y >= screenHeight {
			return
		}
		screen.Set(int(x), int(y), traceColor)
	})
}

func drawShortcuts(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		"P pause | N step while paused | H hide help\nWASD/drag to pan | wheel to zoom",
		screenWidth-280, screenHeight-40)
}
