package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	panSpeed = 8.0 // screen pixels per frame for WASD
	zoomStep = 1.1 // per wheel notch
	minScale = 1e-4
	maxScale = 1e3
)

// Camera ---
// Center is the world point under the middle of the window, Scale is pixels
// per world unit.
type Camera struct {
	Center r2.Vec
	Scale  float64

	dragOn bool
	dragX  int
	dragY  int
}

func NewCamera() *Camera {
	return &Camera{Scale: 0.35}
}

// HandleInput applies WASD pan, mouse-drag pan and wheel zoom. The caller
// skips this entirely while the cursor is over the panel.
func (c *Camera) HandleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		c.Center.Y -= panSpeed / c.Scale
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		c.Center.Y += panSpeed / c.Scale
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		c.Center.X -= panSpeed / c.Scale
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		c.Center.X += panSpeed / c.Scale
	}

	mx, my := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if held {
		if c.dragOn {
			c.Center.X -= float64(mx-c.dragX) / c.Scale
			c.Center.Y -= float64(my-c.dragY) / c.Scale
		}
		c.dragOn = true
		c.dragX, c.dragY = mx, my
	} else {
		c.dragOn = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		c.Scale *= math.Pow(zoomStep, wy)
		if c.Scale < minScale {
			c.Scale = minScale
		}
		if c.Scale > maxScale {
			c.Scale = maxScale
		}
	}
}

// ToScreen maps a world position to window pixels.
func (c *Camera) ToScreen(w r2.Vec) (float64, float64) {
	return (w.X-c.Center.X)*c.Scale + screenWidth/2,
		(w.Y-c.Center.Y)*c.Scale + screenHeight/2
}
