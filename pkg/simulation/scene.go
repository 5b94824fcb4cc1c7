package simulation

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjankiewicz/nbody/pkg/physics"
)

var sunColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// resetScene atomically replaces the whole population: one stationary sun at
// the origin plus NObjects planets. Each planet starts on a circular
// Keplerian orbit around the sun, exact in isolation and perturbed in
// practice by the pull of the other planets.
func (s *Simulator) resetScene(set *Settings) {
	s.arena.Clear()
	sun := physics.Body{
		Radius:  set.SunSize,
		Density: set.SunDensity,
		Sun:     true,
		Color:   sunColor,
	}
	s.arena.Insert(sun)
	for i := 0; i < set.NObjects; i++ {
		orbit := s.uniform(set.MinPlanetOrbitRadius, set.MaxPlanetOrbitRadius)
		theta := s.rng.Float64() * 2 * math.Pi
		sin, cos := math.Sincos(theta)
		speed := math.Sqrt(set.G * sun.Mass() / orbit)
		s.arena.Insert(physics.Body{
			Pos:     r2.Vec{X: orbit * cos, Y: orbit * sin},
			Vel:     r2.Vec{X: -speed * sin, Y: speed * cos},
			Radius:  s.uniform(set.MinPlanetSize, set.MaxPlanetSize),
			Density: s.uniform(set.MinPlanetDensity, set.MaxPlanetDensity),
			Color:   s.planetColor(),
		})
	}
	s.logger.Info("scene reset", "planets", set.NObjects, "sun_mass", sun.Mass())
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// planetColor picks a soft random hue so planets stay distinguishable after
// a few merges.
func (s *Simulator) planetColor() color.RGBA {
	r, g, b := colorful.Hsv(s.rng.Float64()*360, 0.35, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
