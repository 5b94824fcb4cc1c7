package physics

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// --- Body ---

// Body is one simulated mass: the central sun or an orbiting planet.
// Radius and Density stay strictly positive; mass is derived from them.
type Body struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Radius  float64
	Density float64
	Sun     bool
	Color   color.RGBA
}

// Mass derives the body mass from density and spherical volume.
func (b Body) Mass() float64 {
	return b.Density * Volume(b.Radius)
}

// Volume returns the volume of a sphere of radius r.
func Volume(r float64) float64 {
	return (4.0 / 3.0) * math.Pi * r * r * r
}

// RadiusOfVolume inverts Volume.
func RadiusOfVolume(v float64) float64 {
	return math.Cbrt(3.0 * v / (4.0 * math.Pi))
}

// --- Merging ---

// Merge combines two colliding bodies into one. The result keeps the total
// volume of the pair, the volume-weighted density and the momentum-weighted
// velocity; position and color come from the heavier body (a mass tie keeps
// b). A pair containing a sun merges into a sun.
func Merge(a, b Body) Body {
	heavier := b
	if a.Mass() > b.Mass() {
		heavier = a
	}
	va, vb := Volume(a.Radius), Volume(b.Radius)
	ma, mb := a.Mass(), b.Mass()
	return Body{
		Pos:     heavier.Pos,
		Vel:     a.Vel.Scale(ma / (ma + mb)).Add(b.Vel.Scale(mb / (ma + mb))),
		Radius:  RadiusOfVolume(va + vb),
		Density: a.Density*(va/(va+vb)) + b.Density*(vb/(va+vb)),
		Sun:     a.Sun || b.Sun,
		Color:   heavier.Color,
	}
}
