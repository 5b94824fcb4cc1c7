package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// --- Settings ---

// Settings is the whole tuning surface of the simulation. The control layer
// mutates it between ticks and hands it to Step; the engine assumes Clamp
// already normalized every range.
type Settings struct {
	NObjects             int     `json:"n_objects"`
	Collisions           bool    `json:"collisions"`
	MinPlanetSize        float64 `json:"min_planet_size"`
	MaxPlanetSize        float64 `json:"max_planet_size"`
	MinPlanetDensity     float64 `json:"min_planet_density"`
	MaxPlanetDensity     float64 `json:"max_planet_density"`
	MinPlanetOrbitRadius float64 `json:"min_planet_orbit_radius"`
	MaxPlanetOrbitRadius float64 `json:"max_planet_orbit_radius"`
	SunSize              float64 `json:"sun_size"`
	SunDensity           float64 `json:"sun_density"`
	G                    float64 `json:"g"`
	TimeStep             float64 `json:"time_step"`
}

// DefaultSettings is the stock scenario: 500 planets on circular orbits
// around a dense central sun.
func DefaultSettings() Settings {
	return Settings{
		NObjects:             500,
		Collisions:           true,
		MinPlanetSize:        0.5,
		MaxPlanetSize:        3.5,
		MinPlanetDensity:     0.5,
		MaxPlanetDensity:     2.0,
		MinPlanetOrbitRadius: 100,
		MaxPlanetOrbitRadius: 1000,
		SunSize:              30,
		SunDensity:           5,
		G:                    3.5,
		TimeStep:             120,
	}
}

// Dt is the duration of one tick in simulated seconds.
func (s *Settings) Dt() float64 { return 1.0 / s.TimeStep }

const minPositive = 1e-3

// Clamp normalizes degenerate values in place: population and G are floored
// at zero, sizes and densities stay strictly positive, the time step stays
// at least 1, and every [min, max] range is made well-ordered by lifting max
// up to min. The engine relies on this having run.
func (s *Settings) Clamp() {
	if s.NObjects < 0 {
		s.NObjects = 0
	}
	if s.G < 0 {
		s.G = 0
	}
	if s.TimeStep < 1 {
		s.TimeStep = 1
	}
	s.MinPlanetSize = floorPositive(s.MinPlanetSize)
	s.MinPlanetDensity = floorPositive(s.MinPlanetDensity)
	s.MinPlanetOrbitRadius = floorPositive(s.MinPlanetOrbitRadius)
	s.SunSize = floorPositive(s.SunSize)
	s.SunDensity = floorPositive(s.SunDensity)
	if s.MaxPlanetSize < s.MinPlanetSize {
		s.MaxPlanetSize = s.MinPlanetSize
	}
	if s.MaxPlanetDensity < s.MinPlanetDensity {
		s.MaxPlanetDensity = s.MinPlanetDensity
	}
	if s.MaxPlanetOrbitRadius < s.MinPlanetOrbitRadius {
		s.MaxPlanetOrbitRadius = s.MinPlanetOrbitRadius
	}
}

func floorPositive(v float64) float64 {
	if v < minPositive {
		return minPositive
	}
	return v
}

// LoadSettings reads a JSON preset file. Fields absent from the file keep
// their defaults; the result is clamped.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings preset: %w", err)
	}
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings preset: %w", err)
	}
	s.Clamp()
	return s, nil
}
