package simulation

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestClampNormalizesDegenerateValues(t *testing.T) {
	s := Settings{
		NObjects:             -5,
		G:                    -1,
		TimeStep:             0,
		MinPlanetSize:        0,
		MaxPlanetSize:        -2,
		MinPlanetDensity:     4,
		MaxPlanetDensity:     1,
		MinPlanetOrbitRadius: 800,
		MaxPlanetOrbitRadius: 100,
		SunSize:              -30,
		SunDensity:           0,
	}
	s.Clamp()

	if s.NObjects != 0 {
		t.Errorf("NObjects = %d, want 0", s.NObjects)
	}
	if s.G != 0 {
		t.Errorf("G = %v, want 0", s.G)
	}
	if s.TimeStep != 1 {
		t.Errorf("TimeStep = %v, want 1", s.TimeStep)
	}
	for name, v := range map[string]float64{
		"MinPlanetSize": s.MinPlanetSize,
		"SunSize":       s.SunSize,
		"SunDensity":    s.SunDensity,
	} {
		if v <= 0 {
			t.Errorf("%s = %v, want positive", name, v)
		}
	}
	if s.MaxPlanetSize < s.MinPlanetSize {
		t.Errorf("size range inverted: [%v, %v]", s.MinPlanetSize, s.MaxPlanetSize)
	}
	if s.MaxPlanetDensity != s.MinPlanetDensity {
		t.Errorf("MaxPlanetDensity = %v, want lifted to %v", s.MaxPlanetDensity, s.MinPlanetDensity)
	}
	if s.MaxPlanetOrbitRadius != s.MinPlanetOrbitRadius {
		t.Errorf("MaxPlanetOrbitRadius = %v, want lifted to %v", s.MaxPlanetOrbitRadius, s.MinPlanetOrbitRadius)
	}
}

func TestClampKeepsSaneValues(t *testing.T) {
	s := DefaultSettings()
	want := s
	s.Clamp()
	if s != want {
		t.Errorf("Clamp changed default settings: %+v", s)
	}
}

func TestDt(t *testing.T) {
	s := Settings{TimeStep: 120}
	if got := s.Dt(); got != 1.0/120 {
		t.Errorf("Dt = %v, want %v", got, 1.0/120)
	}
}

func TestLoadSettingsPartialPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(`{"n_objects": 42, "g": 9}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.NObjects != 42 || s.G != 9 {
		t.Errorf("overridden fields lost: NObjects=%d G=%v", s.NObjects, s.G)
	}
	def := DefaultSettings()
	if s.SunSize != def.SunSize || s.TimeStep != def.TimeStep || !s.Collisions {
		t.Errorf("absent fields should keep defaults: %+v", s)
	}
}

func TestLoadSettingsClampsPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	data := `{"min_planet_orbit_radius": 900, "max_planet_orbit_radius": 200}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxPlanetOrbitRadius < s.MinPlanetOrbitRadius {
		t.Errorf("loaded preset not clamped: [%v, %v]", s.MinPlanetOrbitRadius, s.MaxPlanetOrbitRadius)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("want error for missing preset")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"n_objects":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("want error for malformed preset")
	}
}
