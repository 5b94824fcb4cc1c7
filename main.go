package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pjankiewicz/nbody/pkg/simulation"
)

const (
	screenWidth  = 1280
	screenHeight = 800
)

// Game ---
type Game struct {
	sim      *simulation.Simulator
	settings simulation.Settings
	camera   *Camera
	panel    *Panel

	// panel-bound toggles mirrored into the simulator every frame
	followLargest bool
	drawTraces    bool

	paused bool
	helpOn bool
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.helpOn = !g.helpOn
	}

	g.panel.Update(g)
	if !g.panel.Hovered() {
		g.camera.HandleInput()
	}

	g.sim.SetCenterOnLargest(g.followLargest)
	g.sim.SetDrawTraces(g.drawTraces)
	if st := g.sim.Stats(); st.CenterOnLargest {
		g.camera.Center = st.LargestPos
	}

	if !g.paused {
		g.sim.Step(&g.settings)
	} else if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step(&g.settings)
	}
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)
	drawTraces(screen, g.sim, g.camera)
	drawBodies(screen, g.sim, g.camera)
	g.panel.Draw(screen)
	if g.helpOn {
		drawShortcuts(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	preset := flag.String("preset", "default", "settings preset under pkg/assets (default, dense, calm)")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible scenes (0 = time-based)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	path := filepath.Join("pkg", "assets", fmt.Sprintf("%s.json", *preset))
	settings, err := simulation.LoadSettings(path)
	if err != nil {
		log.Fatalf("loading preset %q: %v", *preset, err)
	}
	logger.Info("preset loaded", "name", *preset, "planets", settings.NObjects)

	sim := simulation.New(logger)
	if *seed != 0 {
		sim.Reseed(*seed)
	}
	// populate the scene on the first tick
	sim.RequestReset()

	game := &Game{
		sim:      sim,
		settings: settings,
		camera:   NewCamera(),
		helpOn:   true,
	}
	game.panel = NewPanel(game)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Moon Creator")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
