package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/zombieconga/config"
	"github.com/meghashyamc/zombieconga/geometry"
	"github.com/meghashyamc/zombieconga/logger"
)

type Game struct {
	cfg    *config.Config
	size   Size
	rng    *geometry.Rand
	scene  Scene
	logger logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	size := Size{
		Width:  float64(cfg.GetWindowWidth()),
		Height: float64(cfg.GetWindowHeight()),
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %.0fx%.0f", size.Width, size.Height)
	}

	g := &Game{
		cfg:    cfg,
		size:   size,
		rng:    geometry.NewRand(cfg.GetRandomSeed()),
		logger: logger.NewWithLevel(cfg.GetLogLevel()),
	}
	g.scene = g.newGameOverScene()

	g.logger.Info("game initialized", "won", cfg.GetWon(), "seed", g.rng.Seed())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(int(g.size.Width), int(g.size.Height))
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) newGameOverScene() Scene {
	return NewGameOverScene(g.size, g.cfg.GetWon(),
		WithDuration(g.cfg.GetGameOverDuration()),
		WithRand(g.rng),
		WithLogger(g.logger),
	)
}

func (g *Game) Update() error {
	if err := g.scene.Update(getCurrentMousePosition(g.size)); err != nil {
		return fmt.Errorf("failed to update scene: %w", err)
	}

	if g.scene.Done() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.size.Width), int(g.size.Height)
}

func (g *Game) Reset() {
	g.logger.Debug("resetting game")
	g.scene.Reset()
}
