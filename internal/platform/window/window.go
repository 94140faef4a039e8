// Package window runs a game in a desktop window with ebiten. It shares
// the game core and loop.Loop with the terminal host; only input and
// drawing differ.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/loop"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// Options configures the window.
type Options struct {
	// Width and Height are the playfield size in pixels.
	Width, Height int

	// Scale multiplies the playfield size for the initial window size.
	Scale float64

	Logger *log.Logger
}

type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeySpace, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game adapts a registry game to ebiten.Game.
type Game struct {
	game        registry.Game
	loop        *loop.Loop
	width       int
	height      int
	state       core.GameState
	logger      *log.Logger
	justPressed func(ebiten.Key) bool
}

// New resets the game and wraps it for ebiten.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return &Game{
		game:        game,
		loop:        loop.New(game),
		width:       opts.Width,
		height:      opts.Height,
		state:       game.State(),
		logger:      logger.With("game", game.ID()),
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update implements ebiten.Game. Key presses go to the loop; a pending
// tick runs once per update, and updates with nothing scheduled only
// poll input.
func (g *Game) Update() error {
	kicked := false
	for _, b := range bindings {
		if !g.justPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		if g.loop.Scheduled() {
			g.loop.Dispatch(b.action)
			continue
		}
		result, _ := g.loop.Dispatch(b.action)
		if result != nil {
			g.observe(*result)
			kicked = true
		}
	}

	if g.loop.Scheduled() && !kicked {
		result, _ := g.loop.Tick()
		g.observe(result)
	}
	return nil
}

func (g *Game) observe(result core.StepResult) {
	g.state = result.State
	if result.Has(core.EventGameOver) {
		g.logger.Info("game over", "score", result.State.Score)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Draw(imageSurface{screen})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Lives: %d", g.state.Score, g.state.Lives), 8, 6)

	var banner string
	switch {
	case g.state.Paused():
		banner = "PAUSED - P to resume"
	case g.state.GameOver:
		banner = fmt.Sprintf("GAME OVER - score %d - Enter to restart", g.state.Score)
	case g.state.Phase == core.PhaseStopped:
		banner = "Press Enter to start"
	}
	if banner != "" {
		// The debug font is 6 pixels wide.
		ebitenutil.DebugPrintAt(screen, banner, (g.width-len(banner)*6)/2, g.height/2)
	}
}

// Layout implements ebiten.Game. The logical screen is the playfield.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// imageSurface implements core.Surface over an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear(c color.Color) {
	if c == nil {
		c = color.Black
	}
	s.img.Fill(c)
}

func (s imageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window: invalid playfield size %dx%d", opts.Width, opts.Height)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	ebiten.SetWindowSize(int(float64(opts.Width)*opts.Scale), int(float64(opts.Height)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(New(game, cfg, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
