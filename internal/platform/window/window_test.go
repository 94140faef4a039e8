package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
)

// keyboard replays presses: each Update sees the keys queued for it.
type keyboard struct {
	frames [][]ebiten.Key
	frame  int
}

func (k *keyboard) press(keys ...ebiten.Key) {
	k.frames = append(k.frames, keys)
}

func (k *keyboard) justPressed(key ebiten.Key) bool {
	if k.frame >= len(k.frames) {
		return false
	}
	for _, p := range k.frames[k.frame] {
		if p == key {
			return true
		}
	}
	return false
}

func newTestGame(kb *keyboard) (*Game, *racer.Game) {
	rg := racer.NewWithConfig(config.DefaultRacerConfig())
	g := New(rg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}, Options{Width: 400, Height: 600})
	g.justPressed = kb.justPressed
	return g, rg
}

func (k *keyboard) update(t *testing.T, g *Game) error {
	t.Helper()
	err := g.Update()
	k.frame++
	return err
}

func TestIdleUntilStart(t *testing.T) {
	kb := &keyboard{}
	g, rg := newTestGame(kb)

	for i := 0; i < 5; i++ {
		if err := kb.update(t, g); err != nil {
			t.Fatal(err)
		}
	}
	if rg.Elapsed() != 0 {
		t.Error("no ticks should run before Start")
	}
}

func TestStartThenTicks(t *testing.T) {
	kb := &keyboard{}
	g, rg := newTestGame(kb)

	kb.press(ebiten.KeyEnter)
	if err := kb.update(t, g); err != nil {
		t.Fatal(err)
	}
	if !g.state.Running() {
		t.Fatal("Enter should start the run")
	}
	afterKick := rg.Elapsed()

	for i := 0; i < 3; i++ {
		kb.update(t, g)
	}
	frame := core.RuntimeConfig{TickRate: 60}.FrameDuration()
	if rg.Elapsed() != afterKick+3*frame {
		t.Errorf("elapsed = %v, expected %v", rg.Elapsed(), afterKick+3*frame)
	}
}

func TestSteerAppliedOnNextTick(t *testing.T) {
	kb := &keyboard{}
	g, rg := newTestGame(kb)

	kb.press(ebiten.KeyEnter)
	kb.press(ebiten.KeyArrowRight)
	kb.update(t, g)
	x := rg.Player().X
	kb.update(t, g)

	if want := x + rg.Config().Player.Step; rg.Player().X != want {
		t.Errorf("player x = %g, expected %g", rg.Player().X, want)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	kb := &keyboard{}
	g, rg := newTestGame(kb)

	kb.press(ebiten.KeyEnter)
	kb.press(ebiten.KeyP)
	kb.update(t, g)
	kb.update(t, g)
	if !g.state.Paused() {
		t.Fatalf("phase = %v, expected paused", g.state.Phase)
	}

	elapsed := rg.Elapsed()
	for i := 0; i < 10; i++ {
		kb.update(t, g)
	}
	if rg.Elapsed() != elapsed {
		t.Error("paused game must not advance")
	}
}

func TestQuitTerminates(t *testing.T) {
	kb := &keyboard{}
	g, _ := newTestGame(kb)

	kb.press(ebiten.KeyQ)
	if err := kb.update(t, g); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	g, _ := newTestGame(&keyboard{})

	w, h := g.Layout(1920, 1080)
	if w != 400 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 400x600", w, h)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	rg := racer.NewWithConfig(config.DefaultRacerConfig())
	if err := Run(rg, core.DefaultConfig(), Options{}); err == nil {
		t.Error("expected error for zero playfield size")
	}
}
