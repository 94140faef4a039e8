package racer

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-racer/internal/config"
)

func TestSpawnPositionWithinPlayfield(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	s := NewSpawner(99, cfg)
	maxX := cfg.Playfield.Width - cfg.Obstacles.Width

	for i := 0; i < 1000; i++ {
		o := s.Spawn(time.Duration(i)*time.Second, 0)
		if o.X < 0 || o.X > maxX {
			t.Fatalf("trial %d: x = %f outside [0, %f]", i, o.X, maxX)
		}
		if o.Y != -cfg.Obstacles.Height {
			t.Fatalf("trial %d: y = %f, expected %f", i, o.Y, -cfg.Obstacles.Height)
		}
		if o.Hue < 0 || o.Hue >= 360 {
			t.Fatalf("trial %d: hue %f out of range", i, o.Hue)
		}
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	s := NewSpawner(1, config.DefaultRacerConfig())
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		o := s.Spawn(time.Duration(i)*time.Second, 0)
		if seen[o.ID] {
			t.Fatalf("duplicate obstacle ID %d", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestSpawnerDue(t *testing.T) {
	s := NewSpawner(1, config.DefaultRacerConfig())

	if !s.Due(0) {
		t.Fatal("first spawn of a run should always be due")
	}

	s.Spawn(time.Second, 0)
	interval := time.Duration(config.BaseSpawnInterval) * time.Millisecond

	if s.Due(time.Second + interval) {
		t.Error("spawn should not be due at exactly one interval")
	}
	if !s.Due(time.Second + interval + time.Millisecond) {
		t.Error("spawn should be due after one interval has passed")
	}
	if s.lastSpawn != time.Second {
		t.Errorf("lastSpawn = %v, expected 1s", s.lastSpawn)
	}
}

func TestSpawnKeepsPreEscalationSpeed(t *testing.T) {
	s := NewSpawner(1, config.DefaultRacerConfig())

	o := s.Spawn(0, 100)
	if o.Speed != config.BaseSpeed {
		t.Errorf("obstacle speed = %g, expected %g", o.Speed, config.BaseSpeed)
	}
	if s.Speed() != config.BaseSpeed+config.RampSpeedStep {
		t.Errorf("spawner speed = %g, expected %g", s.Speed(), config.BaseSpeed+config.RampSpeedStep)
	}

	next := s.Spawn(2*time.Second, 100)
	if next.Speed != config.BaseSpeed+config.RampSpeedStep {
		t.Errorf("next obstacle speed = %g, expected %g", next.Speed, config.BaseSpeed+config.RampSpeedStep)
	}
	if s.Speed() != config.BaseSpeed+config.RampSpeedStep {
		t.Error("spawning again at the same score must not escalate again")
	}
}

func TestSpawnerUpdate(t *testing.T) {
	s := NewSpawner(1, config.DefaultRacerConfig())

	if _, ok := s.Update(0, 0); !ok {
		t.Fatal("expected a spawn on the first update")
	}
	if _, ok := s.Update(100*time.Millisecond, 0); ok {
		t.Fatal("did not expect a spawn before the interval")
	}
	if _, ok := s.Update(2*time.Second, 0); !ok {
		t.Fatal("expected a spawn after the interval")
	}
}

func TestSpawnerResetIsDeterministic(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	a := NewSpawner(42, cfg)
	b := NewSpawner(7, cfg)
	b.Reset(42)

	for i := 0; i < 10; i++ {
		oa := a.Spawn(time.Duration(i)*time.Second, 0)
		ob := b.Spawn(time.Duration(i)*time.Second, 0)
		if oa.X != ob.X || oa.Hue != ob.Hue {
			t.Fatalf("spawn %d differs after reset: %+v vs %+v", i, oa, ob)
		}
	}
}
