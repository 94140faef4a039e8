package config

import "testing"

func TestRampStartsAtBase(t *testing.T) {
	r := NewRamp()
	if r.Speed() != BaseSpeed {
		t.Errorf("Speed() = %g, expected %g", r.Speed(), BaseSpeed)
	}
	if r.SpawnIntervalMs() != BaseSpawnInterval {
		t.Errorf("SpawnIntervalMs() = %d, expected %d", r.SpawnIntervalMs(), BaseSpawnInterval)
	}
}

func TestRampEscalatesOncePerThreshold(t *testing.T) {
	r := NewRamp()

	for _, score := range []int{0, 10, 50, 90} {
		if n := r.Observe(score); n != 0 {
			t.Fatalf("Observe(%d) escalated %d times below the first threshold", score, n)
		}
	}

	if n := r.Observe(100); n != 1 {
		t.Fatalf("Observe(100) = %d escalations, expected 1", n)
	}
	if r.Speed() != BaseSpeed+0.5 {
		t.Errorf("Speed() = %g, expected %g", r.Speed(), BaseSpeed+0.5)
	}
	if r.SpawnIntervalMs() != BaseSpawnInterval-100 {
		t.Errorf("SpawnIntervalMs() = %d, expected %d", r.SpawnIntervalMs(), BaseSpawnInterval-100)
	}

	// Several spawns at the same score must not stack.
	for i := 0; i < 5; i++ {
		if n := r.Observe(100); n != 0 {
			t.Fatalf("repeat Observe(100) escalated again")
		}
	}
	if r.Speed() != BaseSpeed+0.5 {
		t.Errorf("Speed() = %g after repeats, expected %g", r.Speed(), BaseSpeed+0.5)
	}
}

func TestRampCountsSkippedThresholds(t *testing.T) {
	r := NewRamp()
	if n := r.Observe(210); n != 2 {
		t.Errorf("Observe(210) = %d escalations, expected 2", n)
	}
	if r.Speed() != BaseSpeed+1.0 {
		t.Errorf("Speed() = %g, expected %g", r.Speed(), BaseSpeed+1.0)
	}
}

func TestRampIntervalFloor(t *testing.T) {
	r := NewRamp()
	prevSpeed := r.Speed()
	prevInterval := r.SpawnIntervalMs()

	for score := 0; score <= 3000; score += 10 {
		r.Observe(score)
		if r.Speed() < prevSpeed {
			t.Fatalf("speed decreased at score %d", score)
		}
		if r.SpawnIntervalMs() > prevInterval {
			t.Fatalf("interval increased at score %d", score)
		}
		if r.SpawnIntervalMs() < MinSpawnInterval {
			t.Fatalf("interval %d fell below floor at score %d", r.SpawnIntervalMs(), score)
		}
		prevSpeed, prevInterval = r.Speed(), r.SpawnIntervalMs()
	}

	if r.SpawnIntervalMs() != MinSpawnInterval {
		t.Errorf("interval should settle at %d, got %d", MinSpawnInterval, r.SpawnIntervalMs())
	}
}

func TestRampReset(t *testing.T) {
	r := NewRamp()
	r.Observe(500)
	r.Reset()

	if r.Speed() != BaseSpeed || r.SpawnIntervalMs() != BaseSpawnInterval {
		t.Errorf("Reset() left speed=%g interval=%d", r.Speed(), r.SpawnIntervalMs())
	}
	if n := r.Observe(100); n != 1 {
		t.Errorf("threshold should re-arm after Reset, got %d escalations", n)
	}
}
