package racer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Spawner decides when and where new obstacles appear and owns the
// difficulty ramp for the run.
type Spawner struct {
	rng       *rand.Rand
	ramp      *config.Ramp
	fieldW    float64
	width     float64
	height    float64
	lastSpawn time.Duration
	spawned   bool // Whether anything spawned this run
	nextID    uint64
}

// NewSpawner creates a spawner for the given playfield with the given RNG seed.
func NewSpawner(seed int64, cfg config.RacerConfig) *Spawner {
	s := &Spawner{
		ramp: config.NewRamp(),
	}
	s.UpdateConfig(cfg)
	s.Reset(seed)
	return s
}

// UpdateConfig updates playfield and obstacle dimensions.
func (s *Spawner) UpdateConfig(cfg config.RacerConfig) {
	s.fieldW = cfg.Playfield.Width
	s.width = cfg.Obstacles.Width
	s.height = cfg.Obstacles.Height
}

// Reset re-seeds the RNG and returns difficulty to base.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.ramp.Reset()
	s.lastSpawn = 0
	s.spawned = false
	s.nextID = 0
}

// Speed returns the fall rate new obstacles get.
func (s *Spawner) Speed() float64 {
	return s.ramp.Speed()
}

// SpawnIntervalMs returns the current spawn interval in milliseconds.
func (s *Spawner) SpawnIntervalMs() int {
	return s.ramp.SpawnIntervalMs()
}

// Due reports whether more than one spawn interval has passed since the
// last spawn. The first spawn of a run is always due.
func (s *Spawner) Due(now time.Duration) bool {
	if !s.spawned {
		return true
	}
	interval := time.Duration(s.ramp.SpawnIntervalMs()) * time.Millisecond
	return now-s.lastSpawn > interval
}

// Spawn creates an obstacle just above the playfield at a uniformly random
// x in [0, fieldW-width], then lets the ramp react to the score. The new
// obstacle keeps the speed that was current before any escalation.
func (s *Spawner) Spawn(now time.Duration, score int) Obstacle {
	maxX := s.fieldW - s.width
	if maxX < 0 {
		maxX = 0
	}

	s.nextID++
	hue := s.rng.Float64() * 360
	o := Obstacle{
		ID:     s.nextID,
		X:      core.ClampF(s.rng.Float64()*maxX, 0, maxX),
		Y:      -s.height,
		Width:  s.width,
		Height: s.height,
		Speed:  s.ramp.Speed(),
		Hue:    hue,
		Color:  core.HSL(hue, 0.7, 0.5),
	}

	s.lastSpawn = now
	s.spawned = true
	s.ramp.Observe(score)
	return o
}

// Update spawns an obstacle if one is due.
func (s *Spawner) Update(now time.Duration, score int) (Obstacle, bool) {
	if !s.Due(now) {
		return Obstacle{}, false
	}
	return s.Spawn(now, score), true
}
