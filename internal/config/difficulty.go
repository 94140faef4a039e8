package config

// Built-in rules and difficulty ramp. These are not exposed in YAML.
const (
	StartingLives = 3  // Lives at the start of every run
	DodgePoints   = 10 // Score for each obstacle that leaves the playfield

	BaseSpeed         = 3.0  // Obstacle fall rate at the start of a run, pixels per tick
	BaseSpawnInterval = 1500 // Milliseconds between spawns at the start of a run
	MinSpawnInterval  = 500  // Spawn interval floor
	RampEvery         = 100  // Score span between escalations
	RampSpeedStep     = 0.5  // Speed added per escalation
	RampIntervalStep  = 100  // Milliseconds removed from the interval per escalation
)

// Ramp tracks difficulty for one run. Speed only grows and the spawn
// interval only shrinks (down to MinSpawnInterval).
//
// Each score threshold escalates exactly once: the ramp remembers the next
// threshold instead of re-testing score%RampEvery, so several spawns at the
// same score never stack speed-ups, and a score that jumps past a threshold
// between spawns still counts it.
type Ramp struct {
	speed         float64
	intervalMs    int
	nextThreshold int
}

// NewRamp returns a ramp at base difficulty.
func NewRamp() *Ramp {
	r := &Ramp{}
	r.Reset()
	return r
}

// Reset returns the ramp to base difficulty.
func (r *Ramp) Reset() {
	r.speed = BaseSpeed
	r.intervalMs = BaseSpawnInterval
	r.nextThreshold = RampEvery
}

// Speed returns the current obstacle fall rate.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// SpawnIntervalMs returns the current spawn interval in milliseconds.
func (r *Ramp) SpawnIntervalMs() int {
	return r.intervalMs
}

// Observe escalates once for every threshold the score has reached since
// the last call. Returns the number of escalations applied.
func (r *Ramp) Observe(score int) int {
	steps := 0
	for score > 0 && score >= r.nextThreshold {
		r.speed += RampSpeedStep
		r.intervalMs -= RampIntervalStep
		if r.intervalMs < MinSpawnInterval {
			r.intervalMs = MinSpawnInterval
		}
		r.nextThreshold += RampEvery
		steps++
	}
	return steps
}
