package orbit

import (
	"math/rand/v2"

	"github.com/0x0caf/color-dancing/internal/config"
)

// Phase is the step of the orbit lifecycle the animation is in.
type Phase uint8

const (
	Initializing Phase = iota
	Clearing
	Advancing
	ResettingRing
	StartingNewOrbit
	Waiting
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Clearing:
		return "clearing"
	case Advancing:
		return "advancing"
	case ResettingRing:
		return "resetting-ring"
	case StartingNewOrbit:
		return "starting-new-orbit"
	case Waiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// State is the mutable animation state. Ring-level fields (Radius, RingStep,
// MaxAngleStep, DrawColor) are re-rolled every ring, orbit-level fields
// (BaseColor, Shape) only when a new orbit starts.
type State struct {
	Phase Phase

	Radius       int
	RingStep     float64
	Distance     float64
	MaxDistance  float64
	AngleStep    int
	MaxAngleStep int

	DrawColor Color
	BaseColor Color
	Shape     Shape

	// Orbit counts the orbits started so far.
	Orbit int
}

func newState(rng *rand.Rand) State {
	base := RandomColor(rng)
	s := State{
		Phase:        Initializing,
		MaxDistance:  config.MaxDistance,
		MaxAngleStep: randomSweep(rng),
		BaseColor:    base,
		DrawColor:    base.MixedWith(rng),
		Shape:        randomShape(rng),
	}
	s.setRadius(randomRadius(rng))
	s.Distance = s.startDistance()
	return s
}

func (s *State) setRadius(r int) {
	s.Radius = r
	s.RingStep = float64(r) * config.RingStepFactor
}

func (s *State) startDistance() float64 {
	return float64(s.Radius * config.StartFactor)
}

func randomRadius(rng *rand.Rand) int {
	return between(rng, config.MinRadius, config.MaxRadius)
}

func randomSweep(rng *rand.Rand) int {
	return between(rng, config.MinSweepFrames, config.MaxSweepFrames)
}

// between returns a uniform int in [lo, hi).
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}
