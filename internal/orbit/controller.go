package orbit

import "math/rand/v2"

// Input is the key state sampled by the host for one frame.
type Input struct {
	// Advance starts the next orbit once the current one is done.
	Advance bool
	// Restart abandons whatever is being drawn and starts a new orbit.
	Restart bool
}

// Controller owns the animation state and is the only thing that mutates it.
type Controller struct {
	state State
	rng   *rand.Rand
}

// NewController rolls an initial state from rng and starts in Initializing.
func NewController(rng *rand.Rand) *Controller {
	return &Controller{
		state: newState(rng),
		rng:   rng,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Render returns the draw commands for the current frame.
func (c *Controller) Render() []Command {
	return Render(&c.state)
}

// Advance runs one frame of the state machine and returns the new phase.
func (c *Controller) Advance(in Input) Phase {
	s := &c.state

	switch s.Phase {
	case Initializing:
		s.Phase = Clearing
	case Clearing:
		s.Phase = Advancing
	case Advancing:
		s.AngleStep++
		if s.AngleStep > s.MaxAngleStep {
			s.Phase = ResettingRing
		}
	case ResettingRing:
		s.Distance += s.RingStep
		if s.Distance > s.MaxDistance {
			s.Phase = StartingNewOrbit
		} else {
			c.nextRing()
			s.Phase = Advancing
		}
	case StartingNewOrbit:
		c.nextOrbit()
		s.Phase = Waiting
	case Waiting:
		if in.Advance {
			s.Phase = Clearing
		}
	default:
		s.Phase = Clearing
	}

	if in.Restart {
		s.Phase = StartingNewOrbit
	}
	return s.Phase
}

func (c *Controller) nextRing() {
	s := &c.state
	s.AngleStep = 0
	s.DrawColor = s.BaseColor.MixedWith(c.rng)
	s.MaxAngleStep = randomSweep(c.rng)
	s.setRadius(randomRadius(c.rng))
}

// nextOrbit keeps the last ring's radius; it is re-rolled with the next ring.
func (c *Controller) nextOrbit() {
	s := &c.state
	s.AngleStep = 0
	s.Distance = s.startDistance()
	s.BaseColor = RandomColor(c.rng)
	s.DrawColor = s.BaseColor.MixedWith(c.rng)
	s.Shape = randomShape(c.rng)
	s.Orbit++
}

// Begins reports whether the step from prev to next starts drawing an orbit.
// Re-entering StartingNewOrbit while restart is held does not count; the
// orbit begins when the canvas is cleared for it.
func Begins(prev, next Phase) bool {
	return next == Clearing && prev != Clearing
}
