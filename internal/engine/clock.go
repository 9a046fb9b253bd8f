package engine

// Phase is the run state machine.
//
//	NotStarted -> Running -> Succeeded | Failed
//
// Succeeded and Failed are terminal; only Restart leaves them.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseSucceeded
	PhaseFailed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is how a finished run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}

// RunClock tracks the run phase and elapsed time.
// Elapsed time keeps running after the run is over; a successful run also
// records its final time once, at the moment of success.
type RunClock struct {
	phase     Phase
	startedAt float64
	elapsed   float64
	finalTime float64
}

// Phase returns the current phase.
func (c *RunClock) Phase() Phase {
	return c.phase
}

// Started reports whether the run has left NotStarted.
func (c *RunClock) Started() bool {
	return c.phase != PhaseNotStarted
}

// Over reports whether the run reached a terminal phase.
func (c *RunClock) Over() bool {
	return c.phase == PhaseSucceeded || c.phase == PhaseFailed
}

// Outcome returns how the run ended, or OutcomeNone while it is not over.
func (c *RunClock) Outcome() Outcome {
	switch c.phase {
	case PhaseSucceeded:
		return OutcomeSuccess
	case PhaseFailed:
		return OutcomeFailure
	default:
		return OutcomeNone
	}
}

// Start moves NotStarted to Running. It is a no-op in any other phase.
func (c *RunClock) Start(now float64) bool {
	if c.phase != PhaseNotStarted {
		return false
	}
	c.phase = PhaseRunning
	c.startedAt = now
	c.elapsed = 0
	return true
}

// Restart enters Running from any phase with the timer zeroed.
func (c *RunClock) Restart(now float64) {
	c.phase = PhaseRunning
	c.startedAt = now
	c.elapsed = 0
	c.finalTime = 0
}

// Advance updates the elapsed time. It has no effect before the run starts.
func (c *RunClock) Advance(now float64) {
	if c.phase == PhaseNotStarted {
		return
	}
	c.elapsed = now - c.startedAt
}

// Elapsed returns the seconds since the run started.
func (c *RunClock) Elapsed() float64 {
	return c.elapsed
}

// FinalTime returns the frozen completion time of a successful run, or 0.
func (c *RunClock) FinalTime() float64 {
	return c.finalTime
}

// Succeed ends a running run in success. Returns false if it was not running.
func (c *RunClock) Succeed(now float64) bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.phase = PhaseSucceeded
	c.finalTime = now - c.startedAt
	c.elapsed = c.finalTime
	return true
}

// Fail ends a running run in failure. Returns false if it was not running.
func (c *RunClock) Fail(now float64) bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.phase = PhaseFailed
	c.elapsed = now - c.startedAt
	return true
}
