package scroll

// Mode is the arbiter state: AUTO tracks the target offset
// automatically, MANUAL means the user has taken control of the
// vertical axis.
type Mode int

const (
	ModeAuto Mode = iota
	ModeManual
)

// Arbiter decides whether the vertical axis follows horizontal
// navigation. It starts in AUTO, drops to MANUAL the instant a vertical
// gesture is observed, and recovers to AUTO only positionally: when the
// user has scrolled back past the point auto-scroll would have taken
// them anyway. There is no timeout-based reversion.
type Arbiter struct {
	mode       Mode
	userOffset *float64
}

// NewArbiter creates an arbiter in AUTO mode.
func NewArbiter() *Arbiter {
	return &Arbiter{mode: ModeAuto}
}

// Mode returns the current state.
func (a *Arbiter) Mode() Mode {
	return a.mode
}

// Auto reports whether the arbiter is in AUTO mode.
func (a *Arbiter) Auto() bool {
	return a.mode == ModeAuto
}

// UserOffset returns the recorded manual offset, nil while in AUTO.
func (a *Arbiter) UserOffset() *float64 {
	return a.userOffset
}

// NoteUserScroll records a manual vertical gesture and switches to
// MANUAL.
func (a *Arbiter) NoteUserScroll(offset float64) {
	a.mode = ModeManual
	a.userOffset = &offset
}

// Evaluate applies the positional recovery rule against the current
// target and direction, then reports whether an auto-scroll toward the
// target should fire now.
func (a *Arbiter) Evaluate(target *float64, scrollingLeft bool) bool {
	if ShouldAutoScroll(a.userOffset, target, scrollingLeft) && a.mode == ModeManual {
		a.mode = ModeAuto
		a.userOffset = nil
	}
	return a.mode == ModeAuto && target != nil
}
