package app

import "time"

// FixedStep decouples the generation rate from the display frame rate:
// the frame loop asks it every frame whether a simulation tick is due.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a controller targeting the given ticks per
// second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the frame loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether one tick is due. The first call after
// construction always fires.
func (f *FixedStep) ShouldStep() bool {
	t := f.now()
	if f.last.IsZero() {
		f.last = t
	}
	f.accumulator += t.Sub(f.last)
	f.last = t
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
