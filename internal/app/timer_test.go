package app

import (
	"testing"
	"time"
)

// fakeClock advances a fixed amount per reading.
type fakeClock struct {
	t    time.Time
	tick time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.tick)
	return c.t
}

func TestFixedStepFiresAtTheConfiguredRate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), tick: 50 * time.Millisecond}
	fs := NewFixedStep(10) // one tick per 100ms
	fs.now = clock.now

	// Pre-loaded accumulator: the first frame always steps.
	if !fs.ShouldStep() {
		t.Fatal("first frame should step")
	}

	steps := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	// 20 frames at 50ms cover one second: ten ticks at 10 tps.
	if steps != 10 {
		t.Fatalf("stepped %d times over one second, expected 10", steps)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), tick: 50 * time.Millisecond}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.ShouldStep()

	fs.SetTPS(20) // one tick per 50ms: every frame fires
	for i := 0; i < 5; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("frame %d should step at 20 tps", i)
		}
	}

	fs.SetTPS(0) // invalid rates fall back to the default
	if fs.step != time.Second/10 {
		t.Fatalf("step = %v after invalid tps, expected %v", fs.step, time.Second/10)
	}
}
