package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep must report true")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, must not step again")
	}
}

func TestFixedStepPacing(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half an interval")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("steps after a stall = %d, want 2", steps)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("Interval() = %v, want %v", got, time.Second/60)
	}
	fs.SetTPS(4)
	if got := fs.Interval(); got != 250*time.Millisecond {
		t.Fatalf("Interval() = %v after SetTPS(4)", got)
	}
}
