package testutil

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := NewFixedClock(base)

	if got := c.Now(); !got.Equal(base) {
		t.Errorf("Now() = %v, want %v", got, base)
	}
	// Repeated reads do not move the clock.
	if got := c.Now(); !got.Equal(base) {
		t.Errorf("second Now() = %v, want %v", got, base)
	}

	c.Advance(90 * time.Second)
	want := base.Add(90 * time.Second)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("after Advance: Now() = %v, want %v", got, want)
	}
}
