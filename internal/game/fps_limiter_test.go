package game

import (
	"testing"
	"time"
)

func TestFPSLimiterUncapped(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("Expected uncapped waits to return at once, took %v", d)
	}
	if !f.next.IsZero() {
		t.Errorf("Expected no schedule while uncapped")
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("Expected about 50ms for 5 frames at 100 FPS, took %v", d)
	}
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 100 }}
	f.next = time.Now().Add(-time.Second)
	f.Wait()
	if until := time.Until(f.next); until <= 0 || until > 10*time.Millisecond {
		t.Errorf("Expected schedule restarted one step ahead, got %v", until)
	}
}
