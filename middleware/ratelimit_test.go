package middleware

import (
	"testing"
	"time"
)

func TestAllowDrainsBucket(t *testing.T) {
	SetRateLimitConfig(time.Minute, 3)
	key := "10.0.0.1"

	for i := 0; i < 3; i++ {
		if !Allow(key) {
			t.Fatalf("expected request %d to pass within capacity", i+1)
		}
	}
	if Allow(key) {
		t.Fatalf("expected request over capacity to be blocked")
	}
}

func TestAllowRefillsOverTime(t *testing.T) {
	SetRateLimitConfig(100*time.Millisecond, 2)
	key := "10.0.0.2"

	if !Allow(key) || !Allow(key) {
		t.Fatalf("expected first two requests to pass")
	}
	if Allow(key) {
		t.Fatalf("expected bucket to be empty")
	}

	time.Sleep(150 * time.Millisecond)
	if !Allow(key) {
		t.Fatalf("expected bucket to refill after the window")
	}
}

func TestAllowIsolatesKeys(t *testing.T) {
	SetRateLimitConfig(time.Minute, 1)
	if !Allow("10.0.0.3") {
		t.Fatalf("expected first key to pass")
	}
	if !Allow("10.0.0.4") {
		t.Fatalf("expected independent key to have its own bucket")
	}
}
