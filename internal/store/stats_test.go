package store

import (
	"testing"
	"time"
)

func TestRateWindowRollsPerSecond(t *testing.T) {
	now := time.Unix(100, 0)
	w := NewRateWindow(3, now)

	w.Add(5, now)
	now = now.Add(time.Second)
	w.Add(2, now)

	snap := w.Snapshot(now)
	if len(snap) != 3 {
		t.Fatalf("expected window of 3, got %d", len(snap))
	}
	if snap[1] != 5 || snap[2] != 2 {
		t.Fatalf("expected counts 5 then 2 at the tail, got %v", snap)
	}
}

func TestRateWindowCurrentSecondLast(t *testing.T) {
	now := time.Unix(100, 0)
	w := NewRateWindow(4, now)
	w.Add(1, now)
	w.Add(1, now)
	snap := w.Snapshot(now)
	if snap[len(snap)-1] != 2 {
		t.Fatalf("expected current second last with count 2, got %v", snap)
	}
}

func TestRateWindowExpiresOldSeconds(t *testing.T) {
	now := time.Unix(100, 0)
	w := NewRateWindow(3, now)
	w.Add(7, now)

	snap := w.Snapshot(now.Add(10 * time.Second))
	for i, v := range snap {
		if v != 0 {
			t.Fatalf("expected stale buckets cleared, got %d at %d", v, i)
		}
	}
}

func TestRateWindowIgnoresBackwardsClock(t *testing.T) {
	now := time.Unix(100, 0)
	w := NewRateWindow(3, now)
	w.Add(3, now)
	w.Add(1, now.Add(-5*time.Second))

	snap := w.Snapshot(now)
	if snap[len(snap)-1] != 4 {
		t.Fatalf("expected both counts in the current second, got %v", snap)
	}
}
