package store

import "time"

// RateWindow counts dispatched lines in one-second buckets over a fixed
// window, backing the monitor's lines/sec readout. Time only moves forward;
// a clock that goes backwards is treated as the same second.
type RateWindow struct {
	buckets []uint64
	lastSec int64
	cursor  int
}

func NewRateWindow(seconds int, now time.Time) *RateWindow {
	if seconds <= 0 {
		seconds = 1
	}
	return &RateWindow{buckets: make([]uint64, seconds), lastSec: now.Unix()}
}

func (w *RateWindow) Add(lines uint64, now time.Time) {
	w.roll(now)
	w.buckets[w.cursor] += lines
}

// Snapshot returns the per-second counts oldest first; the last element is
// the current, still-accumulating second.
func (w *RateWindow) Snapshot(now time.Time) []uint64 {
	w.roll(now)
	out := make([]uint64, len(w.buckets))
	for i := range out {
		out[i] = w.buckets[(w.cursor+1+i)%len(w.buckets)]
	}
	return out
}

func (w *RateWindow) roll(now time.Time) {
	sec := now.Unix()
	if sec <= w.lastSec {
		return
	}
	steps := sec - w.lastSec
	if steps > int64(len(w.buckets)) {
		steps = int64(len(w.buckets))
	}
	for i := int64(0); i < steps; i++ {
		w.cursor = (w.cursor + 1) % len(w.buckets)
		w.buckets[w.cursor] = 0
	}
	w.lastSec = sec
}
