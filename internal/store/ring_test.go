package store

import "testing"

func TestPosnCursorWraps(t *testing.T) {
	posn := NewPosn(3)
	for i := 0; i < 3; i++ {
		if !posn.CanPut() {
			t.Fatalf("expected CanPut at %d", i)
		}
		posn.HasPut()
	}
	if posn.CanPut() {
		t.Fatal("expected full after capacity puts")
	}
	if posn.Count() != 3 {
		t.Fatalf("expected count 3, got %d", posn.Count())
	}
	posn.HasGot()
	if !posn.CanPut() {
		t.Fatal("expected CanPut after one get")
	}
	if posn.PutPos() != 0 {
		t.Fatalf("expected put cursor wrapped to 0, got %d", posn.PutPos())
	}
}

func TestByteRingFIFO(t *testing.T) {
	ring := NewByteRing(4)
	for _, b := range []byte("abcd") {
		if !ring.Put(b) {
			t.Fatalf("unexpected reject of %q", b)
		}
	}
	if ring.Put('x') {
		t.Fatal("expected full ring to reject")
	}
	got := make([]byte, 0, 4)
	for {
		b, ok := ring.Get()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "abcd" {
		t.Fatalf("expected abcd in order, got %q", got)
	}
}

func TestByteRingKeepsOldestOnOverflow(t *testing.T) {
	ring := NewByteRing(2)
	ring.Put('1')
	ring.Put('2')
	if ring.Put('3') {
		t.Fatal("expected overflow byte rejected")
	}
	b, _ := ring.Get()
	if b != '1' {
		t.Fatalf("expected oldest byte preserved, got %q", b)
	}
}

func TestByteRingReuseAfterClear(t *testing.T) {
	ring := NewByteRing(2)
	ring.Put('a')
	ring.Clear()
	if ring.Len() != 0 {
		t.Fatalf("expected empty after clear, got %d", ring.Len())
	}
	ring.Put('b')
	b, ok := ring.Get()
	if !ok || b != 'b' {
		t.Fatalf("expected b after clear, got %q ok=%v", b, ok)
	}
}

func TestLineRingOverwritesOldest(t *testing.T) {
	ring := NewLineRing(2)
	ring.Append("one", 1)
	ring.Append("two", 2)
	ring.Append("three", 3)
	lines, sevs := ring.Items()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "two" || lines[1] != "three" {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if sevs[0] != 2 || sevs[1] != 3 {
		t.Fatalf("unexpected severities: %v", sevs)
	}
}
