package server

import (
	"context"
	"testing"
	"time"

	"logmux/internal/config"
	"logmux/internal/testutil"
)

func TestServerForwardsBytes(t *testing.T) {
	limits := config.DefaultLimits()
	byteCh := make(chan []byte, 16)
	srv := New(limits, byteCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, err := srv.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer srv.Stop()

	sender, err := testutil.NewTCPSender(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer sender.Close()
	if err := sender.SendLine("Ehello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	var got []byte
	deadline := time.After(2 * time.Second)
	for len(got) < len("Ehello\n") {
		select {
		case chunk := <-byteCh:
			got = append(got, chunk...)
		case <-deadline:
			t.Fatalf("timed out, received %q", got)
		}
	}
	if string(got) != "Ehello\n" {
		t.Fatalf("expected Ehello\\n, got %q", got)
	}
}

func TestServerDropsWhenQueueFull(t *testing.T) {
	limits := config.DefaultLimits()
	byteCh := make(chan []byte) // unbuffered, nobody reading
	srv := New(limits, byteCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, err := srv.Start(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer srv.Stop()

	sender, err := testutil.NewTCPSender(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer sender.Close()
	_ = sender.SendLine("Edropped")

	deadline := time.Now().Add(2 * time.Second)
	for srv.Stats().Dropped == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected dropped bytes counted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
