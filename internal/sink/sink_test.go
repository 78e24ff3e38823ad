package sink

import (
	"bytes"
	"net"
	"strconv"
	"testing"
	"time"
)

func TestConsoleFlushesOnNewline(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	for _, b := range []byte("Eabc") {
		if err := c.WriteByte(b); err != nil {
			t.Fatalf("WriteByte: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffered output before newline, got %q", buf.String())
	}
	if err := c.WriteByte('\n'); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if buf.String() != "Eabc\n" {
		t.Fatalf("expected flushed line, got %q", buf.String())
	}
}

func TestLocalCommandFramesPayloads(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewLocalCommand(&buf)
	cmd.LogMessage(`{"logLevel":2,"logMsg":"Eone"}`)
	cmd.LogMessage(`{"logLevel":3,"logMsg":"Wtwo"}`)
	want := "{\"logLevel\":2,\"logMsg\":\"Eone\"}\n{\"logLevel\":3,\"logMsg\":\"Wtwo\"}\n"
	if buf.String() != want {
		t.Fatalf("unexpected framing: %q", buf.String())
	}
}

func TestTCPClientConnectPrintRead(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 64)
		n, _ := conn.Read(buf)
		received <- string(buf[:n])
		_, _ = conn.Write([]byte("ack"))
	}()

	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)

	client := NewTCPClient(time.Second)
	if !client.Connect(host, port) {
		t.Fatal("expected connect to succeed")
	}
	defer client.Stop()
	if !client.Connected() {
		t.Fatal("expected connected state")
	}

	client.Print("hello")
	select {
	case got := <-received:
		if got != "hello" {
			t.Fatalf("server received %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received data")
	}

	deadline := time.Now().Add(2 * time.Second)
	for client.Available() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no inbound bytes buffered")
		}
		time.Sleep(10 * time.Millisecond)
	}
	buf := make([]byte, 16)
	n := client.Read(buf)
	if string(buf[:n]) != "ack" {
		t.Fatalf("expected ack, got %q", buf[:n])
	}
}

func TestTCPClientConnectFailure(t *testing.T) {
	client := NewTCPClient(200 * time.Millisecond)
	if client.Connect("127.0.0.1", 1) {
		t.Fatal("expected connect to a closed port to fail")
	}
	if client.Connected() {
		t.Fatal("expected disconnected state after failure")
	}
}
