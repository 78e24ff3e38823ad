package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStoreFields(t *testing.T) {
	blob := `{"LogLevel":"4","MQTTFlag":"1","MQTTTopic":"devlog"}`
	s := NewMemStore(blob)
	if got := s.GetLong("LogLevel", 0); got != 4 {
		t.Fatalf("expected LogLevel 4, got %d", got)
	}
	if got := s.GetString("MQTTTopic", ""); got != "devlog" {
		t.Fatalf("expected topic devlog, got %q", got)
	}
	if got := s.GetLong("HTTPPort", 5076); got != 5076 {
		t.Fatalf("expected default for absent key, got %d", got)
	}
}

func TestMemStoreMalformedNumeric(t *testing.T) {
	s := NewMemStore(`{"LogLevel":"abc"}`)
	if got := s.GetLong("LogLevel", 3); got != 0 {
		t.Fatalf("expected malformed numeric to read as 0, got %d", got)
	}
}

func TestMemStoreMalformedBlob(t *testing.T) {
	s := NewMemStore(`not json at all`)
	if got := s.GetString("MQTTTopic", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	blob := `{"LogLevel":"2","SerialFlag":"1"}`
	s.SetConfigData(blob)
	if err := s.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.GetConfigData() != blob {
		t.Fatalf("expected blob %q, got %q", blob, reloaded.GetConfigData())
	}
	if got := reloaded.GetLong("LogLevel", 0); got != 2 {
		t.Fatalf("expected LogLevel 2 after reload, got %d", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logmux.yaml")
	content := "listen: 127.0.0.1:9800\nsystem_name: bench-1\nmqtt:\n  broker: tcp://127.0.0.1:1883\n  client_id: logmux\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.SystemName != "bench-1" {
		t.Fatalf("unexpected system name %q", f.SystemName)
	}
	if f.MQTT.Broker != "tcp://127.0.0.1:1883" {
		t.Fatalf("unexpected broker %q", f.MQTT.Broker)
	}
}
