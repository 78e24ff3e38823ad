package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// File is the daemon-level configuration loaded at startup. It covers the
// process wiring (listen address, broker, device paths); the per-sink
// routing configuration lives in the persisted Store blob and is mutated
// at runtime.
type File struct {
	Listen     string `yaml:"listen"`
	StatePath  string `yaml:"state_path"`
	SystemName string `yaml:"system_name"`
	MQTT       MQTT   `yaml:"mqtt"`
	CmdDevice  string `yaml:"cmd_device"`
}

type MQTT struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
}

func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, err
	}
	return f, nil
}
