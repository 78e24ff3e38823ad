package mux

import (
	"strconv"
	"strings"

	"logmux/internal/config"
	"logmux/internal/model"
	"logmux/internal/router"
)

// SetLogLevel sets the severity threshold from a single-character or
// numeric code and persists the configuration when it changed.
func (m *Multiplexer) SetLogLevel(levelStr string) {
	level := parseLevel(levelStr)
	changed := m.asm.Threshold() != level
	m.asm.SetThreshold(level)
	if changed {
		m.persistConfig()
		m.diag("log level set to %d", int(level))
		return
	}
	m.diag("log level unchanged at %d", int(level))
}

func (m *Multiplexer) SetMQTT(enabled bool, topic string) {
	cfg := m.router.Config()
	changed := cfg.MQTTEnabled != enabled || cfg.MQTTTopic != topic
	cfg.MQTTEnabled = enabled
	cfg.MQTTTopic = topic
	m.router.SetConfig(cfg)
	if changed {
		m.persistConfig()
	}
}

func (m *Multiplexer) SetSerial(enabled bool, portStr string) {
	port, _ := strconv.Atoi(portStr)
	changed := m.serialOn != enabled || m.serialPort != port
	m.serialOn = enabled
	m.serialPort = port
	if changed {
		m.persistConfig()
	}
}

func (m *Multiplexer) SetCmdSerial(enabled bool) {
	cfg := m.router.Config()
	changed := cfg.CmdEnabled != enabled
	cfg.CmdEnabled = enabled
	m.router.SetConfig(cfg)
	if changed {
		m.persistConfig()
	}
}

// SetHTTP updates the HTTP sink. Empty destination parameters keep their
// current values.
func (m *Multiplexer) SetHTTP(enabled bool, addr, portStr, urlFragment string) {
	cfg := m.router.Config()
	if addr == "" {
		addr = cfg.HTTPAddr
	}
	port := cfg.HTTPPort
	if portStr != "" {
		port, _ = strconv.Atoi(portStr)
	}
	if urlFragment == "" {
		urlFragment = cfg.HTTPURL
	}
	changed := cfg.HTTPEnabled != enabled || cfg.HTTPAddr != addr ||
		cfg.HTTPPort != port || cfg.HTTPURL != urlFragment
	cfg.HTTPEnabled = enabled
	cfg.HTTPAddr = addr
	cfg.HTTPPort = port
	cfg.HTTPURL = urlFragment
	m.router.SetConfig(cfg)
	if changed {
		m.persistConfig()
		return
	}
	m.diag("config data unchanged")
}

// Setup populates the configuration from the persistence store, defaulting
// absent fields, and records the system identifier used in HTTP paths.
func (m *Multiplexer) Setup(persist config.Store, systemName string) {
	m.systemName = systemName
	m.router.SetSystemName(systemName)
	m.persist = persist
	if persist == nil {
		return
	}
	m.diag("setup from %s", persist.GetConfigData())

	level := model.Severity(persist.GetLong("LogLevel", int64(model.SeveritySilent)))
	if !level.Valid() {
		level = model.SeveritySilent
	}
	m.asm.SetThreshold(level)

	cfg := router.Config{
		MQTTEnabled: persist.GetLong("MQTTFlag", 0) != 0,
		MQTTTopic:   persist.GetString("MQTTTopic", ""),
		HTTPEnabled: persist.GetLong("HTTPFlag", 0) != 0,
		HTTPAddr:    persist.GetString("HTTPAddr", ""),
		HTTPPort:    int(persist.GetLong("HTTPPort", int64(m.limits.DefaultHTTPPort))),
		HTTPURL:     persist.GetString("HTTPUrl", ""),
		CmdEnabled:  persist.GetLong("CmdSerial", 0) != 0,
	}
	m.router.SetConfig(cfg)

	m.serialOn = persist.GetLong("SerialFlag", 1) != 0
	m.serialPort = int(persist.GetLong("SerialPort", 0))

	m.diag("level %d, mqtt %s topic %s, http %s addr %s port %d url %s, serial %s port %d, cmd %s",
		int(level), flag01(cfg.MQTTEnabled), cfg.MQTTTopic,
		flag01(cfg.HTTPEnabled), cfg.HTTPAddr, cfg.HTTPPort, cfg.HTTPURL,
		flag01(m.serialOn), m.serialPort, flag01(cfg.CmdEnabled))
}

// ConfigString renders the canonical persisted form: one flat JSON object,
// every value a string, fixed key order.
func (m *Multiplexer) ConfigString() string {
	cfg := m.router.Config()
	var b strings.Builder
	b.WriteString(`{"LogLevel":"`)
	b.WriteString(strconv.Itoa(int(m.asm.Threshold())))
	b.WriteString(`","MQTTFlag":"`)
	b.WriteString(flag01(cfg.MQTTEnabled))
	b.WriteString(`","MQTTTopic":"`)
	b.WriteString(cfg.MQTTTopic)
	b.WriteString(`","HTTPFlag":"`)
	b.WriteString(flag01(cfg.HTTPEnabled))
	b.WriteString(`","HTTPAddr":"`)
	b.WriteString(cfg.HTTPAddr)
	b.WriteString(`","HTTPPort":"`)
	b.WriteString(strconv.Itoa(cfg.HTTPPort))
	b.WriteString(`","HTTPUrl":"`)
	b.WriteString(cfg.HTTPURL)
	b.WriteString(`","SerialFlag":"`)
	b.WriteString(flag01(m.serialOn))
	b.WriteString(`","SerialPort":"`)
	b.WriteString(strconv.Itoa(m.serialPort))
	b.WriteString(`","CmdSerial":"`)
	b.WriteString(flag01(cfg.CmdEnabled))
	b.WriteString(`"}`)
	return b.String()
}

func (m *Multiplexer) persistConfig() {
	if m.persist == nil {
		return
	}
	m.persist.SetConfigData(m.ConfigString())
	_ = m.persist.WriteConfig()
}

func parseLevel(levelStr string) model.Severity {
	if levelStr == "" {
		return model.SeveritySilent
	}
	c := levelStr[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'F', '1':
		return model.SeverityFatal
	case 'E', '2':
		return model.SeverityError
	case 'W', '3':
		return model.SeverityWarning
	case 'N', '4':
		return model.SeverityNotice
	case 'T', '5':
		return model.SeverityTrace
	case 'V', '6':
		return model.SeverityVerbose
	}
	return model.SeveritySilent
}

func flag01(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
