package router

import (
	"strconv"
	"strings"

	"logmux/internal/model"
)

// structuredPayload is the compact record sent to the publish and command
// channels. Newlines are stripped from the message so the record stays a
// single line on the wire.
func structuredPayload(line model.LogLine) string {
	msg := stripNewlines(line.Text)
	return "{\"logLevel\":" + strconv.Itoa(int(line.Severity)) + ",\"logMsg\":\"" + msg + "\"}"
}

// httpBody is the one-element array the HTTP collector expects. The
// trailing CRLF is part of the body and counted in Content-Length.
func httpBody(line model.LogLine) string {
	return "[{\"logCat\":" + strconv.Itoa(int(line.Severity)) + ",\"eventText\":\"" + line.Text + "\"}]\r\n"
}

// httpRequest builds the full HTTP/1.1 POST. The path is the configured
// URL fragment plus the system identifier; the connection is one-shot.
func httpRequest(urlFragment, systemName, body string) string {
	var b strings.Builder
	b.WriteString("POST /")
	b.WriteString(urlFragment)
	b.WriteString("/")
	b.WriteString(systemName)
	b.WriteString("/ HTTP/1.1\r\n")
	b.WriteString("Content-Length:")
	b.WriteString(strconv.Itoa(len(body)))
	b.WriteString("\r\n")
	b.WriteString("Content-Type: application/json\r\n")
	b.WriteString("Accept: application/json\r\n")
	b.WriteString("Host: NetLogger\r\n")
	b.WriteString("Connection: close\r\n\r\n")
	b.WriteString(body)
	return b.String()
}

func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\r", "")
}
