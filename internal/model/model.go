package model

// Severity orders log output from most to least restrictive. Lower numeric
// value means higher priority; a line is dispatched only when its severity
// is <= the configured threshold.
type Severity int

const (
	SeveritySilent Severity = iota
	SeverityFatal
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityTrace
	SeverityVerbose
)

// MaxLineLen caps the collected text of a single log line. Bytes past the
// cap are dropped and the line is emitted truncated.
const MaxLineLen = 250

// SeverityFromByte maps the first byte of a line to its severity. The raw
// numeric codes 1..6 are accepted alongside the letter prefixes so that
// pre-encoded streams classify the same way.
func SeverityFromByte(b byte) Severity {
	switch b {
	case 'F', 1:
		return SeverityFatal
	case 'E', 2:
		return SeverityError
	case 'W', 3:
		return SeverityWarning
	case 'N', 4:
		return SeverityNotice
	case 'T', 5:
		return SeverityTrace
	case 'V', 6:
		return SeverityVerbose
	}
	return SeveritySilent
}

func (s Severity) Valid() bool {
	return s >= SeveritySilent && s <= SeverityVerbose
}

func (s Severity) String() string {
	switch s {
	case SeveritySilent:
		return "silent"
	case SeverityFatal:
		return "fatal"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNotice:
		return "notice"
	case SeverityTrace:
		return "trace"
	case SeverityVerbose:
		return "verbose"
	}
	return "unknown"
}

// LogLine is one completed, classified log line with the terminator and any
// embedded CR/LF characters already stripped.
type LogLine struct {
	Severity Severity
	Text     string
}
