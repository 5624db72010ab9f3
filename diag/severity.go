package diag

import "fmt"

// Severity defines the importance of a problem.
type Severity uint8

const (
	// SevIgnore drops the problem before it reaches a Reporter.
	SevIgnore Severity = iota
	SevInfo
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevIgnore:
		return "ignore"
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "ignore":
		return SevIgnore, nil
	case "info":
		return SevInfo, nil
	case "warning":
		return SevWarning, nil
	case "error":
		return SevError, nil
	}
	return SevIgnore, fmt.Errorf("unknown severity %q (expected ignore, info, warning or error)", s)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
