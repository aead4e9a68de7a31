package errors

import (
	"encoding/json"
	"fmt"
)

// Severity represents the severity level of an error
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	switch str {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	case "fatal":
		*s = Fatal
	default:
		*s = Error // Default to Error if unknown
	}
	return nil
}

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// CompilerError represents a comprehensive compiler error
type CompilerError struct {
	Phase    string         `json:"phase"` // "lexer", "parser", "descriptor", "plan", "codegen"
	Code     string         `json:"code"`  // "E001", "E100", etc.
	Message  string         `json:"message"`
	Location SourceLocation `json:"location"`
	Severity Severity       `json:"severity"`
}

// Error implements the error interface
func (e CompilerError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		e.Location.File,
		e.Location.Line,
		e.Location.Column,
		e.Code,
		e.Message)
}

// New creates a new CompilerError
func New(phase, code, message string, location SourceLocation, severity Severity) CompilerError {
	return CompilerError{
		Phase:    phase,
		Code:     code,
		Message:  message,
		Location: location,
		Severity: severity,
	}
}

// IsError reports whether the error is Error severity or worse
func (e CompilerError) IsError() bool {
	return e.Severity >= Error
}

// IsWarning reports whether the error is Warning severity
func (e CompilerError) IsWarning() bool {
	return e.Severity == Warning
}

// ErrorList is a collection of compiler errors
type ErrorList []CompilerError

// Error implements the error interface for error lists
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// HasErrors reports whether the list contains any Error-or-worse entry
func (el ErrorList) HasErrors() bool {
	for _, e := range el {
		if e.IsError() {
			return true
		}
	}
	return false
}
