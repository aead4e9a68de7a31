package errors

import (
	"fmt"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// FormatForTerminal formats a CompilerError for terminal output with ANSI colors
func (e CompilerError) FormatForTerminal() string {
	var sb strings.Builder

	severityColor := getSeverityColor(e.Severity)
	sb.WriteString(fmt.Sprintf("%s%s%s [%s]: %s\n",
		colorBold+severityColor,
		e.Severity.String(),
		colorReset,
		e.Code,
		e.Message))

	sb.WriteString(fmt.Sprintf("  %s-->%s %s:%d:%d\n",
		colorCyan,
		colorReset,
		e.Location.File,
		e.Location.Line,
		e.Location.Column))

	return sb.String()
}

// FormatListForTerminal formats a list of errors with a summary line
func FormatListForTerminal(errs []CompilerError) string {
	var sb strings.Builder

	for _, e := range errs {
		sb.WriteString(e.FormatForTerminal())
		sb.WriteString("\n")
	}

	errorCount := 0
	warningCount := 0
	for _, e := range errs {
		if e.IsError() {
			errorCount++
		} else if e.IsWarning() {
			warningCount++
		}
	}

	sb.WriteString(fmt.Sprintf("%s%d error(s), %d warning(s)%s\n",
		colorGray, errorCount, warningCount, colorReset))

	return sb.String()
}

// getSeverityColor returns the ANSI color for a severity level
func getSeverityColor(s Severity) string {
	switch s {
	case Warning:
		return colorYellow
	case Error, Fatal:
		return colorRed
	default:
		return colorCyan
	}
}
