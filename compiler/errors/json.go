package errors

import "encoding/json"

// JSONOutput represents the JSON structure for error output
type JSONOutput struct {
	Status   string          `json:"status"`
	Errors   []CompilerError `json:"errors"`
	Warnings []CompilerError `json:"warnings"`
	Summary  Summary         `json:"summary"`
}

// Summary contains error and warning counts
type Summary struct {
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	TotalCount   int `json:"total_count"`
}

// FormatErrorsAsJSON formats multiple errors as JSON
func FormatErrorsAsJSON(errs []CompilerError) (string, error) {
	var errorList []CompilerError
	var warningList []CompilerError

	for _, err := range errs {
		if err.IsError() {
			errorList = append(errorList, err)
		} else if err.IsWarning() {
			warningList = append(warningList, err)
		}
	}

	status := "ok"
	if len(errorList) > 0 {
		status = "failed"
	}

	output := JSONOutput{
		Status:   status,
		Errors:   errorList,
		Warnings: warningList,
		Summary: Summary{
			ErrorCount:   len(errorList),
			WarningCount: len(warningList),
			TotalCount:   len(errorList) + len(warningList),
		},
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
