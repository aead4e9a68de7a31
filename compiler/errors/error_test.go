package errors

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCompilerErrorFormat(t *testing.T) {
	err := New("descriptor", ErrDuplicateMember, "member \"health\" declared twice",
		SourceLocation{File: "player.tet", Line: 12, Column: 3}, Error)

	got := err.Error()
	want := "player.tet:12:3: E201: member \"health\" declared twice"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(Warning)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"warning"` {
		t.Errorf("Marshal = %s", data)
	}

	var s Severity
	if err := json.Unmarshal([]byte(`"fatal"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != Fatal {
		t.Errorf("Unmarshal = %v, want Fatal", s)
	}

	// Unknown severities default to Error
	if err := json.Unmarshal([]byte(`"mystery"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != Error {
		t.Errorf("Unmarshal unknown = %v, want Error", s)
	}
}

func TestErrorList(t *testing.T) {
	list := ErrorList{
		New("lexer", ErrInvalidCharacter, "bad char", SourceLocation{File: "a.tet", Line: 1, Column: 1}, Error),
		New("parser", ErrUnexpectedToken, "bad token", SourceLocation{File: "a.tet", Line: 2, Column: 1}, Warning),
	}

	if !list.HasErrors() {
		t.Error("Expected HasErrors")
	}
	if !strings.Contains(list.Error(), "and 1 more") {
		t.Errorf("Error() = %q", list.Error())
	}

	warningsOnly := ErrorList{list[1]}
	if warningsOnly.HasErrors() {
		t.Error("Warnings alone should not count as errors")
	}
}

func TestFormatErrorsAsJSON(t *testing.T) {
	errs := []CompilerError{
		New("plan", ErrClassInMultipleLevels, "class in two levels", SourceLocation{File: "tether.yml"}, Error),
		New("descriptor", ErrUnknownHint, "odd hint", SourceLocation{File: "a.tet", Line: 3}, Warning),
	}

	out, err := FormatErrorsAsJSON(errs)
	if err != nil {
		t.Fatal(err)
	}

	var parsed JSONOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if parsed.Status != "failed" {
		t.Errorf("Status = %q", parsed.Status)
	}
	if parsed.Summary.ErrorCount != 1 || parsed.Summary.WarningCount != 1 {
		t.Errorf("Summary = %+v", parsed.Summary)
	}
}

func TestFormatForTerminal(t *testing.T) {
	err := New("parser", ErrUnexpectedToken, "unexpected token",
		SourceLocation{File: "a.tet", Line: 4, Column: 9}, Error)

	out := err.FormatForTerminal()
	if !strings.Contains(out, "a.tet:4:9") {
		t.Errorf("Missing location in %q", out)
	}
	if !strings.Contains(out, "E100") {
		t.Errorf("Missing code in %q", out)
	}
}
