package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Compiling declarations", true)
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	s.Stop()

	if !strings.Contains(buf.String(), "Compiling declarations") {
		t.Errorf("spinner never drew its message: %q", buf.String())
	}
}

func TestSpinnerSuccess(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Compiling declarations", true)
	s.Start()
	s.Success("Compiled 3 classes")

	if !strings.Contains(buf.String(), "✓ Compiled 3 classes") {
		t.Errorf("missing success line: %q", buf.String())
	}
}

func TestSpinnerError(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Compiling declarations", true)
	s.Start()
	s.Error("Compilation failed")

	if !strings.Contains(buf.String(), "✗ Compilation failed") {
		t.Errorf("missing error line: %q", buf.String())
	}
}

func TestProgressBarFills(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, "Writing bindings", 4, true)
	bar.Add(1)
	bar.Add(1)

	if !strings.Contains(buf.String(), " 50% Writing bindings") {
		t.Errorf("expected 50%% after half the work: %q", buf.String())
	}

	bar.Finish()
	if !strings.Contains(buf.String(), "100%") {
		t.Errorf("expected 100%% after Finish: %q", buf.String())
	}
}

func TestProgressBarClampsOvershoot(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, "Writing bindings", 2, true)
	bar.Add(5)

	if !strings.Contains(buf.String(), "100%") {
		t.Errorf("overshoot should clamp to the total: %q", buf.String())
	}
	if strings.Contains(buf.String(), "250%") {
		t.Errorf("progress ran past 100%%: %q", buf.String())
	}
}

func TestProgressBarZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, "Writing bindings", 0, true)
	bar.Add(1)

	if strings.Contains(buf.String(), "%") {
		t.Errorf("zero-total bar should not draw: %q", buf.String())
	}
}

func TestWithSpinner(t *testing.T) {
	var buf bytes.Buffer
	err := WithSpinner(&buf, "Compiling declarations", true, func() error {
		return nil
	})
	if err != nil {
		t.Fatalf("WithSpinner returned %v", err)
	}
	if !strings.Contains(buf.String(), "✓ Compiling declarations") {
		t.Errorf("missing success line: %q", buf.String())
	}
}

func TestWithSpinnerPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("lexing failed")
	err := WithSpinner(&buf, "Compiling declarations", true, func() error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithSpinner returned %v, want the step's error", err)
	}
	if !strings.Contains(buf.String(), "✗ Compiling declarations failed") {
		t.Errorf("missing failure line: %q", buf.String())
	}
}

func TestWithProgress(t *testing.T) {
	var buf bytes.Buffer
	err := WithProgress(&buf, "Writing bindings", 3, true, func(bar *ProgressBar) error {
		for i := 0; i < 3; i++ {
			bar.Add(1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithProgress returned %v", err)
	}
	if !strings.Contains(buf.String(), "✓ Writing bindings") {
		t.Errorf("missing success line: %q", buf.String())
	}
}

func TestWithProgressPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("disk full")
	err := WithProgress(&buf, "Writing bindings", 3, true, func(bar *ProgressBar) error {
		bar.Add(1)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithProgress returned %v, want the step's error", err)
	}
	if strings.Contains(buf.String(), "✓") {
		t.Errorf("failed step should not print success: %q", buf.String())
	}
}
