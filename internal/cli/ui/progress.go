package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a message while an indeterminate step runs,
// then replaces the line with a ✓ or ✗ verdict.
type Spinner struct {
	w       io.Writer
	message string
	noColor bool
	stop    chan struct{}
	stopped chan struct{}
}

func NewSpinner(w io.Writer, message string, noColor bool) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		noColor: noColor,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	go s.spin()
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	select {
	case <-s.stop:
		return
	default:
	}
	close(s.stop)
	<-s.stopped
	fmt.Fprint(s.w, "\r\033[K")
}

func (s *Spinner) Success(message string) {
	s.Stop()
	ok := color.New(color.FgGreen, color.Bold)
	if s.noColor {
		ok.DisableColor()
	}
	ok.Fprintf(s.w, "✓ %s\n", message)
}

func (s *Spinner) Error(message string) {
	s.Stop()
	bad := color.New(color.FgRed, color.Bold)
	if s.noColor {
		bad.DisableColor()
	}
	bad.Fprintf(s.w, "✗ %s\n", message)
}

func (s *Spinner) spin() {
	defer close(s.stopped)

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	frame := color.New(color.FgCyan)
	if s.noColor {
		frame.DisableColor()
	}

	for i := 0; ; i++ {
		select {
		case <-s.stop:
			return
		case <-tick.C:
			frame.Fprintf(s.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
		}
	}
}

// ProgressBar tracks a determinate step, one Add per unit of work.
type ProgressBar struct {
	w       io.Writer
	total   int
	done    int
	width   int
	message string
	noColor bool
}

func NewProgressBar(w io.Writer, message string, total int, noColor bool) *ProgressBar {
	return &ProgressBar{w: w, total: total, width: 40, message: message, noColor: noColor}
}

func (p *ProgressBar) Add(n int) {
	p.done = min(p.done+n, p.total)
	p.draw()
}

// Finish fills the bar and moves past its line.
func (p *ProgressBar) Finish() {
	p.done = p.total
	p.draw()
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) draw() {
	if p.total == 0 {
		return
	}

	fill := color.New(color.FgCyan)
	rest := color.New(color.FgHiBlack)
	if p.noColor {
		fill.DisableColor()
		rest.DisableColor()
	}

	filled := p.done * p.width / p.total
	var bar strings.Builder
	bar.WriteString("[")
	fill.Fprint(&bar, strings.Repeat("█", filled))
	rest.Fprint(&bar, strings.Repeat("░", p.width-filled))
	bar.WriteString("]")

	fmt.Fprintf(p.w, "\r%s %3d%% %s", bar.String(), p.done*100/p.total, p.message)
}

// WithSpinner runs fn under a spinner and reports the outcome on its line.
func WithSpinner(w io.Writer, message string, noColor bool, fn func() error) error {
	s := NewSpinner(w, message, noColor)
	s.Start()
	defer s.Stop()

	if err := fn(); err != nil {
		s.Error(fmt.Sprintf("%s failed", message))
		return err
	}
	s.Success(message)
	return nil
}

// WithProgress runs fn with a bar sized to total. fn advances it with Add.
func WithProgress(w io.Writer, message string, total int, noColor bool, fn func(*ProgressBar) error) error {
	bar := NewProgressBar(w, message, total, noColor)
	if err := fn(bar); err != nil {
		fmt.Fprintln(w)
		return err
	}
	bar.Finish()

	ok := color.New(color.FgGreen, color.Bold)
	if noColor {
		ok.DisableColor()
	}
	ok.Fprintf(w, "✓ %s\n", message)
	return nil
}
