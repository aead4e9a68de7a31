package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tether-lang/tether/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate bindings when declarations change",
		Long: `Watch the source directory and tether.yml for changes and rerun
generation on every save. Compilation errors are printed but do not
stop the watcher.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(verbose, noColor)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show watcher internals")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runWatch(verbose, noColor bool) error {
	cfg := loadConfig()

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
	}
	defer logger.Sync()

	cyan := color.New(color.FgCyan, color.Bold)
	if noColor {
		cyan.DisableColor()
	}
	cyan.Fprintf(os.Stderr, "Watching %s for changes (Ctrl+C to stop)\n", cfg.Source.Dir)

	// Initial pass so the bindings are fresh before the first edit.
	if err := runGenerate(false, false, noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Initial generation failed: %v\n", err)
	}

	onChange := func(files []string) error {
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "Changed: %s\n", f)
		}
		if err := runGenerate(false, false, noColor); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		}
		return nil
	}

	watcher, err := watch.NewFileWatcher(
		logger,
		[]string{cfg.Source.Dir},
		[]string{"*.tet", "tether.yml", "tether.yaml"},
		[]string{cfg.Output.Dir},
		onChange,
	)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Fprintln(os.Stderr, "\nStopping watcher")
	return nil
}
