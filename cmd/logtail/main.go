// Command logtail demonstrates tailing a taglog [taglog.Logger] in the
// terminal. It emits sample tagged traffic and streams every emitted line
// through a [taglog.Publisher] into a Bubble Tea view.
//
// # Usage
//
//	logtail [flags]
//
// The standard taglog flags control the demo logger, e.g.:
//
//	logtail --log-tags=NET,DB --log-timestamp
//
// Press q to quit.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/taglog"
	"go.jacobcolvin.com/taglog/version"
)

func main() {
	cfg := taglog.NewConfig()
	cfg.Settings.DefaultTags = []string{"NET", "DB"}

	rootCmd := &cobra.Command{
		Use:   "logtail [flags]",
		Short: "Tail a taglog logger in the terminal",
		Long: `logtail emits sample tagged log traffic and streams the emitted lines into
a terminal view, demonstrating tag gating and the publisher stream.`,
		Version:       version.Revision,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *taglog.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("logtail requires a terminal")
	}

	pub := taglog.NewPublisher()
	defer pub.Close() //nolint:errcheck // Close always returns nil.

	// The view is the console here; route the sink away from stdout so the
	// TUI owns the screen.
	logger := cfg.NewLogger(
		taglog.WithPublisher(pub),
		taglog.WithSink(taglog.NewWriterSink(io.Discard, io.Discard)),
	)

	done := make(chan struct{})
	defer close(done)

	go emit(logger, done)

	p := tea.NewProgram(newModel(pub.Subscribe()))

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
