// hris-tui browses the HRIS dashboard pages in the terminal. Pages load from
// the embedded fixtures after a simulated latency, and switch to a card
// layout when the window is narrower than the breakpoint.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"hris/internal/catalog"
	"hris/internal/platform/logging"
	"hris/internal/platform/source"
	"hris/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var page string
	var latency time.Duration
	var breakpoint int
	var logOutput string

	flagSet := pflag.NewFlagSet("hris-tui", pflag.ContinueOnError)
	flagSet.StringVar(&page, "page", "", "slug of the page to open first (default: the first page)")
	flagSet.DurationVar(&latency, "latency", 800*time.Millisecond, "simulated data source latency")
	flagSet.IntVar(&breakpoint, "breakpoint", tui.DefaultBreakpoint, "terminal width in columns below which rows render as cards")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if latency < 0 {
		return fmt.Errorf("--latency must not be negative")
	}

	var logWriter io.Writer = io.Discard
	if logOutput != "" {
		file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer file.Close()
		logWriter = file
	}
	slog.SetDefault(logging.New(logWriter, "debug", "json"))

	registry, err := catalog.Default()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	model, err := tui.New(ctx, tui.Options{
		Registry:   registry,
		Loader:     source.NewSimulated(latency),
		Page:       page,
		Breakpoint: breakpoint,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hris-tui: terminal view of the HRIS dashboard.

Usage:
  hris-tui [flags]

Keys:
  tab / shift+tab   switch page
  left / right      previous / next page of rows
  /                 search, enter to keep, esc to clear
  s                 cycle rows per page
  f                 cycle the page filter
  r                 reload
  q                 quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
