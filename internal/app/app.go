package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clipmon/internal/apperrors"
	"clipmon/internal/clipboard"
	"clipmon/internal/config"
	"clipmon/internal/database"
)

// Build-time variables (set with -ldflags)
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const AppName = "clipmon"

// newReader is swapped out in tests so no platform clipboard is needed.
var newReader = clipboard.NewReader

// NewRootCommand creates the clipmon command. Flags keep their historical
// single-dash spelling, so cobra's flag parsing is disabled and arguments
// go through ParseArgs instead.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipmon [-nourl] [-config <path>] [-db <path> | -dboutput <db_path> <output_path>]",
		Short: "Collect clipboard text into a file or SQLite database",
		Long: `clipmon polls the clipboard once per interval and keeps every new entry.

By default only URLs are kept and they are appended to collected_clipboard.txt.

  -db <path>                        store entries in a SQLite database
  -dboutput <db_path> <output_path> export a database to a text file and exit
  -nourl                            keep any text, not just URLs
  -config <path>                    read settings from a YAML file`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				switch a {
				case "-h", "-help", "--help":
					return cmd.Help()
				case "-version", "--version":
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", AppName, Version, GitCommit, BuildDate)
					return nil
				}
			}

			rc, err := ParseArgs(args)
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), Run(cmd.Context(), cmd.OutOrStdout(), rc))
		},
	}

	return cmd
}

// Run executes one invocation described by rc, writing user-facing output
// to out.
func Run(ctx context.Context, out io.Writer, rc config.RunConfig) error {
	settings := config.Default()
	if rc.SettingsPath != "" {
		var err error
		settings, err = config.Load(rc.SettingsPath)
		if err != nil {
			return apperrors.New(apperrors.KindArgument, "invalid settings file", err)
		}
	}

	switch rc.Mode {
	case config.ModeExport:
		return runExport(ctx, out, rc)
	case config.ModeDB, config.ModeFile:
		return runMonitor(ctx, out, rc, settings)
	default:
		return apperrors.NewArgument(fmt.Sprintf("unknown mode %s", rc.Mode))
	}
}

func runExport(ctx context.Context, out io.Writer, rc config.RunConfig) error {
	n, err := database.Export(ctx, rc.DBPath, rc.OutputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d entries to %s\n", n, rc.OutputPath)
	return nil
}

func runMonitor(ctx context.Context, out io.Writer, rc config.RunConfig, settings *config.Config) error {
	reader, err := newReader(settings.ClipboardBackend)
	if err != nil {
		return apperrors.New(apperrors.KindClipboard, "clipboard unavailable", err)
	}

	store, seed, err := openStore(ctx, rc, settings)
	if err != nil {
		return err
	}

	monitor := clipboard.NewMonitor(reader, store, clipboard.Options{
		Interval:    settings.PollEvery(),
		CheckURLs:   rc.CheckURLs,
		MaxItemSize: settings.MaxItemSize,
		OnEvent: func(ev clipboard.MonitorEvent) {
			printEvent(out, ev)
		},
	})
	monitor.Seed(seed)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, "Monitoring clipboard... Press Ctrl+C to stop.")
	if err := monitor.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nStopping clipboard monitoring.")
	return nil
}

// openStore builds the store for rc's mode, plus any contents the monitor
// should treat as already seen.
func openStore(ctx context.Context, rc config.RunConfig, settings *config.Config) (clipboard.Store, []string, error) {
	if rc.Mode == config.ModeDB {
		repo, err := database.NewRepository(rc.DBPath)
		if err != nil {
			return nil, nil, apperrors.New(apperrors.KindStore, "cannot open "+rc.DBPath, err)
		}
		if n, err := repo.Count(ctx); err == nil {
			log.Printf("Opened %s (%d entries)", rc.DBPath, n)
		}
		return repo, nil, nil
	}

	path := rc.OutputPath
	if path == "" {
		path = settings.DefaultOutputFile
	}
	store := database.NewFileStore(path)

	if !settings.SeedFromFile {
		return store, nil, nil
	}
	lines, err := store.Lines()
	if err != nil {
		return nil, nil, apperrors.New(apperrors.KindIO, "cannot read "+path, err)
	}
	log.Printf("Seeded %d entries from %s", len(lines), path)
	return store, lines, nil
}

func printEvent(out io.Writer, ev clipboard.MonitorEvent) {
	switch ev.Type {
	case clipboard.EventNewItem:
		fmt.Fprintf(out, "New content added: %s\n", ev.Data.Content)
	case clipboard.EventError:
		fmt.Fprintf(out, "Error: %v\n", ev.Error)
	}
}

// report prints err for the operator and passes it on so the process exits
// non-zero.
func report(out io.Writer, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintf(out, "Error: %v\n", err)
	return err
}
