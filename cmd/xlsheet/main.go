// Package main provides the CLI entry point for xlsheet.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet"
)

const (
	envFile        = "XLSHEET_FILE"
	envPlaceholder = "XLSHEET_PLACEHOLDER"
)

// app holds the persistent flags shared by every subcommand.
type app struct {
	file        string
	placeholder string
	verbose     bool
	logger      zerolog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Failed to read .env: %v\n", err)
	}

	a := &app{}
	rootCmd := a.newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

func (a *app) newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsheet",
		Short: "Read and write cells, rows and columns of an .xlsx workbook",
		Long: `xlsheet edits the active sheet of an .xlsx workbook.
Every write is saved to disk before the command returns.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.file == "" {
				return fmt.Errorf("no workbook given: use --file or set %s", envFile)
			}
			level := zerolog.InfoLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", os.Getenv(envFile), "Workbook path (.xlsx is appended if missing)")
	rootCmd.PersistentFlags().StringVar(&a.placeholder, "placeholder", envOr(envPlaceholder, xlsheet.DefaultPlaceholder), "Text written in place of values that cannot be stored")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log workbook operations to stderr")

	rootCmd.AddCommand(
		a.newCreateCommand(),
		a.newWriteCellCommand(),
		a.newReadCellCommand(),
		a.newReadColumnCommand(),
		a.newReadRowCommand(),
		a.newWriteColumnCommand(),
		a.newWriteRowCommand(),
		a.newAppendColumnCommand(),
		a.newAppendRowCommand(),
		a.newCreateSheetsCommand(),
		a.newSheetsCommand(),
		a.newDumpCommand(),
	)

	return rootCmd
}

// open opens the workbook named by --file in the given mode.
func (a *app) open(mode xlsheet.Mode) (*xlsheet.Handle, error) {
	return xlsheet.Open(a.file, xlsheet.Options{
		Mode:        mode,
		Placeholder: a.placeholder,
		Logger:      &a.logger,
	})
}

// report prints a diagnostic for err.
func report(w io.Writer, err error) {
	var saveErr *xlsheet.SaveError
	var openErr *xlsheet.OpenError
	switch {
	case errors.As(err, &saveErr):
		fmt.Fprintf(w, "Failed to save %s.\nPlease check if the document is open and try again.\n", saveErr.Path)
	case errors.As(err, &openErr) && openErr.Mode == xlsheet.ModeCreate:
		fmt.Fprintf(w, "Failed to create %s: %v\n", openErr.Path, openErr.Err)
	case errors.As(err, &openErr):
		fmt.Fprintf(w, "Failed to load %s.\nPlease check if the document exists and try again.\n", openErr.Path)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
