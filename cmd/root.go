package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/tocview/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tocview",
	Short: "Browse and search a hierarchical table of contents",
	Long: `tocview builds a navigable tree from a flat table-of-contents dataset
(pages keyed by id, each listing its child page ids) and filters it by a
case- and diacritic-insensitive search, keeping the path to every match.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tocview %s\n", version.String()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger returns the CLI logger, writing text records to stderr.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// dataPathArg resolves the dataset path from args or TOCVIEW_DATA.
func dataPathArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if env := os.Getenv("TOCVIEW_DATA"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no dataset given: pass a file or set TOCVIEW_DATA")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
