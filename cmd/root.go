// Package cmd implements the CLI commands for mixnorm using Cobra.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "mixnorm",
	Short: "mixnorm: normalize generated field content into sanitized HTML",
	Long: `mixnorm converts raw field content (markdown, plain text, HTML or FAQ
payloads) into its canonical form: sanitized HTML, a plain-text projection
and word/character counts.

Usage:
  mixnorm normalize [file] [flags]
  mixnorm batch <outputs.json>... [flags]`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the stderr console logger shared by all commands.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
}
