// Package main provides the matchvariants command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Elijah-Bradford/pgsc-calc-addedhomref/internal/match"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printHint(err)
		return ExitError
	}
	return ExitSuccess
}

// printHint prints actionable guidance for the fatal matching errors.
func printHint(err error) {
	var overlapErr *match.OverlapError
	switch {
	case errors.Is(err, match.ErrNoMatches):
		fmt.Fprintf(os.Stderr, "Hint: Check that the target and scoring files use the same genome build\n")
		fmt.Fprintf(os.Stderr, "Hint: Try imputing microarray data if it doesn't cover the scoring variants well\n")
	case errors.As(err, &overlapErr):
		fmt.Fprintf(os.Stderr, "Hint: Lower --min-overlap only if partial score coverage is acceptable for your analysis\n")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matchvariants",
		Short: "Match scoring-file variants against a genotyped target dataset",
		Long: `matchvariants matches genetic variants from combined scoring files
against a target set of genotyped variants, reconciling strand orientation
differences, and writes scorefiles ready for dosage scoring.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)
	root.AddCommand(newMatchCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.matchvariants.yaml when present and sets defaults.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".matchvariants")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("match.min_overlap", 0.75)
	viper.SetDefault("match.keep_ambiguous", false)

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
