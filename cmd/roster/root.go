package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions holds flag values and the viper instance for one command tree.
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	outFile string
	verbose bool
	noColor bool
}

// flagKeys maps CLI flags to configuration keys. Environment variables use
// the key with a ROSTER_ prefix, e.g. ROSTER_GRADES_MAX.
var flagKeys = map[string]string{
	"input":        "input.path",
	"sheet":        "input.sheet",
	"name-column":  "input.name_column",
	"grade-column": "input.grade_column",
	"min-grade":    "grades.min",
	"max-grade":    "grades.max",
	"format":       "output.format",
	"highlight":    "output.highlight",
}

// newRootCmd builds the application command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Report student grades from a roster file",
		Long: `Roster reads student names and grades from a CSV (or .xlsx) file,
drops malformed and out-of-range rows, and prints the valid records sorted
by name together with their average.

With no flags it reads estudiantes_notas.csv from the current directory.
Grades outside the accepted range are reported on stderr; rows with a
missing name or a non-numeric grade are skipped silently.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.roster.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	// Input
	cmd.Flags().StringP("input", "i", "", "Roster file to read (default: estudiantes_notas.csv)")
	cmd.Flags().String("sheet", "", "Worksheet to read from .xlsx input (default: first sheet)")
	cmd.Flags().String("name-column", "", "Header of the name column (default: Nombre)")
	cmd.Flags().String("grade-column", "", "Header of the grade column (default: Nota)")
	cmd.Flags().Float64("min-grade", 0, "Lowest valid grade (default: 0.0)")
	cmd.Flags().Float64("max-grade", 0, "Highest valid grade (default: 5.0)")

	// Output
	cmd.Flags().String("format", "", "Output format: table, json, yaml (default: table)")
	cmd.Flags().StringVarP(&opts.outFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().String("highlight", "", "Highlight rows matching an expression (e.g. \"grade < 3.0\")")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	for flag, key := range flagKeys {
		_ = opts.v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
	opts.v.SetEnvPrefix("ROSTER")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	opts.v.AutomaticEnv()

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// configPath returns the --config value or $HOME/.roster.yaml.
func (o *rootOptions) configPath() string {
	if o.cfgFile != "" {
		return o.cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("failed to find home directory", "error", err)
		return ""
	}
	return filepath.Join(home, ".roster.yaml")
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
