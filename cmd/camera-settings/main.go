// Package main provides the CLI entrypoint for camera-settings.
//
// camera-settings validates the camera control mouse mappings of a settings
// file:
//   - Parses the file (JSON with comments, or YAML) in document order
//   - Builds the look/pan/zoom mapping table, falling back to defaults
//   - Reports every problem found, with "did you mean" hints
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"camera-settings/internal/config"
	"camera-settings/internal/diagnostic"
	"camera-settings/internal/mapping"
	"camera-settings/internal/report"
)

var version = "0.1.0"

// exitStatus carries a non-zero exit code that is not a failure to run.
type exitStatus struct {
	code int
	err  error
}

func (e *exitStatus) Error() string { return e.err.Error() }

func (e *exitStatus) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var status *exitStatus
		if errors.As(err, &status) {
			os.Exit(status.code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath    string
	strict        bool
	noColor       bool
	noSuggestions bool
	stream        bool
	dump          bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "camera-settings [file]",
		Short: "Validate camera control mouse mappings",
		Long: `camera-settings reads a settings file and resolves the mouse mappings
for the look, pan and zoom camera controls.

Invalid or unknown entries are reported and never abort the run: a rejected
mapping keeps its default. The file defaults to settings.json, or to
settings_path from the config file.

Config files (TOML, last wins):
  ~/.config/camera-settings/config.toml
  ./camera-settings.toml

Examples:
  camera-settings                      # Validate ./settings.json
  camera-settings game/settings.yaml   # Validate a YAML settings file
  camera-settings --strict             # Exit with status 2 on errors
  camera-settings --dump               # Print the raw mapping table`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file to load after the default locations")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with status 2 when any error is reported")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")
	cmd.Flags().BoolVar(&opts.noSuggestions, "no-suggestions", false, "Hide \"did you mean\" hints")
	cmd.Flags().BoolVar(&opts.stream, "stream", false, "Log diagnostics to stderr as they are found")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the resolved mapping table structure")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	path := cfg.SettingsPath
	if len(args) > 0 {
		path = args[0]
	}

	suggestions := cfg.SuggestionsEnabled() && !opts.noSuggestions

	var diags diagnostic.Diagnostics

	var r diagnostic.Reporter = &diags
	if opts.stream {
		logReporter := diagnostic.NewLogReporter(log.New(cmd.ErrOrStderr(), "camera-settings: ", 0))
		if !suggestions {
			logReporter = logReporter.WithoutSuggestions()
		}

		r = diagnostic.Tee(&diags, logReporter)
	}

	m, err := mapping.LoadFile(path, r)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.dump {
		report.Dump(out, m)
		fmt.Fprintln(out)
	}

	report.New(out, report.Options{
		Color:       cfg.ColorEnabled() && !opts.noColor,
		Suggestions: suggestions,
	}).Print(m, diags)

	if (cfg.Strict || opts.strict) && diags.HasErrors() {
		return &exitStatus{code: 2, err: diags.Err()}
	}

	return nil
}
