// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"portrait-cli/internal/config"
	"portrait-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// manifestFlag allows specifying a custom manifest path
	manifestFlag string

	// cfg is the loaded application configuration.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "portrait",
		Short: "Keeps project metadata sources in agreement",
		Long: TitleStyle.Render("portrait") + SubtitleStyle.Render(" - keeps project metadata sources in agreement") + `

portrait cross-validates a project's declarative manifest (project.toml)
against its generated metadata module (metadata.go): package identity,
version, homepage, author, and shell command must stay textually identical
across both sources.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Declare your metadata directory under [tool.portrait.build]
  2. Keep a metadata.go with the seven portrait constants
  3. Run: portrait check

` + SubtitleStyle.Render("Examples:") + `
  portrait check            Cross-validate manifest and metadata file
  portrait info             Run the metadata module's PrintInfo diagnostic
  portrait manifest         Show the parsed manifest
  portrait serve            Serve the consistency report over SSH`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/portrait/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", "", "manifest file (default is ./project.toml)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(serveCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang.Execute provides enhanced Cobra styling; the version goes through
	// fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded == nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// manifestPath resolves the manifest location: flag, then config, then the
// conventional default.
func manifestPath() string {
	if manifestFlag != "" {
		return manifestFlag
	}
	if cfg != nil && cfg.ManifestPath != "" {
		return cfg.ManifestPath
	}
	return "project.toml"
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// explain renders the issue catalog entry for id to stderr. Rendering
// failures fall back to the raw markdown.
func explain(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	out, err := entry.Render("auto")
	if err != nil {
		out = string(entry.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, out)
}
