// Package cmd provides Cobra CLI commands for browse.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/browse/internal/cli"
	"github.com/bnema/browse/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "browse",
		Short: "Tab sessions, downloads and places for a small browser",
		Long: `browse keeps the state a browser carries between runs.

It saves and restores tab histories, runs downloads into the journal
and keeps visited and bookmarked places. Everything lives in one SQLite
database under the XDG data directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "browse %s\n", buildInfo.Version)
		_, _ = fmt.Fprintf(out, "commit:  %s\n", buildInfo.Commit)
		_, _ = fmt.Fprintf(out, "built:   %s\n", buildInfo.BuildDate)
		_, _ = fmt.Fprintf(out, "go:      %s\n", buildInfo.GoVersion)
		_, _ = fmt.Fprintf(out, "source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
