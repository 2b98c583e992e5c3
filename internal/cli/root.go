package cli

import (
	"os"

	"github.com/ngforge-dev/ngforge/internal/branding"
	"github.com/ngforge-dev/ngforge/internal/config"
	"github.com/ngforge-dev/ngforge/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new Angular application, resolves auxiliary libraries
whose peer dependencies match the chosen Angular version, installs them, and
optionally provisions a GitHub repository with the initial commit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the update banner for commands that manage their own output.
		name := cmd.Name()
		if name == "version" || name == "config" || name == "get" || name == "set" {
			return
		}
		if config.Get(config.KeyUpdateCheck) == "false" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
