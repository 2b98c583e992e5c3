package cli

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/ngforge-dev/ngforge/internal/config"
	"github.com/ngforge-dev/ngforge/internal/npm"
	"github.com/ngforge-dev/ngforge/internal/resolver"
	"github.com/spf13/cobra"
)

var resolveRegistry string

func init() {
	resolveCmd.Flags().StringVar(&resolveRegistry, "registry", "", "npm registry base URL (default: configured registry)")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <angular-version>",
	Short: "Preview package resolution for an Angular version",
	Long: `Resolve the auxiliary library set against the npm registry for the given
Angular version and print the version picked for each package, without
creating a project or installing anything.

Example:
  ngforge resolve 17.0.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if _, err := semver.NewVersion(target); err != nil {
			return fmt.Errorf("invalid Angular version %q: %w", target, err)
		}

		base := resolveRegistry
		if base == "" {
			base = config.RegistryURL()
		}

		client := npm.New(base)
		r := resolver.New(client, resolver.WithWarningWriter(cmd.ErrOrStderr()))
		result := r.Resolve(target, resolver.DefaultRequests())

		printResolution(cmd.OutOrStdout(), target, result)
		return nil
	},
}

// printResolution renders a resolution result for human consumption.
func printResolution(w io.Writer, target string, result resolver.Result) {
	fmt.Fprintf(w, "Resolution for Angular %s:\n", target)
	for _, pkg := range result.Packages {
		fmt.Fprintf(w, "  %s\n", pkg)
	}
	if result.ForceInstall {
		fmt.Fprintln(w, "Peer conflicts detected: install would use --legacy-peer-deps.")
	} else {
		fmt.Fprintln(w, "No peer conflicts detected.")
	}
}
