package cli

import (
	"fmt"
	"io"

	"github.com/ngforge-dev/ngforge/internal/shell"
	"github.com/spf13/cobra"
)

// requiredTools are the external commands ngforge shells out to.
var requiredTools = []string{"node", "npm", "npx", "git"}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are available",
	Long:  `Verify that node, npm, npx, and git are present on PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		missing := printToolChecks(cmd.OutOrStdout(), shell.LookTool)
		if missing > 0 {
			return fmt.Errorf("%d required tool(s) missing", missing)
		}
		return nil
	},
}

// printToolChecks reports tool availability to w and returns the number of
// missing tools. The probe is injected so tests don't depend on the host PATH.
func printToolChecks(w io.Writer, probe func(string) bool) int {
	fmt.Fprintln(w, "Toolchain check:")
	missing := 0
	for _, tool := range requiredTools {
		if probe(tool) {
			fmt.Fprintf(w, "  [ OK ] %s\n", tool)
		} else {
			fmt.Fprintf(w, "  [MISS] %s is not on PATH\n", tool)
			missing++
		}
	}
	return missing
}
