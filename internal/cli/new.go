package cli

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/ngforge-dev/ngforge/internal/blueprint"
	"github.com/ngforge-dev/ngforge/internal/config"
	"github.com/ngforge-dev/ngforge/internal/generator"
	"github.com/ngforge-dev/ngforge/internal/gitrepo"
	"github.com/ngforge-dev/ngforge/internal/installer"
	"github.com/ngforge-dev/ngforge/internal/npm"
	"github.com/ngforge-dev/ngforge/internal/project"
	"github.com/ngforge-dev/ngforge/internal/resolver"
	"github.com/ngforge-dev/ngforge/internal/shell"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	newAngularVersion string
	newStyle          string
	newDirectory      string
	newPackageManager string
	newCreateRemote   bool
	newPrivate        bool
	newSkipInstall    bool
	newBlueprintPath  string
	newDryRun         bool
	newRegistry       string
)

func init() {
	newCmd.Flags().StringVar(&newAngularVersion, "angular-version", "", "Target Angular version (prompted if omitted)")
	newCmd.Flags().StringVar(&newStyle, "style", "", "Stylesheet format: css, scss, sass, less")
	newCmd.Flags().StringVar(&newDirectory, "directory", "", "Destination directory (default: ./<name>)")
	newCmd.Flags().StringVar(&newPackageManager, "package-manager", "", "Package manager: npm, yarn, pnpm")
	newCmd.Flags().BoolVar(&newCreateRemote, "create-remote", false, "Create a GitHub repository and push the initial commit")
	newCmd.Flags().BoolVar(&newPrivate, "private", false, "Make the created repository private")
	newCmd.Flags().BoolVar(&newSkipInstall, "skip-install", false, "Resolve packages but skip the install step")
	newCmd.Flags().StringVar(&newBlueprintPath, "blueprint", "", "Path to an ngforge.yaml blueprint")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print the resolution result and exit without scaffolding")
	newCmd.Flags().StringVar(&newRegistry, "registry", "", "npm registry base URL (default: configured registry)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new Angular application",
	Long: `Scaffold a new Angular application with version-matched auxiliary libraries.

The Angular CLI generates the skeleton, then each auxiliary library is
resolved against the npm registry to the version whose peer dependency on
@angular/core matches the target version. When two libraries disagree on a
shared peer dependency the install runs with --legacy-peer-deps.

Examples:
  ngforge new my-shop --angular-version 17.0.0 --style scss
  ngforge new my-shop --angular-version 17.0.0 --create-remote --private
  ngforge new --blueprint ngforge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	spec, requests, pm, err := gatherNewSpec(cmd, args)
	if err != nil {
		return err
	}

	registryBase := newRegistry
	if registryBase == "" {
		registryBase = config.RegistryURL()
	}
	client := npm.New(registryBase)
	res := resolver.New(client, resolver.WithWarningWriter(cmd.ErrOrStderr()))

	if newDryRun {
		result := res.Resolve(spec.AngularVersion, requests)
		printResolution(cmd.OutOrStdout(), spec.AngularVersion, result)
		return nil
	}

	exec := &shell.Executor{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}

	creator := &project.Creator{
		Generator: generator.New(exec),
		Resolver:  res,
		Installer: installer.New(exec, pm),
		Remote:    gitrepo.NewGitHub(config.GitHubToken()),
		Pusher:    gitrepo.NewPusher(exec),
		Out:       cmd.OutOrStdout(),
	}
	return creator.Create(cmd.Context(), *spec)
}

// gatherNewSpec merges blueprint values, flags, and interactive answers into
// a project spec. Explicit flags win over blueprint values.
func gatherNewSpec(cmd *cobra.Command, args []string) (*project.Spec, []resolver.Request, string, error) {
	var bp *blueprint.Blueprint
	if newBlueprintPath != "" {
		parsed, err := blueprint.ParseFile(newBlueprintPath)
		if err != nil {
			return nil, nil, "", err
		}
		bp = parsed
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else if bp != nil {
		name = bp.Name
	}
	if name == "" {
		return nil, nil, "", fmt.Errorf("project name required: pass it as an argument or in the blueprint")
	}
	if !namePattern.MatchString(name) {
		return nil, nil, "", fmt.Errorf("invalid project name %q: use lowercase letters, digits, and hyphens", name)
	}

	angularVersion := newAngularVersion
	if angularVersion == "" && bp != nil {
		angularVersion = bp.Angular
	}
	if angularVersion == "" {
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, err := promptLine(reader, cmd.ErrOrStderr(), "Target Angular version (e.g. 17.0.0)", "")
		if err != nil {
			return nil, nil, "", err
		}
		angularVersion = answer
	}
	if _, err := semver.NewVersion(angularVersion); err != nil {
		return nil, nil, "", fmt.Errorf("invalid Angular version %q: %w", angularVersion, err)
	}

	style := newStyle
	if style == "" && bp != nil {
		style = bp.Style
	}
	if style == "" {
		style = config.GetDefault(config.KeyDefaultStyle, "css")
	}

	pm := newPackageManager
	if pm == "" && bp != nil {
		pm = bp.PackageManager
	}
	if pm == "" {
		pm = config.GetDefault(config.KeyPackageManager, installer.NPM)
	}

	requests := resolver.DefaultRequests()
	if bp != nil {
		requests = bp.Requests()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, "", fmt.Errorf("resolving working directory: %w", err)
	}

	spec := &project.Spec{
		Name:           name,
		AngularVersion: angularVersion,
		Style:          style,
		Directory:      newDirectory,
		WorkDir:        workDir,
		Requests:       requests,
		SkipInstall:    newSkipInstall,
		CreateRemote:   newCreateRemote,
		Private:        newPrivate,
	}
	if bp != nil {
		if !newCreateRemote {
			spec.CreateRemote = bp.Repo.Create
		}
		if !newPrivate {
			spec.Private = bp.Repo.Private
		}
		spec.Description = bp.Repo.Description
	}
	return spec, requests, pm, nil
}
