package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readmerator/pkg/readme"
	"github.com/matzehuels/readmerator/pkg/scan"
)

// fetchOpts holds flag values for the fetch command.
type fetchOpts struct {
	outputDir string
	source    string
	recursive bool
	maxDepth  int
	noCache   bool
	refresh   bool
}

// fetchCommand creates the fetch command.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{
		outputDir: defaultOutputDir,
		recursive: true,
		maxDepth:  -1,
	}

	cmd := &cobra.Command{
		Use:   "fetch [dir]",
		Short: "Fetch READMEs for every dependency of a project",
		Long: `Scan a project directory for dependency manifests (requirements.txt,
pyproject.toml, setup.py, setup.cfg, Pipfile, environment.yml, package.json),
resolve each declared package to its documentation, and save one markdown
file per package under the output directory.`,
		Example: `  # Fetch docs for the current project
  readmerator fetch

  # Fetch docs for another project into a custom folder
  readmerator fetch ~/code/myapp -o docs/deps

  # Parse a single manifest instead of scanning
  readmerator fetch --source backend/requirements.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runFetch(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for fetched READMEs")
	cmd.Flags().StringVar(&opts.source, "source", "", "parse a single manifest file instead of scanning")
	cmd.Flags().BoolVar(&opts.recursive, "recursive", opts.recursive, "scan subdirectories for manifests")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum scan depth, negative for unlimited")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached registry responses")

	return cmd
}

// runFetch scans for dependencies and fetches documentation for all of them.
func (c *CLI) runFetch(ctx context.Context, dir string, opts fetchOpts) error {
	packages, err := collectPackages(dir, opts)
	if err != nil {
		return err
	}

	total := packages.Total()
	if total == 0 {
		printInfo("No dependencies found in %s", dir)
		return nil
	}
	for _, eco := range ecosystems {
		if n := len(packages[eco]); n > 0 {
			printInfo("Found %d %s packages", n, eco)
		}
	}

	resolver, err := c.newResolver(opts.noCache, opts.refresh)
	if err != nil {
		return err
	}
	fetcher := &readme.Fetcher{
		Resolver: resolver,
		Store:    readme.NewStore(opts.outputDir),
		Logger:   c.Logger.Debugf,
	}

	var spin *Spinner
	if !c.verbose() {
		spin = newSpinner(ctx, fmt.Sprintf("Fetching %d READMEs...", total))
		spin.Start()
	}
	prog := newProgress(c.Logger)
	results := fetcher.FetchAll(ctx, packages)
	if spin != nil {
		spin.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %d of %d READMEs", results.Succeeded(), total))

	c.printFetchSummary(results)
	printNewline()
	printSuccess("READMEs saved to %s", opts.outputDir)
	printNextStep("Browse one", fmt.Sprintf("%s view <ecosystem> <package>", appName))
	return nil
}

// collectPackages resolves the fetch target: a single named manifest with
// --source, otherwise a directory scan.
func collectPackages(dir string, opts fetchOpts) (scan.Result, error) {
	if opts.source != "" {
		return scan.ScanFile(opts.source, nil)
	}
	return scan.Scan(dir, scan.Options{Recursive: opts.recursive, MaxDepth: opts.maxDepth})
}

// printFetchSummary prints per-ecosystem counts, listing failed packages
// unless verbose tracing already showed them.
func (c *CLI) printFetchSummary(results readme.Results) {
	for _, eco := range ecosystems {
		pkgs := results[eco]
		if len(pkgs) == 0 {
			continue
		}
		failed := results.FailedNames(eco)
		summary := fmt.Sprintf("%d fetched", len(pkgs)-len(failed))
		if len(failed) > 0 {
			summary += fmt.Sprintf(" %s %d failed", iconArrow, len(failed))
		}
		printKeyValue(eco.String(), summary)
		if c.verbose() {
			continue
		}
		for _, name := range failed {
			printFailedPackage(name)
		}
	}
}
