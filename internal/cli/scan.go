package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readmerator/pkg/scan"
)

// scanOpts holds flag values for the scan command.
type scanOpts struct {
	recursive bool
	maxDepth  int
	asJSON    bool
}

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{recursive: true, maxDepth: -1}

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List dependencies declared in a project",
		Long: `Scan a project directory for dependency manifests and list the declared
packages per ecosystem without fetching anything.`,
		Example: `  # See what fetch would pick up
  readmerator scan

  # Machine-readable output
  readmerator scan --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runScan(dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.recursive, "recursive", opts.recursive, "scan subdirectories for manifests")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "maximum scan depth, negative for unlimited")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

// runScan lists the project's declared dependencies.
func (c *CLI) runScan(dir string, opts scanOpts) error {
	result, err := scan.Scan(dir, scan.Options{Recursive: opts.recursive, MaxDepth: opts.maxDepth})
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Total() == 0 {
		printInfo("No dependencies found in %s", dir)
		return nil
	}
	for _, eco := range ecosystems {
		names := result[eco]
		if len(names) == 0 {
			continue
		}
		printInfo("%s (%d)", eco, len(names))
		for _, name := range names {
			printDetail("%s", name)
		}
	}
	printNewline()
	printNextStep("Fetch their docs", fmt.Sprintf("%s fetch %s", appName, dir))
	return nil
}
