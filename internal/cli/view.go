package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/matzehuels/readmerator/pkg/manifest"
	"github.com/matzehuels/readmerator/pkg/readme"
)

// viewOpts holds flag values for the view command.
type viewOpts struct {
	outputDir string
	width     int
	raw       bool
}

// viewCommand creates the view command for rendering fetched READMEs.
func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{outputDir: defaultOutputDir, width: 100}

	cmd := &cobra.Command{
		Use:   "view <ecosystem> <package>",
		Short: "Render a fetched README in the terminal",
		Example: `  # Pretty-print the stored docs for requests
  readmerator view python requests

  # Raw file content, header included
  readmerator view npm react --raw`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory of fetched READMEs")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "word wrap width")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print the stored file without rendering")

	return cmd
}

// runView renders one stored README.
func runView(ecosystem, pkg string, opts viewOpts) error {
	eco := manifest.Ecosystem(strings.ToLower(ecosystem))
	switch eco {
	case manifest.Python, manifest.NPM:
	default:
		return fmt.Errorf("unknown ecosystem %q, expected python or npm", ecosystem)
	}

	path := readme.NewStore(opts.outputDir).Path(eco, pkg)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no fetched README for %s/%s, run %q first", eco, pkg, appName+" fetch")
		}
		return err
	}

	if opts.raw {
		fmt.Print(string(data))
		return nil
	}

	fmt.Println(StyleTitle.Render(pkg) + " " + StyleDim.Render(path))
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(opts.width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	fmt.Print(out)
	return nil
}
