package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/readmerator/pkg/readme"
)

// urlCommand creates the url command for direct document fetches.
func (c *CLI) urlCommand() *cobra.Command {
	var (
		name      string
		outputDir = defaultOutputDir
	)

	cmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Fetch one README from a direct URL",
		Long: `Fetch a documentation file from an arbitrary URL and save it under the
output directory. GitHub repository URLs resolve to the repo's README by
probing its default branches; file URLs are fetched as-is.`,
		Example: `  # Repository URL: resolves to the README
  readmerator url https://github.com/psf/requests

  # Direct file URL, stored under a custom name
  readmerator url https://raw.githubusercontent.com/golang/go/master/README.md --name go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runURL(cmd.Context(), args[0], name, outputDir)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "output name, derived from the URL when empty")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", outputDir, "directory for fetched READMEs")

	return cmd
}

// runURL fetches a single document and stores it flat in the output
// directory.
func (c *CLI) runURL(ctx context.Context, rawURL, name, outputDir string) error {
	var spin *Spinner
	if !c.verbose() {
		spin = newSpinner(ctx, "Fetching "+rawURL)
		spin.Start()
	}
	prog := newProgress(c.Logger)
	art, err := readme.FetchURL(ctx, rawURL)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	if name == "" {
		name = readme.NameFromURL(rawURL)
	}
	path, err := readme.NewStore(outputDir).WriteNamed(name, art)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %d bytes", len(art.Content)))

	printSuccess("Saved README")
	printFile(path)
	return nil
}
