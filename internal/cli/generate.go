package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local"
)

// generateCommand creates the generate command for running the full pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [source.md|dir]",
		Short: "Generate a deck artifact from outline markdown",
		Long: `Generate a deck artifact from outline markdown.

The generate command runs the full pipeline: parse the markdown into a deck,
plan a layout template per slide, and render the chosen format. When the
argument is a directory, the best candidate markdown file is discovered
automatically (slides.md, presentation.md, or the first file with slide
headings).

Rendered artifacts are cached locally for faster subsequent runs.

Examples:
  slidesmith generate talk.md                      # talk.pptx next to the source
  slidesmith generate talk.md -f svg               # wireframe sheet
  slidesmith generate . -o deck.pptx               # discover source in a directory
  slidesmith generate talk.md --config tables.toml # custom planner tables`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return c.runGenerate(cmd.Context(), source, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <source>.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Pipeline flags
	cmd.Flags().StringVarP(&opts.Format, "format", "f", pipeline.DefaultFormat, "output format: pptx (default), json, text, svg")
	cmd.Flags().StringVar(&opts.Author, "author", "", "author stamped into document properties")
	cmd.Flags().StringVar(&opts.TablesPath, "config", "", "planner tables TOML file")
	cmd.Flags().BoolVar(&opts.NoPlaceholders, "no-placeholders", opts.NoPlaceholders, "plan every slide as full-text")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache")

	return cmd
}

// runGenerate resolves the source, executes the pipeline, and writes output.
func (c *CLI) runGenerate(ctx context.Context, source string, opts pipeline.Options, output string, noCache bool) error {
	path, err := local.Resolve(source)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source %s: %w", path, err)
	}

	if err := pipeline.ValidateFormat(opts.Format); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Source = path

	spinner := newSpinner(ctx, fmt.Sprintf("Generating %s deck...", opts.Format))
	spinner.Start()

	res, err := runner.Execute(ctx, src, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate deck: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = derivedOutput(path, artifactExt(res.Format))
	}

	if err := writeArtifact(res.Artifact, outputPath); err != nil {
		return err
	}

	printSuccess("Deck generated")
	printFile(outputPath)
	printStats(res.Stats.SlideCount, res.Stats.ItemCount, res.CacheHit)
	printNewline()
	printNextStep("Preview", "slidesmith serve "+path)

	return nil
}
