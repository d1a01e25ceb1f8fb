package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
)

// renderCommand creates the render command for materializing plan documents.
func (c *CLI) renderCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a plan document into a deck artifact",
		Long: `Render a plan document into a deck artifact.

The render command takes a plan.json file (produced by 'plan') and runs the
presentation sink for the chosen format. Planning decisions are taken from
the file as-is, so hand-edited plans render exactly as written.

Examples:
  slidesmith render talk.plan.json            # talk.pptx
  slidesmith render talk.plan.json -f svg     # wireframe sheet
  slidesmith render talk.plan.json -f text    # terminal outline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", pipeline.DefaultFormat, "output format: pptx (default), json, text, svg")
	cmd.Flags().StringVar(&opts.Author, "author", "", "author stamped into document properties")

	return cmd
}

// runRender loads the plan document and writes the rendered artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	doc, err := pkgio.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plans %s: %w", input, err)
	}

	if err := pipeline.ValidateFormat(opts.Format); err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	opts.Logger = c.Logger

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Format))
	spinner.Start()

	artifact, err := runner.Render(ctx, doc.Deck(), doc.Plans, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "-" {
		_, err := os.Stdout.Write(artifact)
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = derivedOutput(input, artifactExt(opts.Format))
	}

	if err := writeArtifact(artifact, outputPath); err != nil {
		return err
	}

	printSuccess("Artifact rendered")
	printFile(outputPath)

	return nil
}
