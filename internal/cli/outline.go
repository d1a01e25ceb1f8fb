package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/render/outline"
)

// outlineFormats are the output formats the outline command supports.
// They are separate from the pipeline formats: the deck map is a Graphviz
// product, not a presentation artifact.
var outlineFormats = []string{"svg", "png", "dot"}

// outlineCommand creates the outline command for rendering the deck map.
func (c *CLI) outlineCommand() *cobra.Command {
	var (
		output   string
		format   string
		clusters bool
	)

	cmd := &cobra.Command{
		Use:   "outline [source.md|deck.json]",
		Short: "Render the deck map as a Graphviz diagram",
		Long: `Render the deck map as a Graphviz diagram.

The outline command draws one node per slide, colored by layout template and
chained in presentation order. With --clusters, slides sharing a template are
grouped into ranked clusters.

Examples:
  slidesmith outline talk.md                  # talk.svg deck map
  slidesmith outline talk.md -f png
  slidesmith outline talk.deck.json -f dot    # raw DOT source`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return c.runOutline(cmd.Context(), input, format, output, clusters)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&clusters, "clusters", false, "group slides by template")

	return cmd
}

// runOutline builds the deck map and writes it in the chosen format.
func (c *CLI) runOutline(ctx context.Context, input, format, output string, clusters bool) error {
	if err := errors.ValidateFormat(format, outlineFormats...); err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	d, path, err := loadDeck(ctx, runner, input)
	if err != nil {
		return err
	}
	plans, err := runner.Plan(ctx, d, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return err
	}

	var dotOpts []outline.Option
	if clusters {
		dotOpts = append(dotOpts, outline.WithClusters())
	}
	dot := outline.ToDOT(d, plans, dotOpts...)

	var data []byte
	switch format {
	case "dot":
		data = dot
	case "svg", "png":
		spinner := newSpinner(ctx, "Rendering deck map...")
		spinner.Start()
		if format == "svg" {
			data, err = outline.RenderSVG(ctx, dot)
		} else {
			data, err = outline.RenderPNG(ctx, dot)
		}
		if err != nil {
			spinner.StopWithError("Deck map failed")
			return err
		}
		spinner.Stop()
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = derivedOutput(path, "."+format)
	}

	if err := writeArtifact(data, outputPath); err != nil {
		return err
	}

	printSuccess("Deck map rendered")
	printFile(outputPath)
	printDetail("%s", templateSummary(plans))

	return nil
}
