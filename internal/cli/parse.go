package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local"
)

// parseCommand creates the parse command for extracting the deck model.
func (c *CLI) parseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [source.md|dir]",
		Short: "Parse outline markdown into a deck JSON file",
		Long: `Parse outline markdown into a deck JSON file.

The parse command runs the parser only. Malformed constructs degrade to
plain text and are reported as warnings, never as errors. The resulting
deck.json can be fed to 'plan' or edited by hand.

Examples:
  slidesmith parse talk.md                  # deck JSON on stdout
  slidesmith parse talk.md -o talk.deck.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return c.runParse(cmd.Context(), source, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse parses the source and writes the deck model as JSON.
func (c *CLI) runParse(ctx context.Context, source, output string) error {
	path, err := local.Resolve(source)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source %s: %w", path, err)
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	prog := newProgress(c.Logger)
	d, err := runner.Parse(ctx, src, pipeline.Options{Source: path, Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d slides with %d items", len(d.Slides), d.ItemCount()))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteDeck(d, out); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Deck parsed")
		printFile(output)
		if len(d.Warnings) > 0 {
			printWarning("%d parse warnings", len(d.Warnings))
		}
		printNewline()
		printNextStep("Plan layouts", "slidesmith plan "+output)
	}

	return nil
}
