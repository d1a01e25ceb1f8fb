package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	pkgio "github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/io"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local"
)

// planCommand creates the plan command for computing layout plans.
func (c *CLI) planCommand() *cobra.Command {
	var (
		output string
		tables string
	)

	cmd := &cobra.Command{
		Use:   "plan [deck.json|source.md]",
		Short: "Compute layout plans for a deck",
		Long: `Compute layout plans for a deck.

The plan command takes a deck.json file (produced by 'parse') or raw outline
markdown and decides which layout template each slide receives. The output
is a plan.json file that can be rendered with the 'render' command.

Examples:
  slidesmith plan talk.deck.json -o talk.plan.json
  slidesmith plan talk.md                            # parse and plan in one step
  slidesmith plan talk.md --config tables.toml       # custom planner tables`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return c.runPlan(cmd.Context(), input, output, tables)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&tables, "config", "", "planner tables TOML file")

	return cmd
}

// runPlan loads or parses the deck, plans layouts, and writes the plan document.
func (c *CLI) runPlan(ctx context.Context, input, output, tables string) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	d, _, err := loadDeck(ctx, runner, input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	plans, err := runner.Plan(ctx, d, pipeline.Options{TablesPath: tables, Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %d slides", len(plans)))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	doc := pkgio.PlanDocument{Meta: d.Meta, Plans: plans}
	if err := pkgio.WritePlans(doc, out); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Layout planned")
		printFile(output)
		printDetail("%s", templateSummary(plans))
		printNewline()
		printNextStep("Render", "slidesmith render "+output)
	}

	return nil
}

// loadDeck reads a deck from input: deck JSON when the file has a .json
// extension, parsed outline markdown otherwise. It returns the deck and the
// resolved source path.
func loadDeck(ctx context.Context, runner *pipeline.Runner, input string) (deck.Deck, string, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		d, err := pkgio.ReadDeckFile(input)
		if err != nil {
			return deck.Deck{}, "", fmt.Errorf("load deck %s: %w", input, err)
		}
		return d, input, nil
	}

	path, err := local.Resolve(input)
	if err != nil {
		return deck.Deck{}, "", err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return deck.Deck{}, "", fmt.Errorf("read source %s: %w", path, err)
	}
	d, err := runner.Parse(ctx, src, pipeline.Options{Source: path})
	if err != nil {
		return deck.Deck{}, "", err
	}
	return d, path, nil
}

// templateSummary formats the template distribution of plans on one line.
func templateSummary(plans []plan.LayoutPlan) string {
	counts := map[plan.Template]int{}
	for _, p := range plans {
		counts[p.Template]++
	}

	var parts []string
	for _, tmpl := range []plan.Template{plan.TemplateDiagram, plan.TemplateSplitShot, plan.TemplateFullText} {
		if n := counts[tmpl]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, tmpl))
		}
	}
	if len(parts) == 0 {
		return "no slides"
	}
	return strings.Join(parts, " · ")
}
