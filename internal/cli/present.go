package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/pipeline"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/source/local"
)

// Badge styles keyed by layout template.
var badgeStyles = map[plan.Template]lipgloss.Style{
	plan.TemplateDiagram:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(colorWhite).Background(colorCyan),
	plan.TemplateSplitShot: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(colorWhite).Background(colorBlue),
	plan.TemplateFullText:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(colorWhite).Background(colorDim),
}

// presentCommand creates the present command for the terminal slideshow.
func (c *CLI) presentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present [source.md|dir]",
		Short: "Present the deck as a terminal slideshow",
		Long: `Present the deck as a terminal slideshow.

One slide per screen, rendered as styled markdown. The header shows the
layout template each slide was planned for, so placeholder slides are easy
to spot before exporting.

Keys: left/right or h/l to navigate, g/G for first/last slide, q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return c.runPresent(cmd.Context(), source)
		},
	}

	return cmd
}

// runPresent parses and plans the deck, then hands it to the slideshow model.
func (c *CLI) runPresent(ctx context.Context, source string) error {
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

	d, err := runner.Parse(ctx, src, pipeline.Options{Source: path, Logger: c.Logger})
	if err != nil {
		return err
	}
	if len(d.Slides) == 0 {
		return fmt.Errorf("no slides in %s", path)
	}
	plans, err := runner.Plan(ctx, d, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return err
	}

	m, err := newPresentModel(d, plans)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// PresentModel - Terminal slideshow
// =============================================================================

// defaultWrap is the markdown wrap width before the first resize message.
const defaultWrap = 80

// PresentModel is the bubbletea model for the slideshow.
type PresentModel struct {
	Deck   deck.Deck
	Plans  []plan.LayoutPlan
	Cursor int
	Width  int
	Height int

	renderer *glamour.TermRenderer
}

// newPresentModel creates a slideshow model positioned on the first slide.
func newPresentModel(d deck.Deck, plans []plan.LayoutPlan) (PresentModel, error) {
	r, err := newMarkdownRenderer(defaultWrap)
	if err != nil {
		return PresentModel{}, err
	}
	return PresentModel{
		Deck:     d,
		Plans:    plans,
		Width:    defaultWrap,
		renderer: r,
	}, nil
}

// newMarkdownRenderer builds a glamour renderer wrapping at the given width.
func newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

func (m PresentModel) Init() tea.Cmd {
	return nil
}

func (m PresentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "down", "j", "enter", " ", "pgdown":
			if m.Cursor < len(m.Plans)-1 {
				m.Cursor++
			}
		case "left", "h", "up", "k", "pgup":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Plans) - 1
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Rewrap markdown to the new width; keep the old renderer on failure.
		wrap := msg.Width - 4
		if wrap < 20 {
			wrap = 20
		}
		if r, err := newMarkdownRenderer(wrap); err == nil {
			m.renderer = r
		}
	}
	return m, nil
}

func (m PresentModel) View() string {
	if len(m.Plans) == 0 {
		return StyleDim.Render("No slides.")
	}

	p := m.Plans[m.Cursor]
	var b strings.Builder

	badge := badgeStyles[p.Template].Render(string(p.Template))
	title := StyleTitle.Render(fmt.Sprintf("Slide %d: %s", p.Slide.Number, deck.PlainText(p.Slide.Title)))
	b.WriteString(badge + "  " + title)
	b.WriteString("\n\n")

	b.WriteString(m.renderBody(p.Slide))

	if p.Placeholder != "" {
		// Instructions are multi-line; the headline is enough here.
		headline, _, _ := strings.Cut(p.Placeholder, "\n")
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(headline))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%d/%d", m.Cursor+1, len(m.Plans))))
	b.WriteString(StyleDim.Render("  ←/→ navigate  q quit"))

	return b.String()
}

// renderBody renders the slide content as styled markdown, falling back to
// the raw markdown when the terminal renderer fails.
func (m PresentModel) renderBody(s deck.Slide) string {
	md := slideMarkdown(s)
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// slideMarkdown rebuilds a markdown fragment from the slide body, preserving
// emphasis markers so the terminal renderer can style them.
func slideMarkdown(s deck.Slide) string {
	var b strings.Builder
	for _, item := range s.Content {
		switch item.Kind {
		case deck.KindSection:
			b.WriteString("### " + item.Text + "\n\n")
		case deck.KindBullet:
			b.WriteString("- " + item.Text + "\n")
		default:
			b.WriteString(item.Text + "\n\n")
		}
	}
	return b.String()
}
