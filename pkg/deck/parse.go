package deck

import (
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
)

// headingRE matches a slide heading on a trimmed line: a level-2 heading,
// the literal word Slide, an integer, a colon, and a non-empty title.
var headingRE = regexp.MustCompile(`^## Slide (\d+): (.+)$`)

// ruleAction tells the scanner what a matched body line produces.
type ruleAction int

const (
	actionSkip    ruleAction = iota // nothing
	actionSection                   // a Section item
	actionBullet                    // a Bullet item
	actionText                      // a Text item
	actionFence                     // discard until the closing fence
)

// bodyRule pairs a line predicate with its action. The table below is
// evaluated top to bottom; the first match wins.
type bodyRule struct {
	name   string
	match  func(line string) bool
	action ruleAction
}

// bodyRules is the ordered tokenization table for slide body lines. Lines
// are trimmed before matching. The two bullet rules produce identical items;
// both stay in the table so the precedence over plain bullets is explicit
// and independently testable.
var bodyRules = []bodyRule{
	{"blank", func(l string) bool { return l == "" }, actionSkip},
	{"section", func(l string) bool { return strings.HasPrefix(l, "### **") }, actionSection},
	{"bullet-bold", func(l string) bool {
		return strings.HasPrefix(l, "- **") || strings.HasPrefix(l, "* **")
	}, actionBullet},
	{"bullet", func(l string) bool {
		return strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ")
	}, actionBullet},
	{"fence", func(l string) bool { return strings.HasPrefix(l, "```") }, actionFence},
	{"heading", func(l string) bool { return strings.HasPrefix(l, "#") }, actionSkip},
	{"text", func(l string) bool { return true }, actionText},
}

// classify returns the first rule matching the trimmed line. The final text
// rule matches every line, so classification is total.
func classify(line string) bodyRule {
	for _, r := range bodyRules {
		if r.match(line) {
			return r
		}
	}
	return bodyRules[len(bodyRules)-1]
}

// sectionLabel strips the level-3 heading prefix and all bold markers.
func sectionLabel(line string) string {
	label := strings.TrimPrefix(line, "### ")
	return strings.TrimSpace(strings.ReplaceAll(label, "**", ""))
}

// bulletText strips the two-byte list marker, keeping emphasis markers.
func bulletText(line string) string {
	return strings.TrimSpace(line[2:])
}

// Parse scans a deck source and returns the parsed deck. It never fails:
// malformed input degrades to an empty or partial deck, and anything
// noteworthy lands in Deck.Warnings.
//
// An optional YAML frontmatter block is decoded into Deck.Meta first; the
// slide scanner runs on the remainder. Content outside slide regions
// (before the first heading, or between a "---" separator and the next
// heading) is ignored.
func Parse(src []byte) Deck {
	var d Deck

	body, offset := d.extractFrontmatter(src)
	lines := strings.Split(string(body), "\n")

	var slides []Slide
	cur := -1 // open slide index, -1 while outside a slide region
	inFence := false
	fenceLine := 0

	endFence := func() {
		if inFence {
			d.Warnings = append(d.Warnings, Warning{Line: fenceLine, Message: "unterminated code fence"})
			inFence = false
		}
	}

	for i, raw := range lines {
		lineNo := offset + i + 1
		line := strings.TrimSpace(raw)

		// Boundary detection runs before body tokenization, so headings
		// and separators close a slide even from inside an open fence.
		if m := headingRE.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				d.Warnings = append(d.Warnings, Warning{Line: lineNo, Message: "slide number out of range: " + m[1]})
				continue
			}
			endFence()
			slides = append(slides, Slide{Number: n, Title: strings.TrimSpace(m[2])})
			cur = len(slides) - 1
			continue
		}
		if cur == -1 {
			continue
		}
		if line == "---" {
			endFence()
			cur = -1
			continue
		}
		if inFence {
			if strings.HasPrefix(line, "```") {
				inFence = false
			}
			continue
		}

		switch rule := classify(line); rule.action {
		case actionSkip:
		case actionFence:
			inFence = true
			fenceLine = lineNo
		case actionSection:
			slides[cur].Content = append(slides[cur].Content, ContentItem{Kind: KindSection, Text: sectionLabel(line)})
		case actionBullet:
			slides[cur].Content = append(slides[cur].Content, ContentItem{Kind: KindBullet, Text: bulletText(line)})
		case actionText:
			slides[cur].Content = append(slides[cur].Content, ContentItem{Kind: KindText, Text: line})
		}
	}
	endFence()

	d.Slides = slides
	return d
}

// extractFrontmatter decodes an optional leading YAML block into d.Meta and
// returns the remaining source plus the number of consumed lines. A source
// without frontmatter passes through untouched; a malformed block is kept in
// the body (where it is ignored as pre-heading content) and noted as a
// warning.
func (d *Deck) extractFrontmatter(src []byte) ([]byte, int) {
	var meta Meta
	rest, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		d.Warnings = append(d.Warnings, Warning{Line: 1, Message: "skipping malformed frontmatter: " + err.Error()})
		return src, 0
	}
	d.Meta = meta

	offset := 0
	if len(rest) < len(src) && bytes.HasSuffix(src, rest) {
		offset = strings.Count(string(src[:len(src)-len(rest)]), "\n")
	}
	return rest, offset
}

// ParseFile reads and parses the deck source at path. The only error is
// file I/O; parse problems surface as warnings on the returned deck.
func ParseFile(path string) (Deck, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read deck source %s", path)
	}
	return Parse(src), nil
}
