package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// emuPerInch is the OOXML English Metric Unit scale.
const emuPerInch = 914400

// emuPerPoint converts font points to EMU for line widths.
const emuPerPoint = 12700

// Page size in EMU (10 x 7.5 in).
const (
	pageCx = 10.0 * emuPerInch
	pageCy = 7.5 * emuPerInch
)

// part is one named file inside the package zip.
type part struct {
	name string
	data []byte
}

// Option configures PPTX rendering via [Render] or [Write].
type Option func(*writer)

type writer struct {
	author  string
	created time.Time
	theme   plan.Theme
}

// WithAuthor overrides the document author. Without it the deck metadata
// author is used, falling back to "slidesmith".
func WithAuthor(author string) Option { return func(w *writer) { w.author = author } }

// WithCreated pins the created/modified timestamps in docProps. Rendering
// the same inputs with the same created time is byte-identical, which is
// what the artifact cache and the tests rely on.
func WithCreated(t time.Time) Option { return func(w *writer) { w.created = t } }

func newWriter(opts ...Option) writer {
	w := writer{theme: plan.DefaultTheme()}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Render assembles the PPTX package and returns its bytes.
func Render(d deck.Deck, plans []plan.LayoutPlan, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d, plans, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write assembles the PPTX package and writes it to w.
// One slide part is emitted per plan, in plan order; a deck with zero plans
// still produces a valid, empty presentation.
func Write(w io.Writer, d deck.Deck, plans []plan.LayoutPlan, opts ...Option) error {
	wr := newWriter(opts...)

	if wr.author == "" {
		wr.author = d.Meta.Author
	}
	if wr.author == "" {
		wr.author = "slidesmith"
	}
	if wr.created.IsZero() {
		wr.created = time.Now().UTC()
	}

	zw := zip.NewWriter(w)

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(plans))},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"docProps/core.xml", corePropsXML(d, wr.author, wr.created)},
		{"docProps/app.xml", appPropsXML(len(plans))},
		{"ppt/presentation.xml", presentationXML(len(plans))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(plans))},
		{"ppt/slideMasters/slideMaster1.xml", []byte(slideMasterXML)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(slideMasterRelsXML)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutXML)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(slideLayoutRelsXML)},
		{"ppt/theme/theme1.xml", []byte(themeXML)},
	}
	for i, p := range plans {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(p, wr.theme)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), []byte(slideRelsXML)},
		)
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "create part %s", p.name)
		}
		if _, err := f.Write(p.data); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "write part %s", p.name)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "close package")
	}
	return nil
}

// emu converts inches to EMU, rounded to the nearest unit.
func emu(inches float64) int {
	return int(math.Round(inches * emuPerInch))
}

// regionEMU returns a region's offset and extent in EMU.
func regionEMU(r plan.Region) (x, y, cx, cy int) {
	return emu(r.X), emu(r.Y), emu(r.W), emu(r.H)
}
