package cvpdf

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
)

const (
	inch       = 72.0
	pageMargin = 0.75 * inch
	photoSize  = 1.2 * inch
	headerGap  = 0.3 * inch
	keyWidth   = 2 * inch
	valueWidth = 4.5 * inch
	cellPad    = 4.0
)

var (
	tableGrid   = RGB{211, 211, 211}
	tableStripe = RGB{249, 249, 249}
	white       = RGB{255, 255, 255}
)

// Block is one element of the document, rendered top to bottom.
type Block interface {
	render(r *renderer)
}

type Contact struct {
	Label string
	Value string
}

type headerBlock struct {
	photo       string
	name        string
	description string
	contacts    []Contact
}

type Row struct {
	Key   string
	Value string
}

type tableBlock struct{ rows []Row }

type sectionBlock struct{ title string }

type paragraphBlock struct {
	style Style
	label string // set in bold before text when non-empty
	text  string
}

type spacerBlock struct{ height float64 }

type footerBlock struct{ text string }

// Certificate is a queued attachment whose pages follow the base document.
type Certificate struct {
	Ref   FileRef
	Title string
}

// Builder collects the blocks, section titles and embed queue of a single document.
type Builder struct {
	styles   Styles
	log      *logrus.Entry
	blocks   []Block
	sections []string
	queue    []Certificate
	pages    int
}

func NewBuilder(styles Styles, log *logrus.Entry) *Builder {
	return &Builder{styles: styles, log: log}
}

func (b *Builder) Styles() Styles { return b.styles }

func (b *Builder) Header(photo, name, description string, contacts []Contact) {
	b.blocks = append(b.blocks, headerBlock{photo: photo, name: name, description: description, contacts: contacts})
}

func (b *Builder) Section(title string) {
	b.sections = append(b.sections, title)
	b.blocks = append(b.blocks, sectionBlock{title: title})
}

func (b *Builder) Table(rows []Row) {
	b.blocks = append(b.blocks, tableBlock{rows: rows})
}

func (b *Builder) Paragraph(style Style, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.blocks = append(b.blocks, paragraphBlock{style: style, text: text})
}

// Labeled writes label in bold followed by text in the given style.
func (b *Builder) Labeled(style Style, label, text string) {
	b.blocks = append(b.blocks, paragraphBlock{style: style, label: label, text: text})
}

func (b *Builder) Spacer(height float64) {
	b.blocks = append(b.blocks, spacerBlock{height: height})
}

func (b *Builder) Footer(text string) {
	b.blocks = append(b.blocks, footerBlock{text: text})
}

func (b *Builder) Enqueue(c Certificate) {
	b.queue = append(b.queue, c)
}

func (b *Builder) Sections() []string { return append([]string(nil), b.sections...) }

func (b *Builder) Queue() []Certificate { return append([]Certificate(nil), b.queue...) }

// Pages is the page count of the last successful Render.
func (b *Builder) Pages() int { return b.pages }

// Render lays out every block on Letter pages and returns the PDF bytes.
func (b *Builder) Render() (out []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("cvpdf: render: %v", p)
		}
	}()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreator("hojadevida", true)
	pdf.AddPage()

	r := &renderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		styles: b.styles,
		log:    b.log,
	}
	for _, blk := range b.blocks {
		blk.render(r)
		if pdf.Err() {
			return nil, fmt.Errorf("cvpdf: render: %w", pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("cvpdf: serialize: %w", err)
	}
	b.pages = pdf.PageCount()
	return buf.Bytes(), nil
}

type renderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	styles Styles
	log    *logrus.Entry
}

func (r *renderer) use(s Style) {
	r.pdf.SetFont(s.Family, s.Emphasis, s.Size)
	r.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

func (r *renderer) contentWidth() float64 {
	w, _ := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()
	return w - left - right
}

func (h headerBlock) render(r *renderer) {
	pdf := r.pdf
	left, _, _, _ := pdf.GetMargins()
	y0 := pdf.GetY()
	bottom := y0

	textLeft := left
	if h.photo != "" && r.placePhoto(h.photo, left, y0) {
		textLeft = left + photoSize + headerGap
		bottom = y0 + photoSize
	}
	pdf.SetLeftMargin(textLeft)
	pdf.SetXY(textLeft, y0)

	title := r.styles.Title
	r.use(title)
	pdf.MultiCell(0, title.LineHeight(), r.tr(strings.ToUpper(h.name)), "", title.Align, false)
	pdf.Ln(title.SpaceAfter)

	if h.description != "" {
		s := r.styles.Text.With("I")
		r.use(s)
		pdf.MultiCell(0, s.LineHeight(), r.tr(h.description), "", s.Align, false)
		pdf.Ln(s.Size / 2)
	}

	for _, c := range h.contacts {
		writeLabeled(r, r.styles.Normal, c.Label, c.Value)
	}

	pdf.SetLeftMargin(left)
	bottom = max(bottom, pdf.GetY())
	pdf.SetXY(left, bottom)
	pdf.Ln(headerGap)
}

// placePhoto draws the photo at x, y. Unreadable or unsupported images are
// logged and skipped.
func (r *renderer) placePhoto(path string, x, y float64) bool {
	kind := imageType(path)
	if kind == "" {
		r.log.WithField("photo", filepath.Base(path)).Warn("unsupported photo format, omitting photo")
		return false
	}
	opts := fpdf.ImageOptions{ImageType: kind}
	info := r.pdf.RegisterImageOptions(path, opts)
	if r.pdf.Err() || info == nil {
		r.log.WithError(r.pdf.Error()).WithField("photo", filepath.Base(path)).Warn("photo could not be decoded, omitting photo")
		r.pdf.ClearError()
		return false
	}
	r.pdf.ImageOptions(path, x, y, photoSize, photoSize, false, opts, 0, "")
	return true
}

func imageType(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "jpg", "jpeg":
		return "JPG"
	case "png":
		return "PNG"
	case "gif":
		return "GIF"
	}
	return ""
}

func (s sectionBlock) render(r *renderer) {
	pdf := r.pdf
	st := r.styles.SectionTitle
	pdf.Ln(st.SpaceBefore)
	// keep the title with at least a couple of lines of content
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+st.LineHeight()+3*r.styles.Text.LineHeight() > pageH-pageMargin {
		pdf.AddPage()
	}
	r.use(st)
	pdf.MultiCell(0, st.LineHeight(), r.tr(s.title), "", st.Align, false)
	if st.Rule {
		left, _, _, _ := pdf.GetMargins()
		y := pdf.GetY() + 2
		pdf.SetDrawColor(st.Color.R, st.Color.G, st.Color.B)
		pdf.SetLineWidth(1)
		pdf.Line(left, y, left+r.contentWidth(), y)
		pdf.SetLineWidth(0.2)
	}
	pdf.Ln(st.SpaceAfter)
}

func (t tableBlock) render(r *renderer) {
	pdf := r.pdf
	st := r.styles.Table
	lh := st.LineHeight()
	left, _, _, _ := pdf.GetMargins()
	_, pageH := pdf.GetPageSize()

	for i, row := range t.rows {
		key, val := []byte(r.tr(row.Key)), []byte(r.tr(row.Value))

		pdf.SetFont(st.Family, "B", st.Size)
		keyLines := pdf.SplitLines(key, keyWidth-2*cellPad)
		pdf.SetFont(st.Family, "", st.Size)
		valLines := pdf.SplitLines(val, valueWidth-2*cellPad)

		n := max(len(keyLines), len(valLines), 1)
		h := float64(n)*lh + 2*cellPad
		if pdf.GetY()+h > pageH-pageMargin {
			pdf.AddPage()
		}
		y := pdf.GetY()

		fill := white
		if i%2 == 1 {
			fill = tableStripe
		}
		pdf.SetDrawColor(tableGrid.R, tableGrid.G, tableGrid.B)
		pdf.SetFillColor(fill.R, fill.G, fill.B)
		pdf.Rect(left, y, keyWidth, h, "FD")
		pdf.Rect(left+keyWidth, y, valueWidth, h, "FD")

		pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
		pdf.SetFont(st.Family, "B", st.Size)
		for j, line := range keyLines {
			pdf.Text(left+cellPad, y+cellPad+float64(j)*lh+st.Size, string(line))
		}
		pdf.SetFont(st.Family, "", st.Size)
		for j, line := range valLines {
			pdf.Text(left+keyWidth+cellPad, y+cellPad+float64(j)*lh+st.Size, string(line))
		}
		pdf.SetXY(left, y+h)
	}
	pdf.Ln(r.styles.Text.Size)
}

func (p paragraphBlock) render(r *renderer) {
	if p.label == "" {
		r.use(p.style)
		r.pdf.MultiCell(0, p.style.LineHeight(), r.tr(p.text), "", p.style.Align, false)
		r.pdf.Ln(p.style.SpaceAfter)
		return
	}
	writeLabeled(r, p.style, p.label, p.text)
	r.pdf.Ln(p.style.SpaceAfter)
}

// writeLabeled flows "label text" as one line of wrapped text with a bold label.
func writeLabeled(r *renderer, s Style, label, text string) {
	lh := s.LineHeight()
	r.use(s.With("B"))
	r.pdf.Write(lh, r.tr(label))
	if text != "" {
		r.use(s)
		r.pdf.Write(lh, r.tr(" "+text))
	}
	r.pdf.Ln(lh)
}

func (s spacerBlock) render(r *renderer) { r.pdf.Ln(s.height) }

func (f footerBlock) render(r *renderer) {
	st := r.styles.Footer
	r.pdf.Ln(0.2 * inch)
	r.use(st)
	r.pdf.MultiCell(0, st.LineHeight(), r.tr(f.text), "", st.Align, false)
}
