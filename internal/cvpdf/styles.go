package cvpdf

type RGB struct{ R, G, B int }

func hex(v uint32) RGB {
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// Style describes how a block of text is set. Sizes are in points.
type Style struct {
	Family      string
	Emphasis    string // "", "B", "I" or "BI"
	Size        float64
	Color       RGB
	Align       string // "L", "C", "R" or "J"
	SpaceBefore float64
	SpaceAfter  float64
	Rule        bool // draw a line under the text
}

func (s Style) LineHeight() float64 { return s.Size * 1.25 }

func (s Style) With(emphasis string) Style {
	s.Emphasis = emphasis
	return s
}

type Styles struct {
	Title        Style
	SectionTitle Style
	SubTitle     Style
	Text         Style
	Normal       Style
	Footer       Style
	Table        Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:        Style{Family: "Helvetica", Emphasis: "B", Size: 18, Color: hex(0x000000), Align: "C", SpaceAfter: 6},
		SectionTitle: Style{Family: "Helvetica", Emphasis: "B", Size: 14, Color: hex(0x1a5490), Align: "L", SpaceBefore: 12, SpaceAfter: 12, Rule: true},
		SubTitle:     Style{Family: "Helvetica", Emphasis: "B", Size: 11, Color: hex(0x333333), Align: "L", SpaceAfter: 6},
		Text:         Style{Family: "Helvetica", Size: 10, Color: hex(0x555555), Align: "J"},
		Normal:       Style{Family: "Helvetica", Size: 10, Color: hex(0x000000), Align: "L"},
		Footer:       Style{Family: "Helvetica", Emphasis: "I", Size: 8, Color: hex(0x808080), Align: "C"},
		Table:        Style{Family: "Helvetica", Size: 9, Color: hex(0x000000), Align: "L"},
	}
}
