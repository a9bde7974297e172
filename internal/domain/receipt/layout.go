// Package receipt lays out and renders the official registration receipt.
package receipt

import (
	"time"

	"archivx/internal/domain/correspondence"
	"archivx/pkg/textshape"
)

// Page geometry in points (A4).
const (
	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 50.0

	rowStep     = 25.0
	labelX      = 400.0
	labelWidth  = 100.0
	valueX      = 50.0
	valueWidth  = 340.0
	rowFontSize = 12.0
)

// Align is the horizontal alignment of a block inside its width.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Style describes the font of a block.
type Style struct {
	Size      float64
	Bold      bool
	Underline bool
}

// Block is a single line of text placed on the page. Text is in visual order.
type Block struct {
	Text  string
	X, Y  float64
	Width float64
	Align Align
	Style Style
}

// Field is a labelled receipt row in logical order.
type Field struct {
	Label string
	Value string
}

// Barcode places the code128 symbol of Value.
type Barcode struct {
	Value         string
	X, Y          float64
	Width, Height float64
}

// Layout is everything a Canvas needs to draw one receipt.
type Layout struct {
	Fields  []Field
	Blocks  []Block
	Barcode Barcode
}

// Options holds the receipt texts and date formatting.
type Options struct {
	Title      string
	Footer     string
	Location   *time.Location
	DateLayout string
}

// DefaultOptions returns the standard Arabic receipt texts.
func DefaultOptions() Options {
	return Options{
		Title:      "إيصال استلام معاملة",
		Footer:     "تم إصدار هذا المستند إلكترونياً من نظام ArchivX",
		Location:   time.Local,
		DateLayout: "2006/01/02",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.Footer == "" {
		o.Footer = def.Footer
	}
	if o.Location == nil {
		o.Location = def.Location
	}
	if o.DateLayout == "" {
		o.DateLayout = def.DateLayout
	}
	return o
}

// missingValue is printed when a field has no value.
const missingValue = "—"

// Fields returns the receipt rows of doc in logical order.
func Fields(doc *correspondence.Correspondence, opts Options) []Field {
	opts = opts.withDefaults()

	date := missingValue
	if !doc.Date.IsZero() {
		date = doc.Date.In(opts.Location).Format(opts.DateLayout)
	}

	return []Field{
		{Label: "رقم المعاملة", Value: doc.Code},
		{Label: "العنوان", Value: orMissing(doc.Title)},
		{Label: "المرسل", Value: orMissing(doc.Sender)},
		{Label: "المستلم", Value: orMissing(doc.Recipient)},
		{Label: "التاريخ", Value: date},
		{Label: "الأهمية", Value: orMissing(doc.Priority.Label())},
	}
}

// Build computes the receipt layout. Every text is shaped exactly once here;
// canvases must draw Block.Text as is.
func Build(doc *correspondence.Correspondence, company correspondence.Company, opts Options) *Layout {
	opts = opts.withDefaults()
	fields := Fields(doc, opts)
	contentWidth := PageWidth - 2*Margin

	l := &Layout{
		Fields: fields,
		Barcode: Barcode{
			Value:  doc.Code,
			X:      400,
			Y:      50,
			Width:  150,
			Height: 40,
		},
	}

	l.Blocks = append(l.Blocks,
		text(company.NameAr, Margin, 50, contentWidth, AlignCenter, Style{Size: 20}),
		text(company.NameEn, Margin, 76, contentWidth, AlignCenter, Style{Size: 10}),
		text(doc.Code, l.Barcode.X, l.Barcode.Y+l.Barcode.Height+2, l.Barcode.Width, AlignCenter, Style{Size: 9}),
		text(opts.Title, Margin, 130, contentWidth, AlignCenter, Style{Size: 16, Underline: true}),
	)

	y := 170.0
	for _, f := range fields {
		l.Blocks = append(l.Blocks,
			text(f.Label+":", labelX, y, labelWidth, AlignRight, Style{Size: rowFontSize, Bold: true}),
			text(f.Value, valueX, y, valueWidth, AlignRight, Style{Size: rowFontSize}),
		)
		y += rowStep
	}

	l.Blocks = append(l.Blocks,
		text(opts.Footer, Margin, 750, 500, AlignCenter, Style{Size: 10}))

	return l
}

func text(s string, x, y, width float64, align Align, style Style) Block {
	return Block{
		Text:  textshape.ShapeForDisplay(s),
		X:     x,
		Y:     y,
		Width: width,
		Align: align,
		Style: style,
	}
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
