// Package pdf draws receipt layouts with fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"archivx/internal/domain/receipt"
)

const family = "receipt"

// lineHeight is the cell height relative to the font size.
const lineHeight = 1.4

// Fonts holds the TrueType data embedded in every receipt.
// The font must cover the Arabic presentation forms (U+FB50..U+FEFF).
type Fonts struct {
	Regular []byte
	Bold    []byte
}

// GoFonts returns the Go fonts. They carry no Arabic glyphs and are only a
// fallback when no font is configured.
func GoFonts() Fonts {
	return Fonts{Regular: goregular.TTF, Bold: gobold.TTF}
}

// LoadFonts reads font files. An empty boldPath reuses the regular face.
func LoadFonts(regularPath, boldPath string) (Fonts, error) {
	regular, err := os.ReadFile(regularPath)
	if err != nil {
		return Fonts{}, fmt.Errorf("read regular font: %w", err)
	}

	bold := regular
	if boldPath != "" {
		bold, err = os.ReadFile(boldPath)
		if err != nil {
			return Fonts{}, fmt.Errorf("read bold font: %w", err)
		}
	}

	return Fonts{Regular: regular, Bold: bold}, nil
}

// Canvas is a single A4 page implementing receipt.Canvas.
type Canvas struct {
	doc *fpdf.Fpdf
}

// NewCanvas creates a blank page with fonts registered.
func NewCanvas(fonts Fonts) (*Canvas, error) {
	if len(fonts.Regular) == 0 {
		return nil, fmt.Errorf("regular font is required")
	}
	if len(fonts.Bold) == 0 {
		fonts.Bold = fonts.Regular
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(receipt.Margin, receipt.Margin, receipt.Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("ArchivX", true)
	doc.AddUTF8FontFromBytes(family, "", fonts.Regular)
	doc.AddUTF8FontFromBytes(family, "B", fonts.Bold)
	doc.AddPage()

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("init pdf: %w", err)
	}
	return &Canvas{doc: doc}, nil
}

// Factory returns a receipt.CanvasFactory bound to fonts.
func Factory(fonts Fonts) receipt.CanvasFactory {
	return func() (receipt.Canvas, error) {
		return NewCanvas(fonts)
	}
}

// DrawText implements receipt.Canvas. Text is drawn as given, without any
// reordering.
func (c *Canvas) DrawText(b receipt.Block) {
	style := ""
	if b.Style.Bold {
		style += "B"
	}
	if b.Style.Underline {
		style += "U"
	}

	c.doc.SetFont(family, style, b.Style.Size)
	c.doc.SetXY(b.X, b.Y)
	c.doc.CellFormat(b.Width, b.Style.Size*lineHeight, b.Text, "", 0, string(b.Align), false, 0, "")
}

// DrawImage implements receipt.Canvas.
func (c *Canvas) DrawImage(name string, png []byte, x, y, width, height float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	c.doc.ImageOptions(name, x, y, width, height, false, opts, 0, "")
}

// Finish implements receipt.Canvas.
func (c *Canvas) Finish(w io.Writer) error {
	if err := c.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

var _ receipt.Canvas = (*Canvas)(nil)
