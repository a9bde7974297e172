// Package barcode renders business codes as code128 PNG symbols.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	gobarcode "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Encoder produces code128 PNGs.
type Encoder struct {
	// ModuleWidth is the pixel width of the narrowest bar (default 3).
	ModuleWidth int
	// Height is the symbol height in pixels (default 80).
	Height int
}

// NewEncoder returns an encoder with the default print resolution.
func NewEncoder() *Encoder {
	return &Encoder{ModuleWidth: 3, Height: 80}
}

// Encode returns the scaled symbol of value.
func (e *Encoder) Encode(value string) (gobarcode.Barcode, error) {
	if value == "" {
		return nil, fmt.Errorf("empty barcode value")
	}

	symbol, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encode code128: %w", err)
	}

	module, height := e.ModuleWidth, e.Height
	if module <= 0 {
		module = 3
	}
	if height <= 0 {
		height = 80
	}

	scaled, err := gobarcode.Scale(symbol, symbol.Bounds().Dx()*module, height)
	if err != nil {
		return nil, fmt.Errorf("scale code128: %w", err)
	}
	return scaled, nil
}

// PNG implements receipt.BarcodeEncoder.
func (e *Encoder) PNG(value string) ([]byte, error) {
	symbol, err := e.Encode(value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, symbol); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
