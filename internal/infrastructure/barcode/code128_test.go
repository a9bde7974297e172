package barcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_PNG(t *testing.T) {
	enc := NewEncoder()

	data, err := enc.PNG("IN250314-ABCD1234")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%3)
}

func TestEncoder_Content(t *testing.T) {
	symbol, err := NewEncoder().Encode("OUT241231-0F0F0F0F")
	require.NoError(t, err)
	assert.Equal(t, "OUT241231-0F0F0F0F", symbol.Content())
}

func TestEncoder_ScalesWithModuleWidth(t *testing.T) {
	narrow, err := (&Encoder{ModuleWidth: 1, Height: 10}).Encode("IN250314-ABCD1234")
	require.NoError(t, err)
	wide, err := (&Encoder{ModuleWidth: 2, Height: 10}).Encode("IN250314-ABCD1234")
	require.NoError(t, err)

	assert.Equal(t, 2*narrow.Bounds().Dx(), wide.Bounds().Dx())
}

func TestEncoder_Empty(t *testing.T) {
	_, err := NewEncoder().PNG("")
	assert.Error(t, err)
}
