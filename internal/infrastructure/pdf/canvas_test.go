package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivx/internal/core/entity"
	"archivx/internal/core/id"
	"archivx/internal/domain/correspondence"
	"archivx/internal/domain/receipt"
	"archivx/internal/infrastructure/barcode"
)

func TestCanvas_DrawAndFinish(t *testing.T) {
	c, err := NewCanvas(GoFonts())
	require.NoError(t, err)

	c.DrawText(receipt.Block{Text: "IN250314-ABCD1234", X: 50, Y: 50, Width: 200, Align: receipt.AlignRight, Style: receipt.Style{Size: 12, Bold: true, Underline: true}})

	symbol, err := barcode.NewEncoder().PNG("IN250314-ABCD1234")
	require.NoError(t, err)
	c.DrawImage("barcode", symbol, 400, 50, 150, 40)

	var out bytes.Buffer
	require.NoError(t, c.Finish(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestCanvas_BadImage(t *testing.T) {
	c, err := NewCanvas(GoFonts())
	require.NoError(t, err)

	c.DrawImage("broken", []byte("not a png"), 0, 0, 10, 10)
	assert.Error(t, c.Finish(&bytes.Buffer{}))
}

func TestNewCanvas_RequiresFont(t *testing.T) {
	_, err := NewCanvas(Fonts{})
	assert.Error(t, err)
}

func TestLoadFonts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	require.NoError(t, os.WriteFile(path, GoFonts().Regular, 0o600))

	fonts, err := LoadFonts(path, "")
	require.NoError(t, err)
	assert.Equal(t, fonts.Regular, fonts.Bold)

	_, err = LoadFonts(filepath.Join(dir, "missing.ttf"), "")
	assert.Error(t, err)
}

func TestRenderReceipt(t *testing.T) {
	doc := &correspondence.Correspondence{
		Document:  entity.NewDocument(id.New(), "OUT250314-0F0F0F0F", "co-1", time.Now()),
		Type:      correspondence.TypeOutgoing,
		Title:     "Annual report",
		Sender:    "Finance",
		Recipient: "Board",
		Priority:  correspondence.PriorityHigh,
	}
	r := receipt.NewRenderer(Factory(GoFonts()), barcode.NewEncoder(), receipt.DefaultOptions())

	var out bytes.Buffer
	require.NoError(t, r.Render(context.Background(), doc, correspondence.Company{NameAr: "زوايا", NameEn: "Zawaya"}, &out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
	assert.Greater(t, out.Len(), 1000)
}
