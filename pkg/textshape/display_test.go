package textshape

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeForDisplay_PassThrough(t *testing.T) {
	tests := []string{
		"",
		"Hello",
		"123",
		"ABC-2025 (draft) <v2>",
		"שלום",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, ShapeForDisplay(input))
		})
	}
}

func TestShapeForDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single word",
			input: "مرحبا",
			want:  "ﺎﺒﺣﺮﻣ",
		},
		{
			name:  "latin acronym inside arabic",
			input: "مستند PDF هام",
			want:  "ﻡﺎﻫ PDF ﺪﻨﺘﺴﻣ",
		},
		{
			name:  "arabic inside latin",
			input: "Hello مرحبا",
			want:  "Hello ﺎﺒﺣﺮﻣ",
		},
		{
			name:  "number after arabic",
			input: "رقم 123",
			want:  "123 ﻢﻗﺭ",
		},
		{
			name:  "brackets are mirrored",
			input: "(مرحبا)",
			want:  "(ﺎﺒﺣﺮﻣ)",
		},
		{
			name:  "lam alef ligature",
			input: "سلام",
			want:  "ﻡﻼﺳ",
		},
		{
			name:  "mark stays after base",
			input: "بَ",
			want:  "ﺏَ",
		},
		{
			name:  "arabic digits keep order",
			input: "١٢٣",
			want:  "١٢٣",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShapeForDisplay(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "", got)
		})
	}
}

func TestShapeForDisplay_DiffersFromLogicalAndRepeats(t *testing.T) {
	const word = "مرحبا"

	first := ShapeForDisplay(word)
	second := ShapeForDisplay(word)

	assert.NotEqual(t, word, first)
	assert.Equal(t, first, second)
}

func TestShapeForDisplay_LatinRunKeepsOrder(t *testing.T) {
	got := ShapeForDisplay("تقرير ISO9001 للشركة")
	assert.Contains(t, got, "ISO9001")
}

func TestShapeForDisplay_UnknownRunesPassThrough(t *testing.T) {
	got := ShapeForDisplay("مرحبا \U0010FFFD")

	assert.Contains(t, got, "")
	assert.Contains(t, got, "\U0010FFFD")
	assert.Equal(t, len([]rune("مرحبا \U0010FFFD")), len([]rune(got)))
}

func TestShaper_ExplicitDirection(t *testing.T) {
	const input = "ABC مرحبا"

	assert.Equal(t, "ABC ﺎﺒﺣﺮﻣ", New(Auto).Display(input))
	assert.Equal(t, "ﺎﺒﺣﺮﻣ ABC", New(RightToLeft).Display(input))
	assert.Equal(t, "ABC ﺎﺒﺣﺮﻣ", New(LeftToRight).Display(input))

	var zero Shaper
	assert.Equal(t, New(Auto).Display(input), zero.Display(input))
}

func TestShaper_Levels(t *testing.T) {
	levels := New(Auto).Levels("مستند PDF هام")
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 2, 2, 2, 1, 1, 1, 1}, levels)

	levels = New(Auto).Levels("Hello مرحبا ")
	require.Len(t, levels, 12)
	assert.Equal(t, 0, levels[5], "space between runs takes the paragraph direction")
	assert.Equal(t, 1, levels[6])
	assert.Equal(t, 0, levels[11], "trailing whitespace resets to paragraph level")
}

func TestShapeForDisplay_Paragraphs(t *testing.T) {
	assert.Equal(t, "\uFEAE\uFEF3\uFEAE\uFED8\uFE97\nreport", ShapeForDisplay("تقرير\nreport"))
	assert.Equal(t, ShapeForDisplay("تقرير")+"\n"+"report", ShapeForDisplay("تقرير\nreport"))
	assert.Equal(t, "report\n"+ShapeForDisplay("تقرير"), ShapeForDisplay("report\nتقرير"))
	assert.Equal(t,
		ShapeForDisplay("مرحبا")+"\r\n"+ShapeForDisplay("مستند PDF هام"),
		ShapeForDisplay("مرحبا\r\nمستند PDF هام"))
	assert.Equal(t, ShapeForDisplay("رقم")+"\n", ShapeForDisplay("رقم\n"))
}

func TestShaper_LevelsPerParagraph(t *testing.T) {
	levels := New(Auto).Levels("تقرير\nreport")

	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0}, levels)
}

func TestSplitParagraphs(t *testing.T) {
	ps := splitParagraphs([]rune("a\nb\u2029"))

	require.Len(t, ps, 3)
	assert.Equal(t, "a", string(ps[0].text))
	assert.Equal(t, '\n', ps[0].sep)
	assert.Equal(t, "b", string(ps[1].text))
	assert.Equal(t, '\u2029', ps[1].sep)
	assert.Empty(t, ps[2].text)
	assert.Zero(t, ps[2].sep)
}

func TestShapeForDisplay_Concurrent(t *testing.T) {
	inputs := []string{"مرحبا", "مستند PDF هام", "رقم 123", "Hello"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = ShapeForDisplay(in)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, in := range inputs {
					assert.Equal(t, want[i], ShapeForDisplay(in))
				}
			}
		}()
	}
	wg.Wait()
}

func TestContainsArabic(t *testing.T) {
	assert.True(t, ContainsArabic("abc ب"))
	assert.False(t, ContainsArabic("abc"))
	// Presentation forms are outside the Arabic block.
	assert.False(t, ContainsArabic("ﺎﺒ"))
}

func TestVisualOrder(t *testing.T) {
	assert.Equal(t, []int{}, visualOrder(nil))
	assert.Equal(t, []int{0, 1, 2}, visualOrder([]level{0, 0, 0}))
	assert.Equal(t, []int{2, 1, 0}, visualOrder([]level{1, 1, 1}))
	assert.Equal(t, []int{4, 2, 3, 1, 0}, visualOrder([]level{1, 1, 2, 2, 1}))
}

func TestMirror(t *testing.T) {
	assert.Equal(t, ')', mirror('('))
	assert.Equal(t, ']', mirror('['))
	assert.Equal(t, '}', mirror('{'))
	assert.Equal(t, '>', mirror('<'))
	assert.Equal(t, '«', mirror('»'))
	assert.Equal(t, 'a', mirror('a'))
}
