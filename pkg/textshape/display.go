// Package textshape prepares mixed Arabic and Latin text for renderers that
// place glyphs strictly left to right, such as a PDF cell primitive.
//
// ShapeForDisplay runs three passes over a logical-order string:
//
//  1. shaping: Arabic letters become their isolated, initial, medial or final
//     presentation forms (U+FB50..U+FEFF), lam-alef pairs become ligatures;
//  2. reordering: bidi embedding levels are resolved for each paragraph and
//     every run at an odd level is reversed, so right-to-left runs come out in
//     visual order while embedded Latin runs keep their own order;
//  3. mirroring: brackets and other mirrored characters inside right-to-left
//     runs are replaced by their counterparts.
//
// Text without any rune in U+0600..U+06FF is returned unchanged. Nothing in the
// package fails: runes it cannot classify are passed through as they are.
// The output is meant to be drawn once; feeding it back in is not supported.
package textshape

// Direction is the paragraph base direction.
type Direction int

const (
	// Auto takes the direction of the first strong character.
	Auto Direction = iota
	// LeftToRight forces a left-to-right paragraph.
	LeftToRight
	// RightToLeft forces a right-to-left paragraph.
	RightToLeft
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return "auto"
}

// Shaper converts logical-order text to visual order for a fixed paragraph
// direction. The zero value uses Auto. A Shaper has no mutable state.
type Shaper struct {
	base Direction
}

// New creates a Shaper with the given base direction.
func New(base Direction) *Shaper {
	return &Shaper{base: base}
}

var autoShaper = New(Auto)

// ShapeForDisplay shapes, reorders and mirrors text with automatic base
// direction detection.
func ShapeForDisplay(text string) string {
	return autoShaper.Display(text)
}

// Display shapes, reorders and mirrors text. Every paragraph is reordered on
// its own and paragraph separators stay where they are.
func (s *Shaper) Display(text string) string {
	if !ContainsArabic(text) {
		return text
	}

	shaped := []rune(Shape(text))
	out := make([]rune, 0, len(shaped))
	for _, p := range splitParagraphs(shaped) {
		out = append(out, s.visual(p.text)...)
		if p.sep != 0 {
			out = append(out, p.sep)
		}
	}
	return string(out)
}

func (s *Shaper) visual(shaped []rune) []rune {
	levels, _ := resolveLevels(shaped, s.base)
	order := visualOrder(levels)
	marksAfterBase(order, shaped, levels)

	out := make([]rune, len(order))
	for k, i := range order {
		r := shaped[i]
		if levels[i]&1 == 1 {
			r = mirror(r)
		}
		out[k] = r
	}
	return out
}

// Levels returns the resolved embedding level of every rune of the shaped text,
// in logical order. A paragraph separator takes the level of the paragraph it
// ends. It is meant for diagnostics.
func (s *Shaper) Levels(text string) []int {
	shaped := []rune(Shape(text))
	out := make([]int, 0, len(shaped))
	for _, p := range splitParagraphs(shaped) {
		resolved, para := resolveLevels(p.text, s.base)
		for _, l := range resolved {
			out = append(out, int(l))
		}
		if p.sep != 0 {
			out = append(out, int(para))
		}
	}
	return out
}

// ContainsArabic reports whether text has a rune in the Arabic block.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
