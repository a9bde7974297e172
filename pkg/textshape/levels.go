package textshape

import (
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// level is a resolved bidi embedding level.
type level uint8

func classOf(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// removed reports classes dropped by rule X9. Directional formatting
// characters are not honored: embeddings, overrides and isolates are
// treated like boundary neutrals.
func removed(c bidi.Class) bool {
	switch c {
	case bidi.BN, bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF,
		bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

func neutral(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON:
		return true
	}
	return false
}

func directionOf(l level) bidi.Class {
	if l&1 == 1 {
		return bidi.R
	}
	return bidi.L
}

// paragraph is one run of text up to and excluding a paragraph separator.
// sep is the separator that ended it, or 0 for the last paragraph.
type paragraph struct {
	text []rune
	sep  rune
}

// splitParagraphs applies P1: the text is cut after every rune of class B.
func splitParagraphs(rs []rune) []paragraph {
	var out []paragraph
	start := 0
	for i, r := range rs {
		if classOf(r) == bidi.B {
			out = append(out, paragraph{text: rs[start:i], sep: r})
			start = i + 1
		}
	}
	return append(out, paragraph{text: rs[start:]})
}

// resolveLevels computes the embedding level of every rune of a single
// paragraph (rules P2-P3, W1-W7, N1-N2, I1-I2 and L1 of UAX #9) and returns
// them with the paragraph level.
func resolveLevels(rs []rune, base Direction) ([]level, level) {
	n := len(rs)
	initial := make([]bidi.Class, n)
	for i, r := range rs {
		initial[i] = classOf(r)
	}

	para := paragraphLevel(rs, initial, base)

	idx := make([]int, 0, n)
	types := make([]bidi.Class, 0, n)
	for i, c := range initial {
		if removed(c) {
			continue
		}
		idx = append(idx, i)
		types = append(types, c)
	}

	sos := directionOf(para)
	resolveWeak(types, sos)
	resolveNeutral(types, sos, sos, para)

	levels := make([]level, n)
	prev, k := para, 0
	for i := range rs {
		if k < len(idx) && idx[k] == i {
			levels[i] = implicitLevel(types[k], para)
			prev = levels[i]
			k++
			continue
		}
		levels[i] = prev
	}

	resetWhitespace(initial, levels, para)
	return levels, para
}

// paragraphLevel applies P2-P3: the first strong character decides. Without one,
// text that is mostly Arabic script is right-to-left, everything else
// left-to-right.
func paragraphLevel(rs []rune, classes []bidi.Class, base Direction) level {
	switch base {
	case LeftToRight:
		return 0
	case RightToLeft:
		return 1
	}

	for _, c := range classes {
		switch c {
		case bidi.L:
			return 0
		case bidi.R, bidi.AL:
			return 1
		}
	}

	if predominantlyArabic(rs) {
		return 1
	}
	return 0
}

func predominantlyArabic(rs []rune) bool {
	var arabic, total int
	for _, r := range rs {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if language.LookupScript(r) == language.Arabic {
			arabic++
		}
	}
	return total > 0 && 2*arabic > total
}

// resolveWeak applies rules W1-W7 in place.
func resolveWeak(types []bidi.Class, sos bidi.Class) {
	n := len(types)

	// W1
	for i, t := range types {
		if t != bidi.NSM {
			continue
		}
		if i == 0 {
			types[i] = sos
		} else {
			types[i] = types[i-1]
		}
	}

	// W2, W3
	last := sos
	for i, t := range types {
		switch t {
		case bidi.L, bidi.R:
			last = t
		case bidi.AL:
			last = t
			types[i] = bidi.R
		case bidi.EN:
			if last == bidi.AL {
				types[i] = bidi.AN
			}
		}
	}

	// W4
	for i := 1; i < n-1; i++ {
		before, after := types[i-1], types[i+1]
		switch types[i] {
		case bidi.ES:
			if before == bidi.EN && after == bidi.EN {
				types[i] = bidi.EN
			}
		case bidi.CS:
			if before == bidi.EN && after == bidi.EN {
				types[i] = bidi.EN
			} else if before == bidi.AN && after == bidi.AN {
				types[i] = bidi.AN
			}
		}
	}

	// W5
	for i := 0; i < n; {
		if types[i] != bidi.ET {
			i++
			continue
		}
		j := i
		for j < n && types[j] == bidi.ET {
			j++
		}
		if (i > 0 && types[i-1] == bidi.EN) || (j < n && types[j] == bidi.EN) {
			for k := i; k < j; k++ {
				types[k] = bidi.EN
			}
		}
		i = j
	}

	// W6
	for i, t := range types {
		switch t {
		case bidi.ES, bidi.ET, bidi.CS:
			types[i] = bidi.ON
		}
	}

	// W7
	last = sos
	for i, t := range types {
		switch t {
		case bidi.L, bidi.R:
			last = t
		case bidi.EN:
			if last == bidi.L {
				types[i] = bidi.L
			}
		}
	}
}

// strong maps resolved types to the direction N1 sees: numbers count as R.
func strong(t bidi.Class) bidi.Class {
	if t == bidi.L {
		return bidi.L
	}
	return bidi.R
}

// resolveNeutral applies N1-N2 in place.
func resolveNeutral(types []bidi.Class, sos, eos bidi.Class, para level) {
	n := len(types)
	embedding := directionOf(para)

	for i := 0; i < n; {
		if !neutral(types[i]) {
			i++
			continue
		}
		j := i
		for j < n && neutral(types[j]) {
			j++
		}

		leading, trailing := sos, eos
		if i > 0 {
			leading = strong(types[i-1])
		}
		if j < n {
			trailing = strong(types[j])
		}

		resolved := embedding
		if leading == trailing {
			resolved = leading
		}
		for k := i; k < j; k++ {
			types[k] = resolved
		}
		i = j
	}
}

// implicitLevel applies I1-I2.
func implicitLevel(t bidi.Class, para level) level {
	if para&1 == 0 {
		switch t {
		case bidi.R:
			return para + 1
		case bidi.AN, bidi.EN:
			return para + 2
		}
		return para
	}
	switch t {
	case bidi.L, bidi.EN, bidi.AN:
		return para + 1
	}
	return para
}

// resetWhitespace applies L1: separators and the whitespace before them or at
// the end of the line go back to the paragraph level.
func resetWhitespace(classes []bidi.Class, levels []level, para level) {
	trailing := true
	for i := len(classes) - 1; i >= 0; i-- {
		c := classes[i]
		switch {
		case c == bidi.S || c == bidi.B:
			levels[i] = para
			trailing = true
		case c == bidi.WS || removed(c):
			if trailing {
				levels[i] = para
			}
		default:
			trailing = false
		}
	}
}
