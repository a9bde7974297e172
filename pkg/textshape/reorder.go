package textshape

import "golang.org/x/text/unicode/bidi"

// visualOrder applies L2: from the highest level down to the lowest odd level,
// every maximal run at that level or above is reversed. The result maps visual
// position to logical index.
func visualOrder(levels []level) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	highest, lowest := levels[0], levels[0]
	for _, l := range levels[1:] {
		if l > highest {
			highest = l
		}
		if l < lowest {
			lowest = l
		}
	}

	for lv := highest; lv >= lowest|1; lv-- {
		for i := 0; i < n; {
			if levels[order[i]] < lv {
				i++
				continue
			}
			j := i
			for j < n && levels[order[j]] >= lv {
				j++
			}
			reverse(order[i:j])
			i = j
		}
	}
	return order
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// marksAfterBase moves combining marks of reversed runs back behind their base
// character, since the drawing primitive expects the base glyph first.
func marksAfterBase(order []int, rs []rune, levels []level) {
	n := len(order)
	for k := 0; k < n; k++ {
		i := order[k]
		if levels[i]&1 == 0 || classOf(rs[i]) != bidi.NSM {
			continue
		}
		m := k
		for m < n && levels[order[m]]&1 == 1 && classOf(rs[order[m]]) == bidi.NSM {
			m++
		}
		if m == n || levels[order[m]]&1 == 0 {
			k = m
			continue
		}
		marks := append([]int(nil), order[k:m]...)
		order[k] = order[m]
		for x := range marks {
			order[k+1+x] = marks[len(marks)-1-x]
		}
		k = m
	}
}

// mirrorPairs covers mirrored characters that are not paired brackets.
var mirrorPairs = map[rune]rune{
	'<': '>',
	'>': '<',
	'«': '»',
	'»': '«',
	'‹': '›',
	'›': '‹',
	'≤': '≥',
	'≥': '≤',
}

// mirror returns the glyph drawn for r inside a right-to-left run.
func mirror(r rune) rune {
	if p, _ := bidi.LookupRune(r); p.IsBracket() {
		if m := []rune(bidi.ReverseString(string(r))); len(m) == 1 {
			return m[0]
		}
	}
	if m, ok := mirrorPairs[r]; ok {
		return m
	}
	return r
}
