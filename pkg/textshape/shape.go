package textshape

// Shape replaces Arabic letters with their contextual presentation forms and
// merges lam followed by alef into the lam-alef ligature. Text stays in logical
// order. Runes without presentation forms are copied unchanged.
func Shape(text string) string {
	rs := []rune(text)
	out := make([]rune, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		l, ok := letters[r]
		if !ok {
			out = append(out, r)
			continue
		}

		joinsPrev := connectsToPrev(rs, i)

		if r == lam && i+1 < len(rs) {
			if lig, ok := lamAlef[rs[i+1]]; ok {
				if joinsPrev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				i++
				continue
			}
		}

		out = append(out, l.form(r, joinsPrev, connectsToNext(rs, i)))
	}

	return string(out)
}

// connectsToPrev reports whether rs[i] joins the nearest non-transparent rune
// before it.
func connectsToPrev(rs []rune, i int) bool {
	switch joiningOf(rs[i]) {
	case joinRight, joinDual, joinCausing:
	default:
		return false
	}
	for j := i - 1; j >= 0; j-- {
		switch joiningOf(rs[j]) {
		case joinTransparent:
			continue
		case joinDual, joinCausing:
			return true
		default:
			return false
		}
	}
	return false
}

// connectsToNext reports whether rs[i] joins the nearest non-transparent rune
// after it.
func connectsToNext(rs []rune, i int) bool {
	switch joiningOf(rs[i]) {
	case joinDual, joinCausing:
	default:
		return false
	}
	for j := i + 1; j < len(rs); j++ {
		switch joiningOf(rs[j]) {
		case joinTransparent:
			continue
		case joinRight, joinDual, joinCausing:
			return true
		default:
			return false
		}
	}
	return false
}
