package textshape

import "unicode"

// joiningType is the Arabic joining behavior of a rune.
type joiningType uint8

const (
	joinNone        joiningType = iota // non-joining (U)
	joinRight                          // joins to the preceding letter only (R)
	joinDual                           // joins on both sides (D)
	joinCausing                        // tatweel, ZWJ (C)
	joinTransparent                    // combining marks (T)
)

// letter holds the presentation forms of one Arabic letter. A zero form means the
// letter has no such form.
type letter struct {
	isolated, final, initial, medial rune
	join                             joiningType
}

const (
	lam     = 0x0644
	tatweel = 0x0640
	zwj     = 0x200D
)

var letters = map[rune]letter{
	0x0621: {0xFE80, 0, 0, 0, joinNone},                // hamza
	0x0622: {0xFE81, 0xFE82, 0, 0, joinRight},          // alef with madda above
	0x0623: {0xFE83, 0xFE84, 0, 0, joinRight},          // alef with hamza above
	0x0624: {0xFE85, 0xFE86, 0, 0, joinRight},          // waw with hamza above
	0x0625: {0xFE87, 0xFE88, 0, 0, joinRight},          // alef with hamza below
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C, joinDual}, // yeh with hamza above
	0x0627: {0xFE8D, 0xFE8E, 0, 0, joinRight},          // alef
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92, joinDual}, // beh
	0x0629: {0xFE93, 0xFE94, 0, 0, joinRight},          // teh marbuta
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98, joinDual}, // teh
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C, joinDual}, // theh
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0, joinDual}, // jeem
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4, joinDual}, // hah
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8, joinDual}, // khah
	0x062F: {0xFEA9, 0xFEAA, 0, 0, joinRight},          // dal
	0x0630: {0xFEAB, 0xFEAC, 0, 0, joinRight},          // thal
	0x0631: {0xFEAD, 0xFEAE, 0, 0, joinRight},          // reh
	0x0632: {0xFEAF, 0xFEB0, 0, 0, joinRight},          // zain
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4, joinDual}, // seen
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8, joinDual}, // sheen
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC, joinDual}, // sad
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0, joinDual}, // dad
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4, joinDual}, // tah
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8, joinDual}, // zah
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC, joinDual}, // ain
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0, joinDual}, // ghain
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4, joinDual}, // feh
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8, joinDual}, // qaf
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC, joinDual}, // kaf
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0, joinDual}, // lam
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4, joinDual}, // meem
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8, joinDual}, // noon
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC, joinDual}, // heh
	0x0648: {0xFEED, 0xFEEE, 0, 0, joinRight},          // waw
	0x0649: {0xFEEF, 0xFEF0, 0xFBE8, 0xFBE9, joinDual}, // alef maksura
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4, joinDual}, // yeh

	// Persian and Urdu letters
	0x0671: {0xFB50, 0xFB51, 0, 0, joinRight},          // alef wasla
	0x067E: {0xFB56, 0xFB57, 0xFB58, 0xFB59, joinDual}, // peh
	0x0686: {0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D, joinDual}, // tcheh
	0x0698: {0xFB8A, 0xFB8B, 0, 0, joinRight},          // jeh
	0x06A4: {0xFB6A, 0xFB6B, 0xFB6C, 0xFB6D, joinDual}, // veh
	0x06A9: {0xFB8E, 0xFB8F, 0xFB90, 0xFB91, joinDual}, // keheh
	0x06AF: {0xFB92, 0xFB93, 0xFB94, 0xFB95, joinDual}, // gaf
	0x06CC: {0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF, joinDual}, // farsi yeh
}

// lamAlef maps the alef that follows a lam to the {isolated, final} ligature.
var lamAlef = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

func joiningOf(r rune) joiningType {
	if l, ok := letters[r]; ok {
		return l.join
	}
	switch {
	case r == tatweel || r == zwj:
		return joinCausing
	case unicode.In(r, unicode.Mn, unicode.Me):
		return joinTransparent
	}
	return joinNone
}

// form picks the presentation form for the given neighbours. A missing medial
// form falls back to the final form; other missing forms fall back to the
// isolated form, and to r itself when that is missing too.
func (l letter) form(r rune, joinsPrev, joinsNext bool) rune {
	var f rune
	switch {
	case joinsPrev && joinsNext:
		f = l.medial
		if f == 0 {
			f = l.final
		}
	case joinsPrev:
		f = l.final
	case joinsNext:
		f = l.initial
	}
	if f == 0 {
		f = l.isolated
	}
	if f == 0 {
		f = r
	}
	return f
}
