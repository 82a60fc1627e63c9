package textproc

import "strings"

// suffixRule strips suffix when the remaining stem keeps at least minStem bytes.
type suffixRule struct {
	suffix  string
	minStem int
}

// Derivational suffixes, longest first. Applied at most once per token,
// after plural stripping and accent folding.
var derivational = []suffixRule{
	{"amientos", 2},
	{"imientos", 2},
	{"amiento", 2},
	{"imiento", 2},
	{"aciones", 2},
	{"uciones", 2},
	{"adoras", 2},
	{"adores", 2},
	{"logia", 2},
	{"mente", 2},
	{"acion", 2},
	{"ucion", 2},
	{"adora", 2},
	{"ador", 2},
	{"ancia", 2},
	{"encia", 2},
	{"idad", 2},
	{"ista", 2},
	{"able", 2},
	{"ible", 2},
	{"anza", 2},
	{"ivo", 3},
	{"iva", 3},
	{"oso", 3},
	{"osa", 3},
}

// Stem applies a deterministic Spanish suffix-stripping stem to a single
// lowercased token. The transform is lossy and irreversible; it exists for
// matching, never for display.
func Stem(word string) string {
	w := foldAccents(strings.ToLower(word))

	// plural
	if strings.HasSuffix(w, "es") && len(w) > 4 {
		w = w[:len(w)-2]
	} else if strings.HasSuffix(w, "s") && len(w) > 3 {
		w = w[:len(w)-1]
	}

	for _, r := range derivational {
		if strings.HasSuffix(w, r.suffix) && len(w)-len(r.suffix) >= r.minStem {
			w = w[:len(w)-len(r.suffix)]
			break
		}
	}

	// residual theme vowel
	for _, v := range []string{"a", "o", "e"} {
		if strings.HasSuffix(w, v) && len(w) > 3 {
			w = w[:len(w)-1]
			break
		}
	}
	return w
}

// foldAccents maps acute-accented vowels and u-dieresis to their plain forms.
// The tilde on n is significant in Spanish and is kept.
func foldAccents(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'á':
			return 'a'
		case 'é':
			return 'e'
		case 'í':
			return 'i'
		case 'ó':
			return 'o'
		case 'ú', 'ü':
			return 'u'
		}
		return r
	}, s)
}
