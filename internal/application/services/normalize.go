package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Closest-ASCII forms for the Turkish alphabet; raw space maps to a hyphen
// which the second pass then folds into an underscore.
var turkishToASCII = map[rune]rune{
	'ç': 'c', 'ğ': 'g', 'ı': 'i', 'ö': 'o', 'ş': 's', 'ü': 'u',
	'Ç': 'C', 'Ğ': 'G', 'İ': 'I', 'Ö': 'O', 'Ş': 'S', 'Ü': 'U',
	' ': '-',
}

var collapseRe = regexp.MustCompile(`[\s_-]+`)

// normalizeName slugifies an arbitrary client-supplied name into a safe
// lowercase underscore-delimited token. Total and idempotent. The
// transliteration pass must run before the case/collapse pass: it is the
// one that turns spaces into hyphens.
func normalizeName(raw string) string {
	s := transliterate(raw)
	s = strings.ToLower(s)
	s = collapseRe.ReplaceAllString(s, "_")

	return strings.TrimSpace(s)
}

func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := turkishToASCII[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}

	// the Turkish table covers the precomposed forms; strip combining
	// marks for anything else ("café" -> "cafe")
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}

	return out
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
