// Package seq provides the sequence-level helper linear-path merging
// needs: IUPAC-aware reverse complement. Alignment/overlap computation
// itself is out of scope (spec §1 Non-goals).
package seq

import "strings"

// complement maps every IUPAC nucleotide ambiguity code, plus the GFA
// placeholder characters '=' (match) and '.' (gap), to its complement.
// Case is preserved on output.
var complement = map[rune]rune{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	'U': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
	'=': '=', '.': '.',
}

// ReverseComplement reverses s and complements each base. The "*"
// placeholder is returned unchanged, since it carries no sequence to
// complement.
func ReverseComplement(s string) string {
	if s == "*" {
		return s
	}
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		c := complementRune(r)
		out[len(runes)-1-i] = c
	}
	return string(out)
}

func complementRune(r rune) rune {
	upper := r
	lower := false
	if r >= 'a' && r <= 'z' {
		upper = r - ('a' - 'A')
		lower = true
	}
	c, ok := complement[upper]
	if !ok {
		return r
	}
	if lower {
		c += 'a' - 'A'
	}
	return c
}

// IsPlaceholder reports whether a sequence string is the GFA "unspecified"
// marker.
func IsPlaceholder(s string) bool {
	return s == "*"
}

// Concat joins sequences after trimming each subsequent one's cut prefix,
// per spec §4.5 step 3. If any input is the placeholder, the whole merge
// collapses to the placeholder.
func Concat(first string, rest []string, cuts []int) string {
	if IsPlaceholder(first) {
		return "*"
	}
	var b strings.Builder
	b.WriteString(first)
	for i, s := range rest {
		if IsPlaceholder(s) {
			return "*"
		}
		cut := 0
		if i < len(cuts) {
			cut = cuts[i]
		}
		if cut > len(s) {
			cut = len(s)
		}
		b.WriteString(s[cut:])
	}
	return b.String()
}
