package capture

import "strings"

// Tokenize splits a capture line on single spaces. Positions matter in the
// header lines, so consecutive spaces produce empty tokens rather than being
// collapsed.
func Tokenize(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r\n"), " ")
}

// SweepValues drops the empty tokens a sweep line carries, most commonly the
// one produced by its trailing delimiter.
func SweepValues(tokens []string) []string {
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		values = append(values, tok)
	}
	return values
}
