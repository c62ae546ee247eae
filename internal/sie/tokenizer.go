package sie

import (
	"strings"
	"unicode"
)

// tokenize splits a line into whitespace-delimited tokens while treating
// "..." spans as atomic: the surrounding quotes are stripped and internal
// spaces kept verbatim. An unterminated quote runs to the end of the line.
// The same splitter is used for metadata records, verification headers and
// transaction rows.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	pending := false // true once cur holds a token, even an empty quoted one

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			pending = true
		case !inQuote && unicode.IsSpace(r):
			if pending {
				tokens = append(tokens, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if pending {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// tokenAt returns the token at index i, or "" when the list is too short.
// Record fields in SIE are positional and frequently absent; indexing past
// the list is never an error.
func tokenAt(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

// joinFrom joins tokens[i:] with single spaces, or returns "" when the list
// is too short.
func joinFrom(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return strings.Join(tokens[i:], " ")
}
