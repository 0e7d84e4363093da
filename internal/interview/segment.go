package interview

import (
	"strings"
	"unicode"
)

// Fragments shorter than this (after trimming) are dropped.
const minSentenceRunes = 3

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// SplitSentences splits a transcript into trimmed sentence fragments. A
// sentence ends at terminal punctuation followed by whitespace, or at a
// newline. The function is deterministic and idempotent: re-splitting any
// returned fragment yields the fragment itself.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder

	flush := func() {
		fragment := strings.TrimSpace(current.String())
		current.Reset()
		if len([]rune(fragment)) >= minSentenceRunes {
			sentences = append(sentences, fragment)
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}

		current.WriteRune(r)

		if isTerminal(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()

	return sentences
}
