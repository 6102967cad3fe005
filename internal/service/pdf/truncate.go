package pdf

import "strings"

// DefaultMaxTokens is the approximate token budget passed to the
// generation model; one token is estimated as 0.75 words.
const DefaultMaxTokens = 50000

// truncationMarker joins the kept head and tail of an oversized text.
const truncationMarker = "\n\n[... content truncated ...]\n\n"

// Truncate shortens text that exceeds the token budget, keeping the
// first 60% and last 40% of the allowed words so both the opening and
// the conclusion survive. Reports whether anything was cut.
func Truncate(text string, maxTokens int) (string, bool) {
	maxWords := int(float64(maxTokens) * 0.75)
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text, false
	}

	head := int(float64(maxWords) * 0.6)
	tail := int(float64(maxWords) * 0.4)
	truncated := strings.Join(words[:head], " ") +
		truncationMarker +
		strings.Join(words[len(words)-tail:], " ")
	return truncated, true
}
