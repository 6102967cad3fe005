package quiz

import "log"

// Parse converts raw completion text into an ordered list of normalized
// questions. Malformed blocks are dropped silently; producing fewer
// questions than requested is not an error, only a logged shortfall.
// Empty input yields an empty list.
func Parse(raw string, requested int) []Question {
	var questions []Question
	for _, block := range SplitBlocks(raw) {
		d, ok := parseBlock(block)
		if !ok {
			continue
		}
		q, ok := d.normalize()
		if !ok {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) < requested {
		log.Printf("quiz: only parsed %d questions out of %d requested (raw output %d chars)",
			len(questions), requested, len(raw))
	}
	return questions
}
