package quiz

import "strings"

// minBlockLines is the smallest number of usable lines a block needs
// before we attempt to parse it (nominally QUESTION, TYPE and ANSWER).
const minBlockLines = 3

// lineRule pairs a line predicate with its field handler. Rules are
// tried in order and the first match wins, so the QUESTION prefix must
// stay ahead of the colon-tagged prefixes.
type lineRule struct {
	match func(line string) bool
	apply func(d *draft, line string)
}

var lineRules = []lineRule{
	{
		match: func(line string) bool { return strings.HasPrefix(line, "QUESTION") },
		apply: applyQuestion,
	},
	{
		match: func(line string) bool { return strings.HasPrefix(line, "TYPE:") },
		apply: applyType,
	},
	{
		match: func(line string) bool { return strings.HasPrefix(line, "OPTIONS:") },
		apply: applyOptions,
	},
	{
		match: func(line string) bool { return strings.HasPrefix(line, "ANSWER:") },
		apply: applyAnswer,
	},
	{
		match: func(line string) bool { return strings.HasPrefix(line, "EXPLANATION:") },
		apply: applyExplanation,
	},
}

// parseBlock scans one block's non-empty trimmed lines into a draft.
// Unknown lines are ignored and missing fields keep their defaults.
// It reports false when the block has too few usable lines to bother.
func parseBlock(block string) (*draft, bool) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < minBlockLines {
		return nil, false
	}

	d := &draft{qtype: TypeMCQ}
	for _, line := range lines {
		for _, rule := range lineRules {
			if rule.match(line) {
				rule.apply(d, line)
				break
			}
		}
	}
	return d, true
}

// afterColon returns the text after the first colon, trimmed. Values
// may themselves contain colons, so only the first one splits.
func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

// applyQuestion records the question text. A later QUESTION line
// overwrites an earlier one; lines without a colon are used verbatim.
func applyQuestion(d *draft, line string) {
	if strings.Contains(line, ":") {
		d.question = afterColon(line)
	} else {
		d.question = line
	}
}

func applyType(d *draft, line string) {
	d.qtype = strings.ToLower(afterColon(line))
}

// applyOptions splits an option list on "|" and strips leading labels
// such as "A)" or "B.". Without a "|" the current option list is left
// untouched.
func applyOptions(d *draft, line string) {
	opts := afterColon(line)
	if !strings.Contains(opts, "|") {
		return
	}
	var cleaned []string
	for _, opt := range strings.Split(opts, "|") {
		opt = strings.TrimSpace(opt)
		if i := strings.Index(opt, ")"); i >= 0 {
			opt = strings.TrimSpace(opt[i+1:])
		} else if i := strings.Index(opt, "."); i >= 0 && i <= 2 {
			opt = strings.TrimSpace(opt[i+1:])
		}
		cleaned = append(cleaned, opt)
	}
	d.options = cleaned
}

// applyAnswer records the raw answer. For an MCQ draft a single letter
// A-D is mapped onto the option at that index, falling back to the
// first option (or a placeholder when none were parsed).
func applyAnswer(d *draft, line string) {
	ans := afterColon(line)
	if d.qtype == TypeMCQ && len(ans) == 1 {
		if c := strings.ToUpper(ans)[0]; c >= 'A' && c <= 'D' {
			idx := int(c - 'A')
			switch {
			case idx < len(d.options):
				d.answer = d.options[idx]
			case len(d.options) > 0:
				d.answer = d.options[0]
			default:
				d.answer = "Option A"
			}
			return
		}
	}
	d.answer = ans
}

func applyExplanation(d *draft, line string) {
	d.explanation = afterColon(line)
}
