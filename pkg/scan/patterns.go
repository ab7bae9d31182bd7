// Package scan implements the line-oriented scanner that extracts
// raw question blocks from the question bank text.
package scan

import (
	"regexp"
	"strconv"
	"strings"
)

// categoryPrefix marks a line that begins a new category segment.
// It must appear at the very start of the line.
const categoryPrefix = "CATEGORY:"

var (
	// questionHeaderRe matches "Question 1:", "Question 23:" etc.
	// Anything after the colon on the same line is ignored.
	questionHeaderRe = regexp.MustCompile(`^Question\s+(\d+):`)

	// optionRe matches option lines such as "A. some text".
	optionRe = regexp.MustCompile(`^\s*([A-Z])\.\s*(.*)`)

	// answerKeyRe is the forgiving answer-key matcher. It accepts
	// "Correct Answer: A", "Correct Answers: A, C" and
	// "Correct answer(s): B, D".
	answerKeyRe = regexp.MustCompile(`(?i)^\s*Correct\s+Answers?\s*\(?.*?\)?:\s*(.+)$`)
)

// MatchCategoryHeader reports whether line begins a category and
// returns the trimmed category name following the marker.
func MatchCategoryHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, categoryPrefix) {
		return "", false
	}
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest), true
}

// MatchQuestionHeader reports whether line opens a question block
// and returns the declared ordinal.
func MatchQuestionHeader(line string) (int, bool) {
	m := questionHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	ordinal, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return ordinal, true
}

// IsOptionsMarker reports whether line introduces the option run.
// The match is a case-insensitive prefix test on the trimmed line.
func IsOptionsMarker(line string) bool {
	return strings.HasPrefix(
		strings.ToLower(strings.TrimSpace(line)), "options",
	)
}

// MatchOption reports whether line is an option line and returns
// its letter and trimmed text.
func MatchOption(line string) (Option, bool) {
	m := optionRe.FindStringSubmatch(line)
	if m == nil {
		return Option{}, false
	}
	return Option{Letter: m[1], Text: strings.TrimSpace(m[2])}, true
}

// MatchAnswerKey reports whether line is an answer-key line and
// returns the comma-separated answer letters with empties dropped.
// A matched line with no usable letters yields (nil, true); the
// question is then excluded during resolution, not here.
func MatchAnswerKey(line string) ([]string, bool) {
	m := answerKeyRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	var letters []string
	for _, part := range strings.Split(m[1], ",") {
		if p := strings.TrimSpace(part); p != "" {
			letters = append(letters, p)
		}
	}
	return letters, true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
