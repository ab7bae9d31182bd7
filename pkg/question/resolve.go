package question

import "digital.vasic.questionbank/pkg/scan"

// Resolve maps a raw block's answer letters to zero-based option
// indices via their alphabet position. ok is false when the block
// has no usable answer key: no letters were recorded, a letter is
// not a single A-Z character, or a letter's index falls beyond the
// parsed options. Such questions are excluded by the caller.
func Resolve(block scan.Block) (Question, bool) {
	if len(block.CorrectLetters) == 0 {
		return Question{}, false
	}

	options := make([]string, 0, len(block.Options))
	for _, opt := range block.Options {
		options = append(options, opt.Text)
	}

	indices := make([]int, 0, len(block.CorrectLetters))
	for _, letter := range block.CorrectLetters {
		idx, ok := letterIndex(letter)
		if !ok || idx >= len(options) {
			return Question{}, false
		}
		indices = append(indices, idx)
	}

	return Question{
		ID:      block.Ordinal,
		Prompt:  block.Prompt,
		Options: options,
		Correct: indices,
	}, true
}

// letterIndex is the bounded letter lookup: a single ASCII letter
// maps to its alphabet position, case-insensitively. Anything else
// is rejected rather than trusted to character arithmetic.
func letterIndex(letter string) (int, bool) {
	if len(letter) != 1 {
		return 0, false
	}
	switch c := letter[0]; {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	}
	return 0, false
}
