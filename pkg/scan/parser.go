package scan

import (
	"strings"

	"digital.vasic.questionbank/pkg/logging"
	"digital.vasic.questionbank/pkg/stats"
)

// Option is one (letter, text) pair captured from an option line.
type Option struct {
	Letter string
	Text   string
}

// Block is the raw parse product for one question, before answer
// letters are resolved to option indices. CorrectLetters is empty
// when no answer-key line was recognized; the block is still
// retained so the caller decides whether to keep or drop it.
type Block struct {
	Ordinal        int
	Prompt         string
	Options        []Option
	CorrectLetters []string
}

// Result is the outcome of parsing one category segment.
// MissingAnswer lists the ordinals whose answer key could not be
// parsed, in encounter order.
type Result struct {
	Category      string
	Blocks        []Block
	MissingAnswer []int
}

// Parser walks one category segment with a single forward cursor.
// It never backtracks: lines consumed by a discarded block are not
// reprocessed.
type Parser struct {
	category  string
	lines     []string
	pos       int
	log       logging.Logger
	collector stats.Collector
}

// NewParser creates a parser scoped to one category segment.
func NewParser(
	segment Segment,
	log logging.Logger,
	collector stats.Collector,
) *Parser {
	return &Parser{
		category:  segment.Name,
		lines:     segment.Lines,
		log:       log,
		collector: collector,
	}
}

// Parse scans the segment for question blocks until its lines are
// exhausted. Blocks without an Options marker are discarded with a
// warning; blocks without a recognizable answer-key line are
// retained with empty CorrectLetters and listed in MissingAnswer.
func (p *Parser) Parse() Result {
	result := Result{Category: p.category}

	for p.pos < len(p.lines) {
		ordinal, ok := MatchQuestionHeader(p.lines[p.pos])
		if !ok {
			p.pos++
			continue
		}
		p.pos++

		prompt := p.readPrompt()
		p.skipBlank()

		if p.pos >= len(p.lines) || !IsOptionsMarker(p.lines[p.pos]) {
			p.log.Warn("question has no Options line, block skipped",
				logging.StringField("category", p.category),
				logging.IntField("question", ordinal),
			)
			p.collector.RecordBlockDropped(p.category, ordinal)
			continue
		}
		p.pos++

		options := p.readOptions()
		p.skipBlank()

		block := Block{
			Ordinal: ordinal,
			Prompt:  prompt,
			Options: options,
		}

		if p.pos < len(p.lines) {
			if letters, ok := MatchAnswerKey(p.lines[p.pos]); ok {
				block.CorrectLetters = letters
				p.pos++
			} else {
				result.MissingAnswer = append(result.MissingAnswer, ordinal)
			}
		} else {
			result.MissingAnswer = append(result.MissingAnswer, ordinal)
		}

		result.Blocks = append(result.Blocks, block)
		p.collector.RecordParsed(p.category)
	}

	return result
}

// readPrompt skips leading blank lines, then joins consecutive
// non-blank lines with single spaces until a blank line or end of
// input.
func (p *Parser) readPrompt() string {
	p.skipBlank()
	var prompt string
	for p.pos < len(p.lines) && !isBlank(p.lines[p.pos]) {
		line := strings.TrimSpace(p.lines[p.pos])
		if prompt == "" {
			prompt = line
		} else {
			prompt += " " + line
		}
		p.pos++
	}
	return prompt
}

// readOptions accumulates option lines until a blank line. Lines
// in the run that do not match the option pattern are ignored:
// they neither contribute options nor terminate the run.
func (p *Parser) readOptions() []Option {
	var options []Option
	for p.pos < len(p.lines) && !isBlank(p.lines[p.pos]) {
		if opt, ok := MatchOption(p.lines[p.pos]); ok {
			options = append(options, opt)
		}
		p.pos++
	}
	return options
}

func (p *Parser) skipBlank() {
	for p.pos < len(p.lines) && isBlank(p.lines[p.pos]) {
		p.pos++
	}
}
