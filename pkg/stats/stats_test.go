package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Parsed(t *testing.T) {
	c := NewCounts()
	c.RecordParsed("CSA EXAM QUESTIONS")
	c.RecordParsed("CSA EXAM QUESTIONS")
	c.RecordParsed("YOUTUBE DUMPS")

	assert.Equal(t, 2, c.Parsed("CSA EXAM QUESTIONS"))
	assert.Equal(t, 1, c.Parsed("YOUTUBE DUMPS"))
	assert.Equal(t, 0, c.Parsed("unknown"))
}

func TestCounts_DroppedBlocks(t *testing.T) {
	c := NewCounts()
	c.RecordBlockDropped("CSA EXAM QUESTIONS", 4)
	c.RecordBlockDropped("CSA EXAM QUESTIONS", 9)

	assert.Equal(t, []int{4, 9}, c.DroppedBlocks("CSA EXAM QUESTIONS"))
	assert.Empty(t, c.DroppedBlocks("YOUTUBE DUMPS"))
}

func TestCounts_MissingAnswers(t *testing.T) {
	c := NewCounts()
	c.RecordAnswerMissing("SKILLCERT QUESTIONS", 2)
	c.RecordAnswerMissing("SKILLCERT QUESTIONS", 7)

	assert.Equal(t, []int{2, 7}, c.MissingAnswers("SKILLCERT QUESTIONS"))
}

func TestCounts_Included(t *testing.T) {
	c := NewCounts()
	c.RecordIncluded("csa")
	c.RecordIncluded("csa")
	c.RecordIncluded("other")

	assert.Equal(t, 2, c.Included("csa"))
	assert.Equal(t, 1, c.Included("other"))
	assert.Equal(t, 0, c.Included("youtube"))
}

func TestNoopCollector(t *testing.T) {
	var c Collector = NoopCollector{}

	// None of these should panic.
	c.RecordBlockDropped("x", 1)
	c.RecordParsed("x")
	c.RecordAnswerMissing("x", 1)
	c.RecordIncluded("x")
}
