// Package stats collects per-category parse statistics that feed
// the build report.
package stats

// Collector defines the interface for recording parse statistics.
type Collector interface {
	// RecordBlockDropped records a question block discarded because
	// it had no recognizable Options marker.
	RecordBlockDropped(category string, ordinal int)
	// RecordParsed records a question block that survived block
	// parsing for a category.
	RecordParsed(category string)
	// RecordAnswerMissing records a question excluded for a missing
	// or invalid answer key.
	RecordAnswerMissing(category string, ordinal int)
	// RecordIncluded records a question accepted into the output
	// bank under a category key.
	RecordIncluded(key string)
}

// NoopCollector is a no-op implementation of Collector useful for
// tests where statistics are not inspected.
type NoopCollector struct{}

func (NoopCollector) RecordBlockDropped(_ string, _ int)  {}
func (NoopCollector) RecordParsed(_ string)               {}
func (NoopCollector) RecordAnswerMissing(_ string, _ int) {}
func (NoopCollector) RecordIncluded(_ string)             {}

// Counts is an in-memory Collector. It is not safe for concurrent
// use; the build runs single-threaded.
type Counts struct {
	parsed   map[string]int
	dropped  map[string][]int
	missing  map[string][]int
	included map[string]int
}

// NewCounts creates an empty Counts collector.
func NewCounts() *Counts {
	return &Counts{
		parsed:   make(map[string]int),
		dropped:  make(map[string][]int),
		missing:  make(map[string][]int),
		included: make(map[string]int),
	}
}

// RecordBlockDropped records a discarded block's ordinal.
func (c *Counts) RecordBlockDropped(category string, ordinal int) {
	c.dropped[category] = append(c.dropped[category], ordinal)
}

// RecordParsed increments the parsed-block count for a category.
func (c *Counts) RecordParsed(category string) {
	c.parsed[category]++
}

// RecordAnswerMissing records the ordinal of a question whose
// answer key was missing or invalid.
func (c *Counts) RecordAnswerMissing(category string, ordinal int) {
	c.missing[category] = append(c.missing[category], ordinal)
}

// RecordIncluded increments the included count for a category key.
func (c *Counts) RecordIncluded(key string) {
	c.included[key]++
}

// Parsed returns the number of blocks parsed for a category.
func (c *Counts) Parsed(category string) int {
	return c.parsed[category]
}

// DroppedBlocks returns the ordinals of blocks discarded for a
// category, in encounter order.
func (c *Counts) DroppedBlocks(category string) []int {
	return c.dropped[category]
}

// MissingAnswers returns the ordinals excluded for missing or
// invalid answer keys, in encounter order.
func (c *Counts) MissingAnswers(category string) []int {
	return c.missing[category]
}

// Included returns the number of questions accepted under a
// category key.
func (c *Counts) Included(key string) int {
	return c.included[key]
}
