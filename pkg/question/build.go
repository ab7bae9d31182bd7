package question

import (
	"digital.vasic.questionbank/pkg/scan"
	"digital.vasic.questionbank/pkg/stats"
)

// Build assembles the output bank from per-category parse results.
// Categories absent from the table never reach the bank. Questions
// without a usable answer key are dropped here, their ordinals
// recorded with the collector for the report. When the same
// category name appears more than once in the input, the last
// segment wins.
func Build(
	table CategoryTable,
	results []scan.Result,
	collector stats.Collector,
) *Bank {
	byName := make(map[string]scan.Result, len(results))
	for _, result := range results {
		byName[result.Category] = result
	}

	bank := NewBank()
	for _, entry := range table {
		result := byName[entry.Name]
		questions := make([]Question, 0, len(result.Blocks))
		for _, block := range result.Blocks {
			q, ok := Resolve(block)
			if !ok {
				collector.RecordAnswerMissing(entry.Name, block.Ordinal)
				continue
			}
			questions = append(questions, q)
			collector.RecordIncluded(entry.Key)
		}
		bank.Add(entry.Key, questions)
	}
	return bank
}
