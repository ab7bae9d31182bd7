// Package report renders the post-build console summary.
package report

import (
	"digital.vasic.questionbank/pkg/question"
	"digital.vasic.questionbank/pkg/stats"
)

// CategorySummary aggregates the outcome for one mapped category.
type CategorySummary struct {
	Name          string
	Key           string
	Included      int
	Skipped       int
	MissingAnswer []int
	DroppedBlocks []int
}

// Summary is the whole build outcome, in category table order.
// It is purely observational and has no effect on the bank.
type Summary struct {
	Categories []CategorySummary
}

// Build assembles a summary from the collected counts and the
// finished bank. Only mapped categories appear; unmapped ones
// surface solely through parse-time warnings.
func Build(
	table question.CategoryTable,
	counts *stats.Counts,
	bank *question.Bank,
) *Summary {
	s := &Summary{
		Categories: make([]CategorySummary, 0, len(table)),
	}
	for _, entry := range table {
		missing := counts.MissingAnswers(entry.Name)
		s.Categories = append(s.Categories, CategorySummary{
			Name:          entry.Name,
			Key:           entry.Key,
			Included:      bank.CountFor(entry.Key),
			Skipped:       len(missing),
			MissingAnswer: missing,
			DroppedBlocks: counts.DroppedBlocks(entry.Name),
		})
	}
	return s
}
