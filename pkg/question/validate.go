package question

import "fmt"

// ValidationError describes an invariant violation found in a
// built bank.
type ValidationError struct {
	Key     string
	ID      int
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf(
		"%s: question %d: %s: %s", e.Key, e.ID, e.Field, e.Message,
	)
}

// Validate checks bank invariants after filtering: every question
// carries at least one correct index, every index is within the
// option list, and IDs are not repeated within a category key.
// Violations are diagnostics for the operator; they never block
// the build or reach the artifact.
func Validate(b *Bank) []ValidationError {
	var errs []ValidationError
	for _, key := range b.Keys() {
		questions, _ := b.Get(key)
		ids := make(map[int]bool, len(questions))
		for _, q := range questions {
			if len(q.Correct) == 0 {
				errs = append(errs, ValidationError{
					Key: key, ID: q.ID, Field: "correct",
					Message: "no correct answer",
				})
			}
			for _, idx := range q.Correct {
				if idx < 0 || idx >= len(q.Options) {
					errs = append(errs, ValidationError{
						Key: key, ID: q.ID, Field: "correct",
						Message: fmt.Sprintf(
							"index %d out of range (%d options)",
							idx, len(q.Options),
						),
					})
				}
			}
			if ids[q.ID] {
				errs = append(errs, ValidationError{
					Key: key, ID: q.ID, Field: "id",
					Message: "duplicate question ID",
				})
			} else {
				ids[q.ID] = true
			}
		}
	}
	return errs
}
