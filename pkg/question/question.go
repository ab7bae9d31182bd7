// Package question defines the resolved question records and the
// bank assembled from parsed category segments.
package question

import "encoding/json"

// Question is one resolved record in the output bank. Correct is
// always held as an ordered list of zero-based option indices;
// serialization collapses a single index to a bare integer for the
// quiz app.
type Question struct {
	ID      int
	Prompt  string
	Options []string
	Correct []int
}

// questionJSON mirrors the artifact object shape.
type questionJSON struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  any      `json:"correct"`
}

// MarshalJSON emits the artifact shape. Single-answer questions
// carry a bare integer under "correct", multi-select an index
// array.
func (q Question) MarshalJSON() ([]byte, error) {
	out := questionJSON{
		ID:       q.ID,
		Question: q.Prompt,
		Options:  q.Options,
		Correct:  q.Correct,
	}
	if out.Options == nil {
		out.Options = []string{}
	}
	if len(q.Correct) == 1 {
		out.Correct = q.Correct[0]
	}
	return json.Marshal(out)
}
