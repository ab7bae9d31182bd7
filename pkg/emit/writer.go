// Package emit writes the generated questions data file consumed
// by the quiz app.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"digital.vasic.questionbank/pkg/question"
)

// artifactHeader marks the output as generated. The file must be
// regenerated from the source text, never hand-edited.
const artifactHeader = "// Auto-generated from ALL_QUESTIONS_AND_ANSWERS.txt\n" +
	"// Do not edit by hand. Regenerate by running buildquestions.\n\n"

// Render produces the artifact bytes: the generated-file header
// followed by a QUESTION_SETS constant holding the bank as
// indented JSON.
func Render(bank *question.Bank) ([]byte, error) {
	body, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal question bank: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(artifactHeader)
	buf.WriteString("const QUESTION_SETS = ")
	buf.Write(body)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// WriteArtifact renders the bank and writes it to path. On error
// no partial artifact is guaranteed; the run is expected to abort.
func WriteArtifact(path string, bank *question.Bank) error {
	data, err := Render(bank)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}
