package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.questionbank/pkg/question"
	"digital.vasic.questionbank/pkg/stats"
)

var testTable = question.CategoryTable{
	{Name: "CSA EXAM QUESTIONS", Key: "csa"},
	{Name: "YOUTUBE DUMPS", Key: "youtube"},
}

func buildTestSummary(t *testing.T) *Summary {
	t.Helper()

	counts := stats.NewCounts()
	counts.RecordAnswerMissing("CSA EXAM QUESTIONS", 4)
	counts.RecordAnswerMissing("CSA EXAM QUESTIONS", 9)
	counts.RecordBlockDropped("YOUTUBE DUMPS", 2)

	bank := question.NewBank()
	bank.Add("csa", []question.Question{
		{ID: 1, Options: []string{"a"}, Correct: []int{0}},
		{ID: 2, Options: []string{"a"}, Correct: []int{0}},
	})
	bank.Add("youtube", nil)

	return Build(testTable, counts, bank)
}

func TestBuild_Summary(t *testing.T) {
	s := buildTestSummary(t)
	require.Len(t, s.Categories, 2)

	csa := s.Categories[0]
	assert.Equal(t, "CSA EXAM QUESTIONS", csa.Name)
	assert.Equal(t, "csa", csa.Key)
	assert.Equal(t, 2, csa.Included)
	assert.Equal(t, 2, csa.Skipped)
	assert.Equal(t, []int{4, 9}, csa.MissingAnswer)

	youtube := s.Categories[1]
	assert.Equal(t, 0, youtube.Included)
	assert.Equal(t, 0, youtube.Skipped)
	assert.Equal(t, []int{2}, youtube.DroppedBlocks)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, buildTestSummary(t)))

	expected := "CSA EXAM QUESTIONS -> key 'csa': 2 included, 2 skipped (missing/invalid Correct Answer)\n" +
		"  Questions in 'CSA EXAM QUESTIONS' with no recognizable Correct Answer line:\n" +
		"    4, 9\n" +
		"YOUTUBE DUMPS -> key 'youtube': 0 included, 0 skipped (missing/invalid Correct Answer)\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTotals(&buf, buildTestSummary(t), "questions.js"))

	expected := "\nWrote questions.js with:\n" +
		"  csa: 2 questions\n" +
		"  youtube: 0 questions\n"
	assert.Equal(t, expected, buf.String())
}
