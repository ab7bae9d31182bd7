package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCategoryTable(t *testing.T) {
	table, err := LoadCategoryTable()
	require.NoError(t, err)

	assert.Equal(t, CategoryTable{
		{Name: "CSA EXAM QUESTIONS", Key: "csa"},
		{Name: "SKILLCERT QUESTIONS", Key: "skillcert"},
		{Name: "YOUTUBE DUMPS", Key: "youtube"},
		{Name: "OTHER SOURCES 1 QUESTIONS", Key: "other"},
	}, table)
}

func TestCategoryTable_KeyFor(t *testing.T) {
	table, err := LoadCategoryTable()
	require.NoError(t, err)

	key, ok := table.KeyFor("CSA EXAM QUESTIONS")
	require.True(t, ok)
	assert.Equal(t, "csa", key)
}

func TestCategoryTable_KeyFor_Unmapped(t *testing.T) {
	table, err := LoadCategoryTable()
	require.NoError(t, err)

	_, ok := table.KeyFor("SOME NEW CATEGORY")
	assert.False(t, ok)

	// Matching is exact, not case-folded.
	_, ok = table.KeyFor("csa exam questions")
	assert.False(t, ok)
}
