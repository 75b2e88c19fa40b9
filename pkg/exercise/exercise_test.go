package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionQuestions(t *testing.T) {
	qs := PredictionQuestions()
	require.Len(t, qs, 2)

	assert.True(t, CheckOption(0, qs[0].Correct), "MgO is the correct first answer")
	assert.False(t, CheckOption(1, qs[0].Correct))
	assert.True(t, CheckOption(1, qs[1].Correct), "smaller ions is the correct second answer")

	for i, q := range qs {
		assert.NotEmpty(t, q.Explanation, "question %d needs an explanation", i)
		assert.Less(t, q.Correct, len(q.Options), "question %d correct index in range", i)
	}
}

func TestPolarizationQuiz(t *testing.T) {
	q := PolarizationQuiz()
	assert.Equal(t, "Li⁺", q.Options[q.Correct])
}

func TestCalculationAnswer(t *testing.T) {
	// 107 + 122 + 496 - 349 + 411
	assert.Equal(t, 385, CalculationAnswer())
}

func TestCheckCalculation(t *testing.T) {
	tests := []struct {
		value float64
		want  bool
	}{
		{385, true},
		{376, true},
		{394, true},
		{375.0001, true},
		{394.9999, true},
		{375, false}, // exactly 10 away is rejected
		{395, false},
		{374, false},
		{396, false},
		{0, false},
		{-385, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CheckCalculation(tc.value), "value %v", tc.value)
	}
}

func TestWorksheet(t *testing.T) {
	rows := Worksheet()
	require.Len(t, rows, 5)
	assert.Equal(t, "Sublimation of Na", rows[0].Process)
	assert.Equal(t, "-411", rows[4].Energy)
}

func TestOrderByRank(t *testing.T) {
	order := OrderByRank(map[string]int{"MgO": 1, "LiF": 2, "CaCl2": 3, "NaCl": 4})
	assert.Equal(t, []string{"MgO", "LiF", "CaCl2", "NaCl"}, order)
}

func TestOrderByRankTiesKeepPresentationOrder(t *testing.T) {
	// Everything ranked 1: the presentation order must be preserved.
	order := OrderByRank(map[string]int{"LiF": 1, "NaCl": 1, "MgO": 1, "CaCl2": 1})
	assert.Equal(t, RankingCompounds(), order)
}

func TestOrderByRankMissingRanksSortLast(t *testing.T) {
	order := OrderByRank(map[string]int{"MgO": 1})
	assert.Equal(t, "MgO", order[0])
	assert.Equal(t, []string{"LiF", "NaCl", "CaCl2"}, order[1:])
}

func TestCorrectRankingIsFixed(t *testing.T) {
	assert.Equal(t, []string{"MgO", "LiF", "CaCl2", "NaCl"}, CorrectRanking())
}
