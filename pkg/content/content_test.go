package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactors(t *testing.T) {
	factors := Factors()
	require.Len(t, factors, 3)
	assert.Equal(t, "Charge on Ions", factors[0].Title)
	for _, f := range factors {
		assert.NotEmpty(t, f.Points, f.Title)
	}
}

func TestBornLandeVariables(t *testing.T) {
	vars := BornLandeVariables()
	require.Len(t, vars, 7)
	assert.Equal(t, "M", vars[1].Symbol)
	assert.Equal(t, "Madelung constant", vars[1].Meaning)
}

func TestTopics(t *testing.T) {
	topics := Topics()
	require.Len(t, topics, 4)
	assert.Equal(t, "Factors Affecting Lattice Enthalpy", topics[0].Title())
	assert.Equal(t, "Crystal Structures and Lattice Energy", topics[3].Title())
}

func TestFactorQuestions(t *testing.T) {
	qas := FactorQuestions()
	require.Len(t, qas, 3)
	for _, qa := range qas {
		assert.NotEmpty(t, qa.Question)
		assert.NotEmpty(t, qa.Answer)
	}
}

func TestPolarizationContent(t *testing.T) {
	assert.Len(t, PolarizationFactors(), 5)
	assert.Len(t, PolarizationExamples(), 3)
	assert.Len(t, FajansRules(), 3)
}
