package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTitles(t *testing.T) {
	want := []string{
		"Theory & Concepts",
		"Born-Haber Cycle",
		"Data Analysis",
		"Interactive Exercises",
		"Compound Examples",
		"Conceptual Questions",
	}
	pages := Pages()
	require.Len(t, pages, 6)
	for i, p := range pages {
		assert.Equal(t, want[i], p.Title())
	}
}

func TestPageByTitle(t *testing.T) {
	p, err := PageByTitle("Born-Haber Cycle")
	require.NoError(t, err)
	assert.Equal(t, BornHaber, p)

	_, err = PageByTitle("Thermodynamics")
	assert.Error(t, err)
}

func TestStepClamping(t *testing.T) {
	s := State{}

	// Retreat at the lower bound is a no-op.
	assert.Equal(t, 0, s.Retreat().Step)

	// Advance walks to the last step and stops.
	for i := 0; i < 10; i++ {
		s = s.Advance()
	}
	assert.Equal(t, StepCount-1, s.Step)
	assert.Equal(t, StepCount-1, s.Advance().Step)
}

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	// Away from the bounds, advance then retreat is the identity.
	for step := 0; step < StepCount-1; step++ {
		s := State{Step: step}
		assert.Equal(t, s, s.Advance().Retreat(), "step %d", step)
	}
}

func TestReset(t *testing.T) {
	s := State{Page: Exercises, Step: 4}
	s = s.Reset()
	assert.Equal(t, 0, s.Step)
	assert.Equal(t, Exercises, s.Page, "reset touches only the step index")
}

func TestPageClamping(t *testing.T) {
	s := State{}
	assert.Equal(t, Theory, s.PrevPage().Page)

	for i := 0; i < 10; i++ {
		s = s.NextPage()
	}
	assert.Equal(t, Concepts, s.Page)

	assert.Equal(t, Theory, s.GotoPage(-3).Page)
	assert.Equal(t, Concepts, s.GotoPage(99).Page)
	assert.Equal(t, Analysis, s.GotoPage(Analysis).Page)
}
