// Package exercise holds the fixed quiz content and the answer checking
// rules for the interactive exercises. Checking is literal: option
// answers compare indices, the one numeric exercise compares against a
// single embedded constant with a fixed tolerance.
package exercise

// Question is a multiple-choice prediction question.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

var predictionQuestions = []Question{
	{
		Prompt:      "Which compound has higher lattice enthalpy: MgO or NaCl?",
		Options:     []string{"MgO", "NaCl", "Same"},
		Correct:     0,
		Explanation: "MgO has higher charges (Mg²⁺, O²⁻) compared to NaCl (Na⁺, Cl⁻), leading to much higher lattice enthalpy.",
	},
	{
		Prompt:      "Why does LiF have higher lattice enthalpy than CsI?",
		Options:     []string{"Larger ions", "Smaller ions", "Different charges"},
		Correct:     1,
		Explanation: "Li⁺ and F⁻ are much smaller than Cs⁺ and I⁻, leading to stronger electrostatic attraction.",
	},
}

// PredictionQuestions returns the fixed prediction quiz.
func PredictionQuestions() []Question {
	out := make([]Question, len(predictionQuestions))
	copy(out, predictionQuestions)
	return out
}

// PolarizationQuiz is the quick quiz on the polarization topic page.
func PolarizationQuiz() Question {
	return Question{
		Prompt:      "Which cation causes more polarization?",
		Options:     []string{"Li⁺", "Cs⁺"},
		Correct:     0,
		Explanation: "Li⁺ is smaller and has higher charge density, so it distorts the anion's electron cloud more.",
	}
}

// CheckOption reports whether the selected option index is the correct one.
func CheckOption(selected, correct int) bool {
	return selected == correct
}
