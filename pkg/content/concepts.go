package content

// Topic enumerates the conceptual question topics.
type Topic int

const (
	TopicFactors Topic = iota
	TopicCovalentCharacter
	TopicPolarization
	TopicCrystalStructures

	topicCount = 4
)

var topicTitles = [topicCount]string{
	"Factors Affecting Lattice Enthalpy",
	"Covalent Character in Ionic Compounds",
	"Polarization and Fajan's Rules",
	"Crystal Structures and Lattice Energy",
}

// Title returns the display name of the topic.
func (t Topic) Title() string {
	if t < 0 || t >= topicCount {
		return "Unknown"
	}
	return topicTitles[t]
}

// Topics returns all conceptual topics in order.
func Topics() []Topic {
	return []Topic{TopicFactors, TopicCovalentCharacter, TopicPolarization, TopicCrystalStructures}
}

// QA is a conceptual question with its model answer.
type QA struct {
	Question string
	Answer   string
}

// FactorQuestions returns the Q&A set for the factors topic.
func FactorQuestions() []QA {
	return []QA{
		{
			Question: "Why does MgO have a much higher lattice enthalpy than NaCl?",
			Answer: "MgO has doubly charged ions (Mg²⁺, O²⁻) compared to singly charged ions in NaCl (Na⁺, Cl⁻). " +
				"Since lattice enthalpy is proportional to the product of charges, MgO has approximately 4 times higher lattice enthalpy.",
		},
		{
			Question: "Explain why LiF has higher lattice enthalpy than CsI.",
			Answer: "Li⁺ and F⁻ are much smaller ions than Cs⁺ and I⁻. The smaller size leads to shorter interionic " +
				"distances and stronger electrostatic attractions, resulting in higher lattice enthalpy.",
		},
		{
			Question: "How does crystal structure affect lattice enthalpy?",
			Answer: "Different crystal structures have different coordination numbers and packing efficiencies. " +
				"Higher coordination numbers generally lead to more favorable electrostatic interactions and higher lattice enthalpies.",
		},
	}
}

// FajansRules returns the three heuristics for covalent character.
func FajansRules() []string {
	return []string{
		"A small, highly charged cation increases covalent character",
		"A large, highly charged anion increases covalent character",
		"A cation with a pseudo-noble gas electron configuration increases covalent character",
	}
}

// PolarizationIntro explains the polarization topic.
const PolarizationIntro = "Polarization occurs when a cation distorts the electron cloud of an anion, " +
	"leading to covalent character in supposedly ionic compounds."

// PolarizationFactors lists what increases polarization.
func PolarizationFactors() []string {
	return []string{
		"High charge on cation",
		"Small size of cation",
		"Large size of anion",
		"High charge on anion",
		"Pseudo-noble gas configuration of cation",
	}
}

// PolarizationExamples lists illustrative compounds.
func PolarizationExamples() []string {
	return []string{
		"BeF₂: high polarization → covalent character",
		"AgCl: Ag⁺ has pseudo-noble gas config → covalent character",
		"PbI₂: large I⁻ easily polarized → yellow color",
	}
}
