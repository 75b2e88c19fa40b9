package chemistry

// Step is one level of the Born-Haber cycle for NaCl.
type Step struct {
	// Name labels the step (e.g. "Sublimation").
	Name string `json:"name"`
	// Species is the state of matter at this level (e.g. "Na(g) + ½Cl₂(g)").
	Species string `json:"species"`
	// Process describes the enthalpy change applied to reach this level.
	Process string `json:"process"`
	// Delta is the signed enthalpy change of this step in kJ/mol.
	Delta int `json:"deltaKJMol"`
	// Cumulative is the running total in kJ/mol.
	Cumulative int `json:"cumulativeKJMol"`
	// Commentary is the teaching note shown while this step is current.
	Commentary string `json:"commentary"`
}

// Per-step enthalpy changes for the NaCl cycle, kJ/mol.
const (
	SublimationEnthalpy      = 107
	DissociationEnthalpy     = 122
	IonizationEnergy         = 496
	ElectronAffinity         = -349
	LatticeFormationEnthalpy = -786
)

var bornHaberSteps = []Step{
	{
		Name:       "Start",
		Species:    "Na(s) + ½Cl₂(g)",
		Process:    "Starting materials",
		Delta:      0,
		Commentary: "Starting with solid sodium and gaseous chlorine.",
	},
	{
		Name:       "Sublimation",
		Species:    "Na(g) + ½Cl₂(g)",
		Process:    "Sublimation of Na",
		Delta:      SublimationEnthalpy,
		Commentary: "Energy input required to convert solid Na to gaseous Na atoms.",
	},
	{
		Name:       "Dissociation",
		Species:    "Na(g) + Cl(g)",
		Process:    "Bond dissociation of Cl₂",
		Delta:      DissociationEnthalpy,
		Commentary: "Energy input to break Cl₂ bonds.",
	},
	{
		Name:       "Ionization",
		Species:    "Na⁺(g) + Cl(g) + e⁻",
		Process:    "Ionization of Na",
		Delta:      IonizationEnergy,
		Commentary: "Energy input to remove an electron from Na.",
	},
	{
		Name:       "Electron Affinity",
		Species:    "Na⁺(g) + Cl⁻(g)",
		Process:    "Electron affinity of Cl",
		Delta:      ElectronAffinity,
		Commentary: "Energy released when Cl gains an electron.",
	},
	{
		Name:       "Lattice Formation",
		Species:    "NaCl(s)",
		Process:    "Lattice formation",
		Delta:      LatticeFormationEnthalpy,
		Commentary: "Final step: lattice enthalpy, the energy released when the ionic solid forms.",
	},
}

// BornHaberSteps returns the six cycle steps with cumulative energies
// filled in: [0, 107, 229, 725, 376, -410].
func BornHaberSteps() []Step {
	out := make([]Step, len(bornHaberSteps))
	copy(out, bornHaberSteps)

	total := 0
	for i := range out {
		total += out[i].Delta
		out[i].Cumulative = total
	}
	return out
}
