package exercise

import (
	"math"

	"github.com/chemtools/latticelab/pkg/chemistry"
)

// formationEnthalpy is the enthalpy of formation of NaCl given in the
// practice problem, kJ/mol.
const formationEnthalpy = -411

// calculationTolerance is the only tolerance used anywhere: an answer
// within ±10 kJ/mol of the embedded constant is accepted.
const calculationTolerance = 10

// WorksheetRow is one line of the practice problem's data table.
type WorksheetRow struct {
	Process string
	Energy  string
}

// Worksheet returns the data table for the Born-Haber calculation
// exercise: compute the lattice enthalpy of NaCl from these values.
func Worksheet() []WorksheetRow {
	return []WorksheetRow{
		{Process: "Sublimation of Na", Energy: "+107"},
		{Process: "Dissociation of Cl₂", Energy: "+122"},
		{Process: "Ionization of Na", Energy: "+496"},
		{Process: "Electron affinity of Cl", Energy: "-349"},
		{Process: "Formation of NaCl", Energy: "-411"},
	}
}

// CalculationAnswer is the lattice enthalpy of NaCl derived from the
// worksheet values: ΔH_lattice = ΔH_sub + ΔH_diss + ΔH_ion + ΔH_ea - ΔH_form.
func CalculationAnswer() int {
	return chemistry.SublimationEnthalpy +
		chemistry.DissociationEnthalpy +
		chemistry.IonizationEnergy +
		chemistry.ElectronAffinity -
		formationEnthalpy
}

// CheckCalculation reports whether the entered value is within the
// accepted band of the worksheet answer.
func CheckCalculation(value float64) bool {
	return math.Abs(value-float64(CalculationAnswer())) < calculationTolerance
}

// Solution is the worked explanation shown after a wrong answer.
func Solution() string {
	return "ΔH_lattice = ΔH_sub + ΔH_diss + ΔH_ion + ΔH_ea - ΔH_form"
}
