// Package chemistry holds the embedded reference data the learning tool
// is built around: the compound comparison table, the Born-Haber cycle
// for NaCl, and the crystal structure constants. All data is fixed and
// immutable; accessors return copies.
package chemistry

import "github.com/chemtools/latticelab/errors"

// Compound is one row of the lattice enthalpy comparison table.
type Compound struct {
	// Name is the ASCII lookup key (e.g. "Na2O").
	Name string `json:"name"`
	// Formula is the display form with proper subscripts (e.g. "Na₂O").
	Formula string `json:"formula"`
	// LatticeEnthalpy is in kJ/mol.
	LatticeEnthalpy int `json:"latticeEnthalpyKJMol"`
	CationCharge    int `json:"cationCharge"`
	AnionCharge     int `json:"anionCharge"`
	// Ionic radii are in picometres.
	CationRadius int `json:"cationRadiusPm"`
	AnionRadius  int `json:"anionRadiusPm"`
}

// ChargeProduct returns the product of the ion charge magnitudes.
func (c Compound) ChargeProduct() int {
	return c.CationCharge * c.AnionCharge
}

// RadiusSum returns the sum of the ionic radii in pm.
func (c Compound) RadiusSum() int {
	return c.CationRadius + c.AnionRadius
}

// compounds is the fixed seven-row reference table.
var compounds = []Compound{
	{Name: "LiCl", Formula: "LiCl", LatticeEnthalpy: 853, CationCharge: 1, AnionCharge: 1, CationRadius: 76, AnionRadius: 181},
	{Name: "NaCl", Formula: "NaCl", LatticeEnthalpy: 786, CationCharge: 1, AnionCharge: 1, CationRadius: 102, AnionRadius: 181},
	{Name: "Na2O", Formula: "Na₂O", LatticeEnthalpy: 2478, CationCharge: 1, AnionCharge: 2, CationRadius: 102, AnionRadius: 140},
	{Name: "K2O", Formula: "K₂O", LatticeEnthalpy: 2238, CationCharge: 1, AnionCharge: 2, CationRadius: 138, AnionRadius: 140},
	{Name: "MgS", Formula: "MgS", LatticeEnthalpy: 3406, CationCharge: 2, AnionCharge: 2, CationRadius: 72, AnionRadius: 184},
	{Name: "CaCl2", Formula: "CaCl₂", LatticeEnthalpy: 2255, CationCharge: 2, AnionCharge: 1, CationRadius: 100, AnionRadius: 181},
	{Name: "AlCl3", Formula: "AlCl₃", LatticeEnthalpy: 5492, CationCharge: 3, AnionCharge: 1, CationRadius: 54, AnionRadius: 181},
}

// Compounds returns the full reference table in display order.
func Compounds() []Compound {
	out := make([]Compound, len(compounds))
	copy(out, compounds)
	return out
}

// CompoundByName looks up a compound by its ASCII name.
func CompoundByName(name string) (Compound, error) {
	for _, c := range compounds {
		if c.Name == name {
			return c, nil
		}
	}
	return Compound{}, errors.UnknownCompound(name)
}

// CompoundNames returns the lookup keys in display order.
func CompoundNames() []string {
	names := make([]string, len(compounds))
	for i, c := range compounds {
		names[i] = c.Name
	}
	return names
}
