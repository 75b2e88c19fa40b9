package chemistry

import "github.com/chemtools/latticelab/errors"

// CrystalStructure holds the geometric constants for a lattice type.
type CrystalStructure struct {
	Name string `json:"name"`
	// Archetype is the compound the structure is named after.
	Archetype string `json:"archetype"`
	// Coordination is the cation:anion coordination ratio (e.g. "6:6").
	Coordination string `json:"coordination"`
	// Madelung is the electrostatic summation constant for the geometry.
	Madelung float64 `json:"madelung"`
	// Examples are compounds adopting this structure.
	Examples []string `json:"examples"`
	// KeyPoints are short teaching notes about the structure.
	KeyPoints []string `json:"keyPoints"`
}

var crystalStructures = []CrystalStructure{
	{
		Name:         "Rock Salt",
		Archetype:    "NaCl",
		Coordination: "6:6",
		Madelung:     1.748,
		Examples:     []string{"NaCl", "MgO", "CaO"},
		KeyPoints: []string{
			"Most common structure for 1:1 compounds",
			"Face-centered cubic arrangement",
			"High coordination leads to strong interactions",
		},
	},
	{
		Name:         "Cesium Chloride",
		Archetype:    "CsCl",
		Coordination: "8:8",
		Madelung:     1.763,
		Examples:     []string{"CsCl", "CsBr"},
		KeyPoints: []string{
			"Body-centered cubic",
			"Highest coordination for 1:1 compounds",
			"Slightly higher Madelung constant",
		},
	},
	{
		Name:         "Fluorite",
		Archetype:    "CaF₂",
		Coordination: "8:4",
		Madelung:     2.519,
		Examples:     []string{"CaF₂", "UO₂"},
		KeyPoints: []string{
			"Common for 1:2 compounds",
			"Anions in tetrahedral holes",
			"High Madelung constant due to charge arrangement",
		},
	},
	{
		Name:         "Zinc Blende",
		Archetype:    "ZnS",
		Coordination: "4:4",
		Madelung:     1.638,
		Examples:     []string{"ZnS", "CuCl"},
		KeyPoints: []string{
			"Tetrahedral coordination",
			"Common when cation and anion are similar sizes",
			"Lower coordination means lower lattice energy",
		},
	},
}

// CrystalStructures returns the fixed structure table.
func CrystalStructures() []CrystalStructure {
	out := make([]CrystalStructure, len(crystalStructures))
	copy(out, crystalStructures)
	return out
}

// StructureByName looks up a crystal structure by name.
func StructureByName(name string) (CrystalStructure, error) {
	for _, s := range crystalStructures {
		if s.Name == name {
			return s, nil
		}
	}
	return CrystalStructure{}, errors.UnknownStructure(name)
}
