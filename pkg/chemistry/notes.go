package chemistry

// compoundNotes holds the per-compound analysis shown on the compound
// examples page, keyed by ASCII name.
var compoundNotes = map[string][]string{
	"LiCl": {
		"Alkali metal halide",
		"Structure: Rock salt (face-centered cubic)",
		"Coordination number: 6:6",
		"Typical ionic compound with moderate lattice enthalpy",
	},
	"NaCl": {
		"Alkali metal halide",
		"Structure: Rock salt (face-centered cubic)",
		"Coordination number: 6:6",
		"Typical ionic compound with moderate lattice enthalpy",
	},
	"Na2O": {
		"Alkali metal oxide",
		"Structure: Antifluorite",
		"Higher lattice enthalpy due to the doubly charged oxide ion",
		"Highly basic and reacts vigorously with water",
	},
	"K2O": {
		"Alkali metal oxide",
		"Structure: Antifluorite",
		"Higher lattice enthalpy due to the doubly charged oxide ion",
		"Highly basic and reacts vigorously with water",
	},
	"MgS": {
		"Alkaline earth metal sulfide",
		"Very high lattice enthalpy: both ions are doubly charged",
		"Structure: Rock salt type",
		"High melting point, good electrical insulator",
	},
	"CaCl2": {
		"Alkaline earth metal halide",
		"Structure: Rutile or fluorite type",
		"Ca²⁺ surrounded by 8 Cl⁻ ions",
		"Applications: de-icing agent, desiccant",
	},
	"AlCl3": {
		"High lattice enthalpy due to the Al³⁺ charge",
		"Significant covalent character from the high charge density of Al³⁺",
		"Dimeric in the vapor phase: Al₂Cl₆",
	},
}

// CompoundNotes returns the analysis bullet points for a compound, or
// nil when the name is not in the table.
func CompoundNotes(name string) []string {
	notes, ok := compoundNotes[name]
	if !ok {
		return nil
	}
	out := make([]string, len(notes))
	copy(out, notes)
	return out
}
