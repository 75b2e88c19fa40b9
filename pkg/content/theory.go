// Package content holds the fixed prose shown on the reference pages:
// the theory material and the conceptual question topics. Like the
// chemistry tables, everything here is embedded and immutable.
package content

// Definition is the headline explanation of lattice enthalpy.
const Definition = "Lattice enthalpy is the energy required to completely separate one mole of an ionic solid " +
	"into gaseous ions, or the energy released when gaseous ions combine to form one mole of ionic solid."

// DefinitionEquation is the process the definition describes.
const DefinitionEquation = "MX(s) → M^n+(g) + X^n-(g)    ΔH_lattice"

// KeyInsight is the one-line takeaway on the theory page.
const KeyInsight = "Lattice enthalpy is proportional to (charge₁ × charge₂) / distance"

// Factor is one of the influences on lattice enthalpy.
type Factor struct {
	Title  string
	Points []string
}

// Factors returns the three factors affecting lattice enthalpy.
func Factors() []Factor {
	return []Factor{
		{
			Title: "Charge on Ions",
			Points: []string{
				"Higher charges → higher lattice enthalpy",
				"Lattice enthalpy ∝ (q₁ × q₂)",
				"Example: MgO (2+, 2-) has much higher lattice enthalpy than NaCl (1+, 1-)",
			},
		},
		{
			Title: "Size of Ions",
			Points: []string{
				"Smaller ions → higher lattice enthalpy",
				"Lattice enthalpy ∝ 1/r₀ (r₀ is the distance between ion centers)",
				"Example: LiF has higher lattice enthalpy than CsI",
			},
		},
		{
			Title: "Crystal Structure",
			Points: []string{
				"Different crystal structures have different coordination numbers",
				"Higher coordination number generally leads to higher lattice enthalpy",
				"Common structures: Rock salt (NaCl), Cesium chloride (CsCl), Fluorite (CaF₂)",
			},
		},
	}
}

// BornLandeEquation is the Born-Landé expression rendered in plain text.
const BornLandeEquation = "U = -(N_A · M · z⁺ · z⁻ · e²) / (4πε₀r₀) · (1 - 1/n)"

// BornLandeVariable describes one symbol of the Born-Landé equation.
type BornLandeVariable struct {
	Symbol  string
	Meaning string
}

// BornLandeVariables returns the glossary for the Born-Landé equation.
func BornLandeVariables() []BornLandeVariable {
	return []BornLandeVariable{
		{Symbol: "N_A", Meaning: "Avogadro's number"},
		{Symbol: "M", Meaning: "Madelung constant"},
		{Symbol: "z⁺, z⁻", Meaning: "Charges on cation and anion"},
		{Symbol: "e", Meaning: "Elementary charge"},
		{Symbol: "ε₀", Meaning: "Permittivity of free space"},
		{Symbol: "r₀", Meaning: "Nearest neighbor distance"},
		{Symbol: "n", Meaning: "Born exponent"},
	}
}
