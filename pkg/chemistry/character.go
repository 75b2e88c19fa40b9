package chemistry

// CharacterClass buckets the predicted bonding character of a compound.
type CharacterClass int

const (
	PredominantlyIonic CharacterClass = iota
	MixedIonicCovalent
	PredominantlyCovalent
)

func (c CharacterClass) String() string {
	switch c {
	case PredominantlyIonic:
		return "Predominantly ionic"
	case MixedIonicCovalent:
		return "Mixed ionic-covalent"
	default:
		return "Predominantly covalent"
	}
}

// CovalentCharacter estimates the percentage covalent character from the
// cation charge density and anion polarizability factors of Fajan's
// rules. Both inputs range over [0.1, 2.0] in the interactive widget.
func CovalentCharacter(chargeDensity, anionPolarizability float64) float64 {
	return chargeDensity * anionPolarizability * 50
}

// ClassifyCharacter buckets a covalent character percentage.
func ClassifyCharacter(percent float64) CharacterClass {
	switch {
	case percent < 20:
		return PredominantlyIonic
	case percent < 50:
		return MixedIonicCovalent
	default:
		return PredominantlyCovalent
	}
}

// CovalentTrendRow is one row of the "increasing covalent character"
// illustration on the conceptual questions page.
type CovalentTrendRow struct {
	Compound  string
	Cation    string
	Character string
	Evidence  string
}

// CovalentTrend returns the fixed NaCl → SiCl₄ trend table.
func CovalentTrend() []CovalentTrendRow {
	return []CovalentTrendRow{
		{Compound: "NaCl", Cation: "Na⁺", Character: "Low", Evidence: "Ionic solid"},
		{Compound: "MgCl₂", Cation: "Mg²⁺", Character: "Medium", Evidence: "Ionic solid"},
		{Compound: "AlCl₃", Cation: "Al³⁺", Character: "High", Evidence: "Dimeric vapor"},
		{Compound: "SiCl₄", Cation: "Si⁴⁺", Character: "Very High", Evidence: "Molecular liquid"},
	}
}
