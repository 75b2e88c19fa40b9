package exercise

import "sort"

// rankingCompounds is the presentation order of the ranking exercise.
// LiF and MgO are deliberately not in the main comparison table; the
// exercise stands on its own fixed list.
var rankingCompounds = []string{"LiF", "NaCl", "MgO", "CaCl2"}

// correctRanking is the reference ordering, highest lattice enthalpy
// first. It is a fixed literal, not derived from the comparison table.
var correctRanking = []string{"MgO", "LiF", "CaCl2", "NaCl"}

// RankingCompounds returns the compounds to rank, in presentation order.
func RankingCompounds() []string {
	out := make([]string, len(rankingCompounds))
	copy(out, rankingCompounds)
	return out
}

// CorrectRanking returns the reference ordering (highest first).
func CorrectRanking() []string {
	out := make([]string, len(correctRanking))
	copy(out, correctRanking)
	return out
}

// OrderByRank sorts the ranking compounds by the user's assigned rank
// (1 = highest). The sort is stable, so compounds sharing a rank keep
// their presentation order. Compounds missing from ranks sort after
// ranked ones. The result is display-only; rankings are never graded.
func OrderByRank(ranks map[string]int) []string {
	out := RankingCompounds()
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := ranks[out[i]]
		rj, jok := ranks[out[j]]
		if iok != jok {
			return iok
		}
		return ri < rj
	})
	return out
}
