package chart

import (
	"strings"
	"testing"
)

func TestEnergyDiagram(t *testing.T) {
	values := []int{0, 107, 229, 725, 376, -410}
	labels := []string{"Start", "Subl.", "Diss.", "Ioniz.", "E.A.", "Lattice"}

	out := EnergyDiagram(values, labels, 2)
	if out == "" {
		t.Fatal("expected diagram output")
	}

	for _, want := range []string{"725", "-410", "Start", "Lattice"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q", want)
		}
	}
	if !strings.Contains(out, "─") {
		t.Error("diagram missing level markers")
	}
	if !strings.Contains(out, "▼") {
		t.Error("diagram missing a downward connector (lattice formation drops)")
	}
}

func TestEnergyDiagramMismatchedInput(t *testing.T) {
	if out := EnergyDiagram([]int{1, 2}, []string{"only one"}, 0); out != "" {
		t.Error("mismatched values/labels should render nothing")
	}
	if out := EnergyDiagram(nil, nil, 0); out != "" {
		t.Error("empty input should render nothing")
	}
}

func TestScatter(t *testing.T) {
	s := Series{
		Name: "Lattice Enthalpy vs Charge Product",
		Points: []Point{
			{Label: "LiCl", X: 1, Y: 853},
			{Label: "NaCl", X: 1, Y: 786},
			{Label: "MgS", X: 4, Y: 3406},
			{Label: "AlCl3", X: 3, Y: 5492},
		},
	}

	out := Scatter(s, 30, 8, "Charge Product", "kJ/mol")
	if !strings.Contains(out, "●") {
		t.Error("scatter missing plotted points")
	}
	if !strings.Contains(out, "Charge Product") {
		t.Error("scatter missing x axis title")
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 8 {
		t.Errorf("expected at least 8 output lines, got %d", len(lines))
	}
}

func TestScatterEmpty(t *testing.T) {
	if out := Scatter(Series{}, 30, 8, "x", "y"); out != "" {
		t.Error("empty series should render nothing")
	}
}

func TestScatterSinglePoint(t *testing.T) {
	s := Series{Points: []Point{{X: 5, Y: 5}}}
	out := Scatter(s, 20, 5, "x", "y")
	if !strings.Contains(out, "●") {
		t.Error("single point should still plot")
	}
}
