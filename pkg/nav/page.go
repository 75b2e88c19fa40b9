// Package nav models the tool's navigation state: which of the six
// content pages is showing and which Born-Haber step is current. All
// transitions are pure functions over a clamped domain; out-of-range
// indices cannot be produced.
package nav

import "github.com/chemtools/latticelab/errors"

// Page enumerates the six fixed content pages.
type Page int

const (
	Theory Page = iota
	BornHaber
	Analysis
	Exercises
	Compounds
	Concepts

	pageCount = 6
)

var pageTitles = [pageCount]string{
	"Theory & Concepts",
	"Born-Haber Cycle",
	"Data Analysis",
	"Interactive Exercises",
	"Compound Examples",
	"Conceptual Questions",
}

// Title returns the display name of the page.
func (p Page) Title() string {
	if p < 0 || p >= pageCount {
		return "Unknown"
	}
	return pageTitles[p]
}

// Pages returns all pages in order.
func Pages() []Page {
	return []Page{Theory, BornHaber, Analysis, Exercises, Compounds, Concepts}
}

// PageByTitle resolves a display name back to its page.
func PageByTitle(title string) (Page, error) {
	for i, t := range pageTitles {
		if t == title {
			return Page(i), nil
		}
	}
	return 0, errors.UnknownPage(title)
}
