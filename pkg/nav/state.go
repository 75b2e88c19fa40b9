package nav

// StepCount is the number of Born-Haber cycle steps.
const StepCount = 6

// State is the navigation state: the current page and the current
// Born-Haber step. The zero value is the starting state (first page,
// first step).
type State struct {
	Page Page
	Step int
}

// NextPage returns the state advanced one page, clamped at the last page.
func (s State) NextPage() State {
	if s.Page < pageCount-1 {
		s.Page++
	}
	return s
}

// PrevPage returns the state moved back one page, clamped at the first page.
func (s State) PrevPage() State {
	if s.Page > 0 {
		s.Page--
	}
	return s
}

// GotoPage returns the state switched to the given page. Out-of-range
// pages are clamped.
func (s State) GotoPage(p Page) State {
	if p < 0 {
		p = 0
	}
	if p >= pageCount {
		p = pageCount - 1
	}
	s.Page = p
	return s
}

// Advance returns the state with the step incremented, clamped at the
// last step.
func (s State) Advance() State {
	if s.Step < StepCount-1 {
		s.Step++
	}
	return s
}

// Retreat returns the state with the step decremented, clamped at zero.
func (s State) Retreat() State {
	if s.Step > 0 {
		s.Step--
	}
	return s
}

// Reset returns the state with the step back at zero.
func (s State) Reset() State {
	s.Step = 0
	return s
}
