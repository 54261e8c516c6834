// Package navigation tracks which page of the showcase is on screen.
package navigation

// Page is one of the four top-level pages.
type Page string

const (
	Landing       Page = "landing"
	Questionnaire Page = "questionnaire"
	Home          Page = "home"
	ThankYou      Page = "thankYou"
)

// Pages lists every page.
var Pages = []Page{Landing, Questionnaire, Home, ThankYou}

func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// Navigator holds exactly one active page.
type Navigator struct {
	current  Page
	onChange func(from, to Page)
}

// New starts on the landing page. onChange may be nil.
func New(onChange func(from, to Page)) *Navigator {
	return &Navigator{current: Landing, onChange: onChange}
}

func (n *Navigator) Current() Page { return n.current }

func (n *Navigator) Is(p Page) bool { return n.current == p }

// Show switches to p. Unknown pages are ignored and leave the current page active.
func (n *Navigator) Show(p Page) bool {
	if !p.Valid() {
		return false
	}
	from := n.current
	n.current = p
	if n.onChange != nil && from != p {
		n.onChange(from, p)
	}
	return true
}
