// Package carousel tracks the restaurant shown in the hero panel.
package carousel

import (
	"errors"

	"gpsshowcase/models"
)

// ErrEmpty is returned when stepping through an empty list.
var ErrEmpty = errors.New("carousel is empty")

// Direction is a relative step of the media controls.
type Direction int

const (
	Previous Direction = iota
	Next
	SkipForwardTwo
)

func (d Direction) delta() int {
	switch d {
	case Previous:
		return -1
	case Next:
		return 1
	case SkipForwardTwo:
		return 2
	default:
		return 0
	}
}

// ParseDirection accepts the control names used by the front-ends.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "prev", "previous":
		return Previous, true
	case "next":
		return Next, true
	case "forward", "skip-forward-two":
		return SkipForwardTwo, true
	default:
		return 0, false
	}
}

// Carousel holds an index into the active list, which is either the full
// catalog or the last filtered subset.
type Carousel struct {
	full   []models.Restaurant
	active []models.Restaurant
	index  int
}

func New(full []models.Restaurant) *Carousel {
	c := &Carousel{full: full}
	c.Reset()
	return c
}

// Reset shows the full catalog starting at its first entry.
func (c *Carousel) Reset() {
	c.active = c.full
	c.index = 0
}

// Show makes list the active list and selects its first entry.
func (c *Carousel) Show(list []models.Restaurant) {
	c.active = list
	c.index = 0
}

func (c *Carousel) Index() int                  { return c.index }
func (c *Carousel) Len() int                    { return len(c.active) }
func (c *Carousel) Active() []models.Restaurant { return c.active }

// Current returns the hero restaurant; ok is false for an empty list.
func (c *Carousel) Current() (models.Restaurant, bool) {
	if len(c.active) == 0 {
		return models.Restaurant{}, false
	}
	return c.active[c.index], true
}

// Step moves with wraparound. On an empty list it changes nothing and
// returns ErrEmpty.
func (c *Carousel) Step(d Direction) (int, error) {
	n := len(c.active)
	if n == 0 {
		return c.index, ErrEmpty
	}
	c.index = ((c.index+d.delta())%n + n) % n
	return c.index, nil
}

// SelectDirect picks r by its position in the full catalog. Later steps
// cycle through the full catalog, not the filtered view.
func (c *Carousel) SelectDirect(r models.Restaurant) bool {
	for i, candidate := range c.full {
		if candidate.ID == r.ID {
			c.active = c.full
			c.index = i
			return true
		}
	}
	return false
}
