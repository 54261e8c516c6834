// Package questionnaire runs the six-step onboarding questionnaire.
package questionnaire

import (
	"errors"

	"gpsshowcase/models"
)

var (
	ErrNoSelection   = errors.New("please select an option")
	ErrUnknownOption = errors.New("option does not belong to the current question")
	ErrNotActive     = errors.New("questionnaire is not in progress")
)

// State is the engine's position in the flow.
type State int

const (
	Idle State = iota
	Showing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Showing:
		return "showing-question"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Questions returns the fixed onboarding sequence.
func Questions() []models.Question {
	yesNo := []string{"YES", "NO"}
	return []models.Question{
		{
			ID:      "restaurantType",
			Title:   "What type of restaurant are you?",
			Options: []string{"Fast Casual", "Fine Dining", "Casual Dining", "Ethnic Cuisine", "Food Trucks", "Night Clubs"},
			Kind:    models.MultipleChoice,
		},
		{
			ID:      "targetAudience",
			Title:   "Who's your target audience?",
			Options: []string{"Community", "Urban", "Upscale"},
			Kind:    models.MultipleChoice,
		},
		{
			ID:      "performanceTracking",
			Title:   "Would you be interested in tracking your performance?",
			Options: yesNo,
			Kind:    models.YesNo,
		},
		{
			ID:      "billboardFeature",
			Title:   "Would you be interested in our billboard feature?",
			Options: yesNo,
			Kind:    models.YesNo,
		},
		{
			ID:      "commercialService",
			Title:   "Would you be interested in our commercial service templates?",
			Options: yesNo,
			Kind:    models.YesNo,
		},
		{
			ID:      "newsletter",
			Title:   "Do you accept our MVP feature updates via newsletter?",
			Options: yesNo,
			Kind:    models.YesNo,
		},
	}
}

// Engine tracks the current question, the tentative choice and the confirmed
// answers. It is not safe for concurrent use.
type Engine struct {
	questions []models.Question
	state     State
	index     int
	tentative string
	answers   models.Answers
}

func New() *Engine {
	return &Engine{questions: Questions(), answers: models.Answers{}}
}

func (e *Engine) State() State { return e.state }
func (e *Engine) Index() int   { return e.index }
func (e *Engine) Total() int   { return len(e.questions) }

// Current returns the question on screen. ok is false outside the Showing state.
func (e *Engine) Current() (q models.Question, ok bool) {
	if e.state != Showing {
		return models.Question{}, false
	}
	return e.questions[e.index], true
}

// Tentative returns the unconfirmed choice for the current question, or "".
func (e *Engine) Tentative() string { return e.tentative }

// CanConfirm mirrors the enabled state of the Continue button.
func (e *Engine) CanConfirm() bool { return e.state == Showing && e.tentative != "" }

// Progress is (index+1)/total as a percentage.
func (e *Engine) Progress() float64 {
	if e.state == Idle || len(e.questions) == 0 {
		return 0
	}
	return float64(e.index+1) / float64(len(e.questions)) * 100
}

// Answers returns a copy of the confirmed answers.
func (e *Engine) Answers() models.Answers {
	out := make(models.Answers, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out
}

// Start resets the flow and shows the first question.
func (e *Engine) Start() {
	e.state = Showing
	e.index = 0
	e.tentative = ""
	e.answers = models.Answers{}
}

// SelectOption records label as the tentative choice, replacing any previous one.
func (e *Engine) SelectOption(label string) error {
	if e.state != Showing {
		return ErrNotActive
	}
	if !e.questions[e.index].HasOption(label) {
		return ErrUnknownOption
	}
	e.tentative = label
	return nil
}

// Confirm commits the tentative choice. It reports done=true once the last
// question is answered; the returned answers then hold every question.
func (e *Engine) Confirm() (done bool, err error) {
	if e.state != Showing {
		return false, ErrNotActive
	}
	if e.tentative == "" {
		return false, ErrNoSelection
	}

	e.answers[e.questions[e.index].ID] = e.tentative
	e.tentative = ""

	if e.index == len(e.questions)-1 {
		e.state = Finished
		return true, nil
	}
	e.index++
	return false, nil
}

// Back moves to the previous question and restores its confirmed answer as
// the tentative choice. At the first question it does nothing.
func (e *Engine) Back() bool {
	if e.state != Showing || e.index == 0 {
		return false
	}
	e.index--
	e.tentative = e.answers[e.questions[e.index].ID]
	return true
}
