package models

import "strings"

// Category is one of the fixed restaurant categories shown as home sections.
type Category string

const (
	FastCasual    Category = "fast-casual"
	FineDining    Category = "fine-dining"
	CasualDining  Category = "casual-dining"
	EthnicCuisine Category = "ethnic-cuisine"
	FoodTrucks    Category = "food-trucks"
	NightClubs    Category = "night-clubs"
)

// Categories lists every category in display order.
var Categories = []Category{FastCasual, FineDining, CasualDining, EthnicCuisine, FoodTrucks, NightClubs}

// Valid reports whether c belongs to the fixed enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label turns "fine-dining" into "Fine Dining".
func (c Category) Label() string {
	parts := strings.Split(string(c), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Status is the operating-status tag rendered as a traffic light.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closing-soon"
	StatusClosed      Status = "closed"
)

// Light maps the status onto the traffic-light color used by the front-ends.
func (s Status) Light() string {
	switch s {
	case StatusOpen:
		return "green"
	case StatusClosingSoon:
		return "yellow"
	case StatusClosed:
		return "red"
	default:
		return ""
	}
}

// Restaurant is a static catalog entry. Entries are loaded once and never mutated.
type Restaurant struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Address     string   `json:"address" yaml:"address"`
	Hours       string   `json:"hours,omitempty" yaml:"hours,omitempty"`
	Status      Status   `json:"status" yaml:"status"`
	Rating      float64  `json:"rating" yaml:"rating"`
	ReviewCount int      `json:"review_count" yaml:"review_count"`
	Theme       string   `json:"theme" yaml:"theme"`
}

// QuestionKind distinguishes free multiple-choice questions from YES/NO ones.
type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple-choice"
	YesNo          QuestionKind = "yes-no"
)

// Question is one onboarding question.
type Question struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Options []string     `json:"options"`
	Kind    QuestionKind `json:"type"`
}

// HasOption reports whether label is one of the question's options.
func (q Question) HasOption(label string) bool {
	for _, o := range q.Options {
		if o == label {
			return true
		}
	}
	return false
}

// Answers maps a question ID to the confirmed option label.
type Answers map[string]string

// Settings is the persisted record of feature toggles.
type Settings struct {
	RadiusMode        bool `json:"radiusMode"`
	AIVoiceCommand    bool `json:"aiVoiceCommand"`
	AIRecommendations bool `json:"aiRecommendations"`
	LightMode         bool `json:"lightMode"`
	VibeHigh          bool `json:"vibeHigh"`
	VibeMid           bool `json:"vibeMid"`
	VibeLow           bool `json:"vibeLow"`
}

// Account is the persisted business profile. The password is never part of it.
type Account struct {
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CreatedAt    string `json:"createdAt"`
}
