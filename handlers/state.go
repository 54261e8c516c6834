package handlers

import (
	"net/http"

	"gpsshowcase/models"
	"gpsshowcase/notify"
	"gpsshowcase/showcase"
)

// QuestionView is the questionnaire fragment of the state response.
type QuestionView struct {
	Question   models.Question `json:"question"`
	Index      int             `json:"index"`
	Total      int             `json:"total"`
	Progress   float64         `json:"progress"`
	Tentative  string          `json:"tentative,omitempty"`
	CanConfirm bool            `json:"can_confirm"`
	CanGoBack  bool            `json:"can_go_back"`
}

// HomeView is the dashboard fragment of the state response.
type HomeView struct {
	Section       string              `json:"section"`
	Category      models.Category     `json:"category,omitempty"`
	Restaurants   []models.Restaurant `json:"restaurants"`
	Empty         bool                `json:"empty"`
	Hero          *models.Restaurant  `json:"hero,omitempty"`
	HeroLight     string              `json:"hero_light,omitempty"`
	CarouselIndex int                 `json:"carousel_index"`
	Carousel      []models.Restaurant `json:"carousel"`
	Selected      *models.Restaurant  `json:"selected,omitempty"`
	Clock         string              `json:"clock"`
}

// StateResponse is everything a front-end needs to render the current page.
type StateResponse struct {
	Page          string          `json:"page"`
	Questionnaire *QuestionView   `json:"questionnaire,omitempty"`
	Home          *HomeView       `json:"home,omitempty"`
	Settings      models.Settings `json:"settings"`
	Notifications []notify.Toast  `json:"notifications"`
}

func buildState(a *showcase.App) StateResponse {
	resp := StateResponse{
		Page:          string(a.Page()),
		Settings:      a.Settings(),
		Notifications: a.Notifications(),
	}

	quiz := a.Questionnaire()
	if q, ok := quiz.Current(); ok {
		resp.Questionnaire = &QuestionView{
			Question:   q,
			Index:      quiz.Index(),
			Total:      quiz.Total(),
			Progress:   quiz.Progress(),
			Tentative:  quiz.Tentative(),
			CanConfirm: quiz.CanConfirm(),
			CanGoBack:  quiz.Index() > 0,
		}
	}

	home := &HomeView{
		Section:       a.SectionTitle(),
		Category:      a.Category(),
		Restaurants:   a.Listing(),
		Empty:         len(a.Listing()) == 0,
		CarouselIndex: a.Carousel().Index(),
		Carousel:      a.Carousel().Active(),
		Clock:         a.Clock(),
	}
	if hero, ok := a.Hero(); ok {
		home.Hero = &hero
		home.HeroLight = hero.Status.Light()
	}
	if sel, ok := a.Selected(); ok {
		home.Selected = &sel
	}
	resp.Home = home
	return resp
}

// StateHandler returns the full view state.
func StateHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp StateResponse
		s.Do(func(a *showcase.App) { resp = buildState(a) })
		writeJSON(w, http.StatusOK, resp)
	}
}
