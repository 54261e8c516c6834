package handlers

import "net/http"

// Routes registers the showcase API.
func Routes(s *Session) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", StateHandler(s))

	mux.HandleFunc("POST /api/account", CreateAccountHandler(s))
	mux.HandleFunc("GET /api/questions", QuestionsHandler())
	mux.HandleFunc("POST /api/questionnaire/start", StartQuestionnaireHandler(s))
	mux.HandleFunc("POST /api/questionnaire/select", SelectOptionHandler(s))
	mux.HandleFunc("POST /api/questionnaire/confirm", ConfirmHandler(s))
	mux.HandleFunc("POST /api/questionnaire/back", BackHandler(s))
	mux.HandleFunc("POST /api/home", GoHomeHandler(s))

	mux.HandleFunc("GET /api/restaurants", RestaurantsHandler(s))
	mux.HandleFunc("GET /api/restaurants/{id}", RestaurantHandler(s))
	mux.HandleFunc("GET /api/categories", CategoriesHandler(s))
	mux.HandleFunc("POST /api/sections/{section}", SectionHandler(s))
	mux.HandleFunc("POST /api/search", CommandSearchHandler(s))
	mux.HandleFunc("POST /api/carousel/step", StepHandler(s))
	mux.HandleFunc("POST /api/carousel/select/{id}", SelectRestaurantHandler(s))
	mux.HandleFunc("POST /api/actions/{action}", HeroActionHandler(s))

	mux.HandleFunc("GET /api/settings", SettingsHandler(s))
	mux.HandleFunc("GET /api/settings/names", SettingNamesHandler())
	mux.HandleFunc("PUT /api/settings/{flag}", SetFlagHandler(s))

	mux.HandleFunc("GET /api/notifications", NotificationsHandler(s))
	mux.HandleFunc("DELETE /api/notifications/{id}", DismissNotificationHandler(s))

	return mux
}
