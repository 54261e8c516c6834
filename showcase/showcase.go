// Package showcase is the controller behind every view of the demo: it owns
// navigation, the questionnaire, the catalog views, settings and toasts.
//
// An App is not safe for concurrent use. The terminal UI drives it from its
// update loop; the HTTP layer serializes access with a mutex.
package showcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gpsshowcase/account"
	"gpsshowcase/carousel"
	"gpsshowcase/catalog"
	"gpsshowcase/models"
	"gpsshowcase/navigation"
	"gpsshowcase/notify"
	"gpsshowcase/questionnaire"
	"gpsshowcase/settings"
	"gpsshowcase/storage"
)

const (
	// AdvanceDelay separates a successful sign-up from the questionnaire.
	AdvanceDelay = 1500 * time.Millisecond

	storageUnavailable = "Storage unavailable. Changes will not be saved."
	clockLayout        = "3:04 PM"
)

var (
	ErrNoRestaurant  = errors.New("no restaurant selected")
	ErrUnknownAction = errors.New("unknown action")
)

// Sections that show the whole catalog rather than a category.
var overviewSections = map[string]string{
	"showcase":      "Showcase",
	"restaurants":   "Restaurants",
	"favourite-all": "Favourite All",
	"playlist":      "Playlist",
}

// Options wires the collaborators of an App. Zero values get defaults.
type Options struct {
	Store           storage.Store
	Catalog         *catalog.Catalog
	Now             func() time.Time
	NotificationTTL time.Duration
	// OnTheme receives light/dark theme changes for the view layer.
	OnTheme settings.ThemeFunc
}

// App is the single owner of the showcase state.
type App struct {
	kv       storage.Store
	now      func() time.Time
	nav      *navigation.Navigator
	quiz     *questionnaire.Engine
	catalog  *catalog.Catalog
	carousel *carousel.Carousel
	settings *settings.Store
	toasts   *notify.Emitter

	category     models.Category
	sectionTitle string
	listing      []models.Restaurant
	selected     *models.Restaurant
	clock        string
	account      *models.Account
}

func New(opts Options) *App {
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &App{
		kv:           opts.Store,
		now:          opts.Now,
		nav:          navigation.New(nil),
		quiz:         questionnaire.New(),
		catalog:      opts.Catalog,
		carousel:     carousel.New(opts.Catalog.All()),
		settings:     settings.NewStore(opts.Store, opts.OnTheme),
		toasts:       notify.NewEmitter(opts.NotificationTTL, opts.Now),
		sectionTitle: "Restaurants",
	}
	a.listing = a.catalog.All()
	a.clock = a.now().Format(clockLayout)
	return a
}

func (a *App) Page() navigation.Page                { return a.nav.Current() }
func (a *App) Questionnaire() *questionnaire.Engine { return a.quiz }
func (a *App) Catalog() *catalog.Catalog            { return a.catalog }
func (a *App) Carousel() *carousel.Carousel         { return a.carousel }
func (a *App) Settings() models.Settings            { return a.settings.Current() }
func (a *App) Clock() string                        { return a.clock }
func (a *App) SectionTitle() string                 { return a.sectionTitle }
func (a *App) Category() models.Category            { return a.category }

// Listing is the restaurant list currently displayed on the home page.
func (a *App) Listing() []models.Restaurant { return a.listing }

// Selected returns the restaurant picked from the list, if any.
func (a *App) Selected() (models.Restaurant, bool) {
	if a.selected == nil {
		return models.Restaurant{}, false
	}
	return *a.selected, true
}

// Hero is the restaurant shown in the hero panel.
func (a *App) Hero() (models.Restaurant, bool) { return a.carousel.Current() }

// Account returns the profile created in this session.
func (a *App) Account() (models.Account, bool) {
	if a.account == nil {
		return models.Account{}, false
	}
	return *a.account, true
}

// Notifications returns the toasts still on screen.
func (a *App) Notifications() []notify.Toast { return a.toasts.Active(a.now()) }

func (a *App) Notify(message string, sev notify.Severity) notify.Toast {
	return a.toasts.Notify(message, sev)
}

func (a *App) DismissNotification(id string) bool { return a.toasts.Dismiss(id) }

// Tick refreshes the clock text and drops expired toasts. Called by the
// periodic worker or the terminal UI tick.
func (a *App) Tick(now time.Time) {
	a.clock = now.Format(clockLayout)
	a.toasts.Prune(now)
}

// persist writes a record; a failure is reported once as a toast and the
// flow carries on with the in-memory state.
func (a *App) persist(key string, v any) bool {
	data, err := json.Marshal(v)
	if err == nil {
		err = a.kv.Set(key, string(data))
	}
	if err != nil {
		log.Printf("Persist %s failed: %v", key, err)
		a.toasts.Notify(storageUnavailable, notify.Error)
		return false
	}
	return true
}

// CreateAccount validates the sign-up form and stores the profile without
// the password. On success the caller schedules AdvanceAfterSignup after
// AdvanceDelay.
func (a *App) CreateAccount(form account.Form) error {
	profile, err := form.Profile(a.now())
	if err != nil {
		a.toasts.Notify(account.Message(err), notify.Error)
		return err
	}
	if !a.persist(storage.AccountKey, profile) {
		return storage.ErrUnavailable
	}
	a.account = &profile
	a.toasts.Notify("Account created successfully!", notify.Success)
	return nil
}

// AdvanceAfterSignup starts the questionnaire if the landing page is still
// shown. A timer that fires after the user moved on does nothing.
func (a *App) AdvanceAfterSignup() bool {
	if !a.nav.Is(navigation.Landing) {
		return false
	}
	a.StartQuestionnaire()
	return true
}

func (a *App) StartQuestionnaire() {
	a.quiz.Start()
	a.nav.Show(navigation.Questionnaire)
}

func (a *App) SelectOption(label string) error {
	if !a.nav.Is(navigation.Questionnaire) {
		return questionnaire.ErrNotActive
	}
	return a.quiz.SelectOption(label)
}

// Confirm commits the tentative answer; after the last question the answers
// are persisted and the thank-you page is shown.
func (a *App) Confirm() error {
	if !a.nav.Is(navigation.Questionnaire) {
		return questionnaire.ErrNotActive
	}
	done, err := a.quiz.Confirm()
	if err != nil {
		if errors.Is(err, questionnaire.ErrNoSelection) {
			a.toasts.Notify("Please select an option", notify.Error)
		}
		return err
	}
	if done {
		a.persist(storage.QuestionnaireKey, a.quiz.Answers())
		a.nav.Show(navigation.ThankYou)
	}
	return nil
}

func (a *App) Back() bool {
	if !a.nav.Is(navigation.Questionnaire) {
		return false
	}
	return a.quiz.Back()
}

// SavedAnswers reads the persisted questionnaire record. Unreadable records
// count as absent.
func (a *App) SavedAnswers() (models.Answers, bool) {
	raw, ok, err := a.kv.Get(storage.QuestionnaireKey)
	if err != nil || !ok {
		return nil, false
	}
	var answers models.Answers
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, false
	}
	return answers, true
}

// GoHome shows the dashboard: saved settings are restored and the carousel
// starts over on the full catalog.
func (a *App) GoHome() {
	a.nav.Show(navigation.Home)
	a.settings.Load()
	a.settings.Apply()
	a.resetListing("Restaurants")
}

func (a *App) resetListing(title string) {
	a.sectionTitle = title
	a.category = ""
	a.listing = a.catalog.All()
	a.selected = nil
	a.carousel.Reset()
}

// SelectSection handles the sidebar: overview sections show everything, a
// category filters the list and moves the hero to its first match.
func (a *App) SelectSection(section string) error {
	if title, ok := overviewSections[section]; ok {
		a.resetListing(title)
		return nil
	}
	cat := models.Category(section)
	if !cat.Valid() {
		return fmt.Errorf("unknown section %q", section)
	}
	a.category = cat
	a.sectionTitle = cat.Label()
	a.listing = a.catalog.FilterByCategory(cat)
	a.selected = nil
	if len(a.listing) == 0 {
		a.toasts.Notify("No restaurants in this category", notify.Info)
		return nil
	}
	a.carousel.Show(a.listing)
	return nil
}

// Search filters the list by free text. Blank queries are ignored.
func (a *App) Search(query string) ([]models.Restaurant, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}
	a.toasts.Notify("Searching for: "+account.Sanitize(query), notify.Info)
	results := a.catalog.Search(query)
	a.listing = results
	a.category = ""
	a.selected = nil
	if len(results) == 0 {
		a.toasts.Notify("No results found", notify.Info)
	}
	return results, true
}

// Step moves the hero. On an empty list it is a no-op returning carousel.ErrEmpty.
func (a *App) Step(d carousel.Direction) error {
	_, err := a.carousel.Step(d)
	return err
}

// SelectRestaurant picks a restaurant by ID. The hero index is rebased onto
// the full catalog.
func (a *App) SelectRestaurant(id int64) (models.Restaurant, error) {
	r, err := a.catalog.ByID(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	a.selected = &r
	a.carousel.SelectDirect(r)
	return r, nil
}

// HeroAction runs one of the hero buttons and returns the toast it raised.
func (a *App) HeroAction(action string) (notify.Toast, error) {
	r, ok := a.carousel.Current()
	if !ok {
		return notify.Toast{}, ErrNoRestaurant
	}
	switch action {
	case "favourite":
		return a.toasts.Notify(fmt.Sprintf("Added %q to Favourites", r.Name), notify.Success), nil
	case "reservation":
		return a.toasts.Notify(fmt.Sprintf("Opening reservation for %q", r.Name), notify.Info), nil
	case "route":
		return a.toasts.Notify(fmt.Sprintf("Routing to %q", r.Name), notify.Info), nil
	default:
		return notify.Toast{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}

// SetFlag flips one setting. Persistence failures become a toast; the new
// value stays in effect.
func (a *App) SetFlag(name string, value bool) error {
	err := a.settings.SetFlag(name, value)
	if errors.Is(err, settings.ErrUnknownFlag) {
		return err
	}
	if err != nil {
		log.Printf("Persist settings failed: %v", err)
		a.toasts.Notify(storageUnavailable, notify.Error)
	}
	return nil
}

// Flag reads one setting by name.
func (a *App) Flag(name string) (bool, error) { return a.settings.Flag(name) }

// LoadSettings restores persisted settings without leaving the current page.
func (a *App) LoadSettings() { a.settings.Load() }
