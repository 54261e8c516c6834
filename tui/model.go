// Package tui renders the showcase in a terminal with Bubble Tea.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gpsshowcase/account"
	"gpsshowcase/carousel"
	"gpsshowcase/models"
	"gpsshowcase/navigation"
	"gpsshowcase/settings"
	"gpsshowcase/showcase"
)

const defaultTickInterval = time.Second

type tickMsg time.Time

type advanceMsg struct{}

// Form field order on the landing page.
const (
	fieldBusiness = iota
	fieldEmail
	fieldPhone
	fieldPassword
	fieldConfirm
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Business name",
	"Email",
	"Phone",
	"Password",
	"Confirm password",
}

var settingLabels = map[string]string{
	settings.RadiusMode:        "Radius mode",
	settings.AIVoiceCommand:    "AI voice command",
	settings.AIRecommendations: "AI recommendations",
	settings.LightMode:         "Light mode",
	settings.VibeHigh:          "Vibe: high",
	settings.VibeMid:           "Vibe: mid",
	settings.VibeLow:           "Vibe: low",
}

// Config tunes the timers driving the model. Zero values get defaults.
type Config struct {
	AdvanceDelay time.Duration
	TickInterval time.Duration
}

// Model is the Bubble Tea model wrapping a showcase.App.
type Model struct {
	app    *showcase.App
	keys   keyMap
	styles styles
	width  int

	advanceDelay time.Duration
	tickInterval time.Duration

	fields []textinput.Model
	focus  int

	cursor int

	sections   []string
	section    int
	listCursor int

	search    textinput.Model
	searching bool

	settingsOpen   bool
	settingsCursor int
}

// New builds the model and the App behind it. The theme callback in opts is
// chained after the model's own restyling.
func New(opts showcase.Options, cfg Config) *Model {
	if cfg.AdvanceDelay <= 0 {
		cfg.AdvanceDelay = showcase.AdvanceDelay
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	m := &Model{
		keys:         newKeyMap(),
		styles:       newStyles(false),
		advanceDelay: cfg.AdvanceDelay,
		tickInterval: cfg.TickInterval,
		sections:     []string{"restaurants"},
	}
	for _, c := range models.Categories {
		m.sections = append(m.sections, string(c))
	}

	onTheme := opts.OnTheme
	opts.OnTheme = func(light bool) {
		m.styles = newStyles(light)
		if onTheme != nil {
			onTheme(light)
		}
	}
	m.app = showcase.New(opts)

	m.fields = make([]textinput.Model, fieldCount)
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 100
		ti.Width = 40
		if i == fieldPassword || i == fieldConfirm {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.fields[i] = ti
	}
	m.fields[fieldBusiness].Focus()

	m.search = textinput.New()
	m.search.Placeholder = "Search restaurants..."
	m.search.CharLimit = 100
	m.search.Width = 40
	return m
}

// App exposes the controller, mainly for tests.
func (m *Model) App() *showcase.App { return m.app }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.app.Tick(time.Time(msg))
		return m, m.tick()
	case advanceMsg:
		if m.app.AdvanceAfterSignup() {
			m.syncCursor()
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.app.Page() {
		case navigation.Landing:
			return m.updateLanding(msg)
		case navigation.Questionnaire:
			return m.updateQuestionnaire(msg)
		case navigation.ThankYou:
			return m.updateThankYou(msg)
		case navigation.Home:
			return m.updateHome(msg)
		}
	}
	return m, nil
}

func (m *Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SkipForm):
		m.app.StartQuestionnaire()
		m.syncCursor()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.focusField(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.focusField(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.focus < fieldCount-1 {
			m.focusField(m.focus + 1)
			return m, nil
		}
		return m, m.submitForm()
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) {
	i = (i + fieldCount) % fieldCount
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}

func (m *Model) form() account.Form {
	return account.Form{
		BusinessName:    m.fields[fieldBusiness].Value(),
		Email:           m.fields[fieldEmail].Value(),
		Phone:           m.fields[fieldPhone].Value(),
		Password:        m.fields[fieldPassword].Value(),
		ConfirmPassword: m.fields[fieldConfirm].Value(),
	}
}

// submitForm creates the account and schedules the move to the
// questionnaire. Failures are already reported as toasts by the App.
func (m *Model) submitForm() tea.Cmd {
	if err := m.app.CreateAccount(m.form()); err != nil {
		return nil
	}
	for i := range m.fields {
		if i == fieldPassword || i == fieldConfirm {
			m.fields[i].SetValue("")
		}
	}
	return tea.Tick(m.advanceDelay, func(time.Time) tea.Msg { return advanceMsg{} })
}

func (m *Model) updateQuestionnaire(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.app.Questionnaire().Current()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		_ = m.app.SelectOption(q.Options[m.cursor])
	case key.Matches(msg, m.keys.Submit):
		if err := m.app.Confirm(); err == nil {
			m.syncCursor()
		}
	case key.Matches(msg, m.keys.Back):
		if m.app.Back() {
			m.syncCursor()
		}
	}
	return m, nil
}

// syncCursor points the option cursor at the tentative answer, or the top.
func (m *Model) syncCursor() {
	m.cursor = 0
	quiz := m.app.Questionnaire()
	q, ok := quiz.Current()
	if !ok {
		return
	}
	for i, opt := range q.Options {
		if opt == quiz.Tentative() {
			m.cursor = i
			return
		}
	}
}

func (m *Model) updateThankYou(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.app.GoHome()
		m.section = 0
		m.listCursor = 0
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	if m.settingsOpen {
		return m.updateSettings(msg)
	}

	listing := m.app.Listing()
	switch {
	case key.Matches(msg, m.keys.Prev):
		_ = m.app.Step(carousel.Previous)
	case key.Matches(msg, m.keys.Next):
		_ = m.app.Step(carousel.Next)
	case key.Matches(msg, m.keys.Forward):
		_ = m.app.Step(carousel.SkipForwardTwo)
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(listing)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Submit):
		if m.listCursor < len(listing) {
			_, _ = m.app.SelectRestaurant(listing[m.listCursor].ID)
		}
	case key.Matches(msg, m.keys.Section):
		m.section = (m.section + 1) % len(m.sections)
		_ = m.app.SelectSection(m.sections[m.section])
		m.listCursor = 0
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Settings):
		m.settingsOpen = true
		m.settingsCursor = 0
	case key.Matches(msg, m.keys.Favourite):
		_, _ = m.app.HeroAction("favourite")
	case key.Matches(msg, m.keys.Reserve):
		_, _ = m.app.HeroAction("reservation")
	case key.Matches(msg, m.keys.Route):
		_, _ = m.app.HeroAction("route")
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		if _, ok := m.app.Search(m.search.Value()); ok {
			m.listCursor = 0
		}
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Settings):
		m.settingsOpen = false
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < len(settings.Names)-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Submit):
		name := settings.Names[m.settingsCursor]
		if on, err := m.app.Flag(name); err == nil {
			_ = m.app.SetFlag(name, !on)
		}
	}
	return m, nil
}

// Run starts the terminal UI and blocks until the user quits.
func Run(opts showcase.Options, cfg Config) error {
	_, err := tea.NewProgram(New(opts, cfg), tea.WithAltScreen()).Run()
	return err
}
