package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gpsshowcase/models"
	"gpsshowcase/navigation"
	"gpsshowcase/questionnaire"
	"gpsshowcase/settings"
)

const progressWidth = 30

func (m *Model) View() string {
	var body string
	switch m.app.Page() {
	case navigation.Landing:
		body = m.viewLanding()
	case navigation.Questionnaire:
		body = m.viewQuestionnaire()
	case navigation.ThankYou:
		body = m.viewThankYou()
	case navigation.Home:
		body = m.viewHome()
	}

	parts := []string{m.viewHeader(), body}
	if toasts := m.viewToasts(); toasts != "" {
		parts = append(parts, toasts)
	}
	page := m.styles.Page
	if m.width > 0 {
		page = page.Width(m.width)
	}
	return page.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewHeader() string {
	title := m.styles.Title.Render("GPS Showcase")
	clock := m.styles.Muted.Render(m.app.Clock())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", clock) + "\n"
}

func (m *Model) viewToasts() string {
	toasts := m.app.Notifications()
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		lines = append(lines, m.styles.toast(t.Severity).Render("● "+t.Message))
	}
	return "\n" + strings.Join(lines, "\n")
}

func (m *Model) viewLanding() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create your business account") + "\n\n")
	for i, f := range m.fields {
		label := m.styles.Muted.Render(fieldLabels[i])
		if i == m.focus {
			label = m.styles.Selected.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n" + f.View() + "\n\n")
	}
	b.WriteString(m.styles.Help.Render(helpLine(m.keys.NextField, m.keys.Submit, m.keys.SkipForm, m.keys.Quit)))
	return b.String()
}

func (m *Model) viewQuestionnaire() string {
	quiz := m.app.Questionnaire()
	q, ok := quiz.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Question %d of %d", quiz.Index()+1, quiz.Total())) + "\n")
	b.WriteString(m.styles.Progress.Render(progressBar(quiz.Progress(), progressWidth)) + "\n\n")
	b.WriteString(m.styles.Title.Render(q.Title) + "\n\n")
	for i, opt := range q.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "○ "
		line := opt
		if opt == quiz.Tentative() {
			mark = "● "
			line = m.styles.Selected.Render(opt)
		}
		b.WriteString(cursor + mark + line + "\n")
	}
	b.WriteString(m.styles.Help.Render(helpLine(m.keys.Down, m.keys.Select, m.keys.Submit, m.keys.Back)))
	return b.String()
}

func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf(" %3.0f%%", fraction*100)
}

func (m *Model) viewThankYou() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Thank you!") + "\n\n")
	b.WriteString("Your answers help us tailor the showcase to your business.\n\n")
	if answers, ok := m.app.SavedAnswers(); ok {
		for _, q := range questionnaire.Questions() {
			if a, ok := answers[q.ID]; ok {
				b.WriteString(m.styles.Muted.Render(q.Title) + "\n  " + a + "\n")
			}
		}
	}
	b.WriteString(m.styles.Help.Render(helpLine(m.keys.Submit, m.keys.Quit)))
	return b.String()
}

func (m *Model) viewHome() string {
	hero := m.viewHero()
	list := m.viewListing()
	body := lipgloss.JoinHorizontal(lipgloss.Top, hero, "  ", list)

	var b strings.Builder
	b.WriteString(body + "\n")
	if sel, ok := m.app.Selected(); ok {
		b.WriteString("\n" + m.styles.Muted.Render("Selected: ") + sel.Name + " · " + sel.Address + "\n")
	}
	if m.searching {
		b.WriteString("\n" + m.styles.Active.Render(m.styles.Title.Render("Search")+"\n"+m.search.View()) + "\n")
	}
	if m.settingsOpen {
		b.WriteString("\n" + m.viewSettings() + "\n")
	}
	b.WriteString(m.styles.Help.Render(helpLine(
		m.keys.Prev, m.keys.Next, m.keys.Forward, m.keys.Section, m.keys.Search,
	) + "\n" + helpLine(
		m.keys.Settings, m.keys.Favourite, m.keys.Reserve, m.keys.Route, m.keys.Quit,
	)))
	return b.String()
}

func (m *Model) viewHero() string {
	r, ok := m.app.Hero()
	if !ok {
		return m.styles.Card.Render(m.styles.Muted.Render("Nothing to show"))
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(r.Name) + "\n")
	b.WriteString(r.Category.Label() + "  " + m.styles.light(r.Status.Light()).Render("● "+string(r.Status)) + "\n")
	b.WriteString(fmt.Sprintf("★ %.1f (%d reviews)\n", r.Rating, r.ReviewCount))
	b.WriteString(m.styles.Muted.Render(r.Address) + "\n")
	b.WriteString(m.styles.Muted.Render(r.Hours) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(40).Render(r.Description) + "\n\n")
	b.WriteString(carouselDots(m.app.Carousel().Index(), m.app.Carousel().Len()))
	return m.styles.Active.Render(b.String())
}

func carouselDots(index, n int) string {
	dots := make([]string, n)
	for i := range dots {
		dots[i] = "○"
		if i == index {
			dots[i] = "●"
		}
	}
	return strings.Join(dots, " ")
}

func (m *Model) viewListing() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.app.SectionTitle()) + "\n\n")
	listing := m.app.Listing()
	if len(listing) == 0 {
		b.WriteString(m.styles.Muted.Render("No restaurants in this category"))
		return m.styles.Card.Render(b.String())
	}
	for i, r := range listing {
		b.WriteString(m.listLine(i, r) + "\n")
	}
	return m.styles.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) listLine(i int, r models.Restaurant) string {
	dot := m.styles.light(r.Status.Light()).Render("●")
	name, prefix := r.Name, "  "
	if i == m.listCursor {
		name, prefix = m.styles.Selected.Render(r.Name), "> "
	}
	return fmt.Sprintf("%s%s %s  %.1f", prefix, dot, name, r.Rating)
}

func (m *Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings") + "\n")
	for i, name := range settings.Names {
		on, _ := m.app.Flag(name)
		box := "[ ]"
		if on {
			box = "[x]"
		}
		line := box + " " + settingLabels[name]
		if i == m.settingsCursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return m.styles.Active.Render(strings.TrimRight(b.String(), "\n"))
}
