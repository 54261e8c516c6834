package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gpsshowcase/notify"
)

type palette struct {
	Bg      lipgloss.Color
	Fg      lipgloss.Color
	Muted   lipgloss.Color
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Neon dark theme and its light-mode counterpart.
var (
	darkPalette = palette{
		Bg:      lipgloss.Color("#0a0e1a"),
		Fg:      lipgloss.Color("#e6f7ff"),
		Muted:   lipgloss.Color("#5c6b8a"),
		Primary: lipgloss.Color("#00d4ff"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffd166"),
		Error:   lipgloss.Color("#ff4444"),
	}
	lightPalette = palette{
		Bg:      lipgloss.Color("#f5f7fb"),
		Fg:      lipgloss.Color("#1a1f2e"),
		Muted:   lipgloss.Color("#8a94a6"),
		Primary: lipgloss.Color("#0077b6"),
		Success: lipgloss.Color("#2a9d4f"),
		Warning: lipgloss.Color("#c98a00"),
		Error:   lipgloss.Color("#d62828"),
	}
)

type styles struct {
	Page     lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Progress lipgloss.Style
	Help     lipgloss.Style
	p        palette
}

func newStyles(light bool) styles {
	p := darkPalette
	if light {
		p = lightPalette
	}
	return styles{
		p:     p,
		Page:  lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg).Padding(1, 3),
		Title: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),
		Active: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Progress: lipgloss.NewStyle().Foreground(p.Success),
		Help:     lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1),
	}
}

func (s styles) toast(sev notify.Severity) lipgloss.Style {
	color := s.p.Primary
	switch sev {
	case notify.Success:
		color = s.p.Success
	case notify.Error:
		color = s.p.Error
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// light maps the traffic-light status onto a palette color.
func (s styles) light(name string) lipgloss.Style {
	color := s.p.Muted
	switch name {
	case "green":
		color = s.p.Success
	case "yellow":
		color = s.p.Warning
	case "red":
		color = s.p.Error
	}
	return lipgloss.NewStyle().Foreground(color)
}
