// Package settings keeps the seven feature toggles and persists them as one record.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"gpsshowcase/models"
	"gpsshowcase/storage"
)

var ErrUnknownFlag = errors.New("unknown setting")

// Flag names, as used in the persisted record.
const (
	RadiusMode        = "radiusMode"
	AIVoiceCommand    = "aiVoiceCommand"
	AIRecommendations = "aiRecommendations"
	LightMode         = "lightMode"
	VibeHigh          = "vibeHigh"
	VibeMid           = "vibeMid"
	VibeLow           = "vibeLow"
)

// Names lists every flag in display order.
var Names = []string{RadiusMode, AIVoiceCommand, AIRecommendations, LightMode, VibeHigh, VibeMid, VibeLow}

// Defaults returns the first-run settings.
func Defaults() models.Settings {
	return models.Settings{
		AIVoiceCommand:    true,
		AIRecommendations: true,
	}
}

func field(s *models.Settings, name string) *bool {
	switch name {
	case RadiusMode:
		return &s.RadiusMode
	case AIVoiceCommand:
		return &s.AIVoiceCommand
	case AIRecommendations:
		return &s.AIRecommendations
	case LightMode:
		return &s.LightMode
	case VibeHigh:
		return &s.VibeHigh
	case VibeMid:
		return &s.VibeMid
	case VibeLow:
		return &s.VibeLow
	default:
		return nil
	}
}

// ThemeFunc applies the light or dark theme to the view.
type ThemeFunc func(light bool)

// Store owns the in-memory settings. The in-memory value stays
// authoritative when persisting fails.
type Store struct {
	kv      storage.Store
	current models.Settings
	onTheme ThemeFunc
}

func NewStore(kv storage.Store, onTheme ThemeFunc) *Store {
	return &Store{kv: kv, current: Defaults(), onTheme: onTheme}
}

func (s *Store) Current() models.Settings { return s.current }

// Flag returns one flag by name.
func (s *Store) Flag(name string) (bool, error) {
	p := field(&s.current, name)
	if p == nil {
		return false, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	return *p, nil
}

// SetFlag updates one flag and persists the whole record. The returned error
// is only a persistence failure; the flag is set regardless.
func (s *Store) SetFlag(name string, value bool) error {
	p := field(&s.current, name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	*p = value

	if name == LightMode && s.onTheme != nil {
		s.onTheme(value)
	}
	return s.save()
}

func (s *Store) save() error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return err
	}
	return s.kv.Set(storage.SettingsKey, string(data))
}

// Load restores a persisted record over the defaults. Missing, unreadable or
// malformed records leave the defaults untouched.
func (s *Store) Load() {
	raw, ok, err := s.kv.Get(storage.SettingsKey)
	if err != nil || !ok {
		return
	}
	loaded := Defaults()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		return
	}
	s.current = loaded
}

// Apply pushes the current theme to the view.
func (s *Store) Apply() {
	if s.onTheme != nil {
		s.onTheme(s.current.LightMode)
	}
}
