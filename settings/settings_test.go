package settings

import (
	"errors"
	"testing"

	"gpsshowcase/storage"
)

func TestRoundTripEveryFlag(t *testing.T) {
	for _, name := range Names {
		for _, value := range []bool{true, false} {
			kv := storage.NewMemoryStore()
			s := NewStore(kv, nil)
			if err := s.SetFlag(name, value); err != nil {
				t.Fatalf("%s: %v", name, err)
			}

			fresh := NewStore(kv, nil)
			fresh.Load()
			got, err := fresh.Flag(name)
			if err != nil {
				t.Fatal(err)
			}
			if got != value {
				t.Fatalf("%s: reloaded %v, want %v", name, got, value)
			}
		}
	}
}

func TestFlagsAreIndependent(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), nil)
	_ = s.SetFlag(VibeHigh, true)

	cur := s.Current()
	want := Defaults()
	want.VibeHigh = true
	if cur != want {
		t.Fatalf("expected only vibeHigh to change, got %+v", cur)
	}
}

func TestLoadMalformedKeepsDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	_ = kv.Set(storage.SettingsKey, "{not json")

	s := NewStore(kv, nil)
	s.Load()
	if s.Current() != Defaults() {
		t.Fatalf("expected defaults, got %+v", s.Current())
	}
}

func TestLoadPartialRecordKeepsOtherDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	_ = kv.Set(storage.SettingsKey, `{"lightMode":true}`)

	s := NewStore(kv, nil)
	s.Load()
	cur := s.Current()
	if !cur.LightMode || !cur.AIVoiceCommand || !cur.AIRecommendations {
		t.Fatalf("unexpected merge result %+v", cur)
	}
}

func TestLightModeAppliesTheme(t *testing.T) {
	var calls []bool
	s := NewStore(storage.NewMemoryStore(), func(light bool) { calls = append(calls, light) })

	_ = s.SetFlag(RadiusMode, true)
	_ = s.SetFlag(LightMode, true)
	_ = s.SetFlag(LightMode, false)

	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Fatalf("unexpected theme calls %v", calls)
	}
}

func TestSetFlagStorageFailureKeepsValue(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.ReadOnly = true
	s := NewStore(kv, nil)

	err := s.SetFlag(VibeLow, true)
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if v, _ := s.Flag(VibeLow); !v {
		t.Fatal("in-memory value must survive a failed write")
	}
}

func TestUnknownFlag(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), nil)
	if err := s.SetFlag("turbo", true); !errors.Is(err, ErrUnknownFlag) {
		t.Fatalf("expected ErrUnknownFlag, got %v", err)
	}
	if _, err := s.Flag("turbo"); !errors.Is(err, ErrUnknownFlag) {
		t.Fatalf("expected ErrUnknownFlag, got %v", err)
	}
}
