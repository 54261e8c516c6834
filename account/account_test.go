package account

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func validForm() Form {
	return Form{
		BusinessName:    "Neon Bistro",
		Email:           "owner@neon.example",
		Phone:           "(206) 555-0142",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Form)
		want   error
	}{
		{"valid", func(f *Form) {}, nil},
		{"blank business", func(f *Form) { f.BusinessName = "   " }, ErrBusinessNameRequired},
		{"email without tld", func(f *Form) { f.Email = "owner@neon" }, ErrInvalidEmail},
		{"email with space", func(f *Form) { f.Email = "own er@neon.example" }, ErrInvalidEmail},
		{"phone letters", func(f *Form) { f.Phone = "206-CALL-NOW1" }, ErrInvalidPhone},
		{"phone too short", func(f *Form) { f.Phone = "555-0142" }, ErrInvalidPhone},
		{"phone international", func(f *Form) { f.Phone = "+1 206 555 0142" }, nil},
		{"short password", func(f *Form) { f.Password, f.ConfirmPassword = "short", "short" }, ErrWeakPassword},
		{"mismatch", func(f *Form) { f.ConfirmPassword = "different1" }, ErrPasswordMismatch},
		{"first failure wins", func(f *Form) { f.BusinessName = ""; f.Email = "bad" }, ErrBusinessNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.modify(&f)
			if err := f.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProfileOmitsPasswordAndSanitizes(t *testing.T) {
	f := validForm()
	f.BusinessName = "  <b>Neon</b> & Co  "
	now := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

	p, err := f.Profile(now)
	if err != nil {
		t.Fatal(err)
	}
	if p.BusinessName != "&lt;b&gt;Neon&lt;/b&gt; &amp; Co" {
		t.Fatalf("unexpected sanitized name %q", p.BusinessName)
	}
	if p.CreatedAt != "2024-05-01T18:30:00Z" {
		t.Fatalf("unexpected timestamp %q", p.CreatedAt)
	}

	data, _ := json.Marshal(p)
	if strings.Contains(strings.ToLower(string(data)), "password") || strings.Contains(string(data), f.Password) {
		t.Fatalf("profile must not carry the password: %s", data)
	}

	f.Email = "nope"
	if _, err := f.Profile(now); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	if got := Message(ErrWeakPassword); got != "Password must be at least 8 characters long" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Message(nil); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
}
