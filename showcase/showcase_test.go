package showcase

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gpsshowcase/account"
	"gpsshowcase/carousel"
	"gpsshowcase/models"
	"gpsshowcase/navigation"
	"gpsshowcase/notify"
	"gpsshowcase/questionnaire"
	"gpsshowcase/settings"
	"gpsshowcase/storage"
)

var fixedNow = time.Date(2024, 3, 9, 15, 4, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return New(Options{Store: kv, Now: func() time.Time { return fixedNow }}), kv
}

func validForm() account.Form {
	return account.Form{
		BusinessName:    "Neon Bistro",
		Email:           "owner@neon.example",
		Phone:           "206-555-0142",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}
}

func lastToast(a *App) notify.Toast {
	ts := a.Notifications()
	if len(ts) == 0 {
		return notify.Toast{}
	}
	return ts[len(ts)-1]
}

func TestCreateAccountPersistsProfileWithoutPassword(t *testing.T) {
	a, kv := newTestApp(t)

	if err := a.CreateAccount(validForm()); err != nil {
		t.Fatalf("create account: %v", err)
	}
	raw, ok, _ := kv.Get(storage.AccountKey)
	if !ok {
		t.Fatal("account not persisted")
	}
	if strings.Contains(raw, "longenough") {
		t.Fatalf("password leaked into storage: %s", raw)
	}
	if lastToast(a).Severity != notify.Success {
		t.Fatalf("expected success toast, got %+v", lastToast(a))
	}
	if a.Page() != navigation.Landing {
		t.Fatal("page must not change before the advance delay")
	}

	if !a.AdvanceAfterSignup() || a.Page() != navigation.Questionnaire {
		t.Fatalf("expected questionnaire after advance, got %s", a.Page())
	}
	if a.AdvanceAfterSignup() {
		t.Fatal("second advance must be a no-op")
	}
}

func TestCreateAccountValidationFailure(t *testing.T) {
	a, kv := newTestApp(t)
	f := validForm()
	f.ConfirmPassword = "different"

	err := a.CreateAccount(f)
	if !errors.Is(err, account.ErrPasswordMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if _, ok, _ := kv.Get(storage.AccountKey); ok {
		t.Fatal("invalid form must not be persisted")
	}
	if got := lastToast(a); got.Severity != notify.Error || got.Message != "Passwords do not match!" {
		t.Fatalf("unexpected toast %+v", got)
	}
	if _, ok := a.Account(); ok {
		t.Fatal("no account should exist")
	}
}

func TestCreateAccountStorageFailure(t *testing.T) {
	a, kv := newTestApp(t)
	kv.ReadOnly = true

	if err := a.CreateAccount(validForm()); !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	toasts := a.Notifications()
	if len(toasts) != 1 || toasts[0].Message != storageUnavailable {
		t.Fatalf("expected one storage toast, got %+v", toasts)
	}
}

func TestQuestionnaireFlowPersistsAllAnswers(t *testing.T) {
	a, kv := newTestApp(t)
	a.StartQuestionnaire()

	if err := a.Confirm(); !errors.Is(err, questionnaire.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if lastToast(a).Message != "Please select an option" {
		t.Fatalf("expected warning toast, got %+v", lastToast(a))
	}

	for i := 0; i < a.Questionnaire().Total(); i++ {
		q, _ := a.Questionnaire().Current()
		if err := a.SelectOption(q.Options[1]); err != nil {
			t.Fatal(err)
		}
		if i < a.Questionnaire().Total()-1 {
			if _, ok, _ := kv.Get(storage.QuestionnaireKey); ok {
				t.Fatal("answers must only be persisted at the end")
			}
		}
		if err := a.Confirm(); err != nil {
			t.Fatal(err)
		}
	}

	if a.Page() != navigation.ThankYou {
		t.Fatalf("expected thank-you page, got %s", a.Page())
	}
	saved, ok := a.SavedAnswers()
	if !ok || len(saved) != 6 {
		t.Fatalf("expected 6 saved answers, got %v", saved)
	}
	if saved["targetAudience"] != "Urban" || saved["newsletter"] != "NO" {
		t.Fatalf("unexpected answers %v", saved)
	}
}

func TestQuestionnaireActionsOutsidePage(t *testing.T) {
	a, _ := newTestApp(t)
	if err := a.SelectOption("YES"); !errors.Is(err, questionnaire.ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	if a.Back() {
		t.Fatal("back outside the questionnaire must be a no-op")
	}
}

func TestGoHomeRestoresSettings(t *testing.T) {
	kv := storage.NewMemoryStore()
	_ = kv.Set(storage.SettingsKey, `{"lightMode":true,"vibeMid":true}`)

	var themes []bool
	a := New(Options{Store: kv, OnTheme: func(light bool) { themes = append(themes, light) }})
	a.GoHome()

	if a.Page() != navigation.Home {
		t.Fatalf("expected home, got %s", a.Page())
	}
	if s := a.Settings(); !s.LightMode || !s.VibeMid || !s.AIVoiceCommand {
		t.Fatalf("settings not restored: %+v", s)
	}
	if len(themes) != 1 || !themes[0] {
		t.Fatalf("expected light theme applied, got %v", themes)
	}
	if hero, ok := a.Hero(); !ok || hero.Name != "Neon Bistro" {
		t.Fatalf("expected Neon Bistro hero, got %v", hero.Name)
	}
}

func TestSelectSection(t *testing.T) {
	a, _ := newTestApp(t)
	a.GoHome()

	if err := a.SelectSection("fine-dining"); err != nil {
		t.Fatal(err)
	}
	if a.SectionTitle() != "Fine Dining" || len(a.Listing()) != 2 {
		t.Fatalf("unexpected section %q with %d entries", a.SectionTitle(), len(a.Listing()))
	}
	if hero, _ := a.Hero(); hero.Name != "Azure Fine Dining" {
		t.Fatalf("hero should move to first match, got %s", hero.Name)
	}

	if err := a.SelectSection("night-clubs"); err != nil {
		t.Fatal(err)
	}
	if len(a.Listing()) != 0 || lastToast(a).Message != "No restaurants in this category" {
		t.Fatalf("expected empty listing and info toast, got %d / %+v", len(a.Listing()), lastToast(a))
	}

	if err := a.SelectSection("playlist"); err != nil {
		t.Fatal(err)
	}
	if a.SectionTitle() != "Playlist" || len(a.Listing()) != 6 || a.Carousel().Index() != 0 {
		t.Fatalf("overview section should reset the listing")
	}

	if err := a.SelectSection("bogus"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestSearch(t *testing.T) {
	a, _ := newTestApp(t)
	a.GoHome()

	if _, ok := a.Search("   "); ok {
		t.Fatal("blank query must be ignored")
	}
	if len(a.Notifications()) != 0 {
		t.Fatal("blank query must not raise a toast")
	}

	results, ok := a.Search("  neon ")
	if !ok || len(results) != 1 || results[0].Name != "Neon Bistro" {
		t.Fatalf("unexpected results %v", results)
	}
	if a.Notifications()[0].Message != "Searching for: neon" {
		t.Fatalf("unexpected toast %+v", a.Notifications()[0])
	}

	if results, _ := a.Search("sushi"); len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
	if lastToast(a).Message != "No results found" {
		t.Fatalf("expected no-results toast, got %+v", lastToast(a))
	}
}

func TestSelectRestaurantAndStep(t *testing.T) {
	a, _ := newTestApp(t)
	a.GoHome()
	_ = a.SelectSection("fine-dining")

	r, err := a.SelectRestaurant(6)
	if err != nil || r.Name != "Velocity Lounge" {
		t.Fatalf("select: %v %v", r.Name, err)
	}
	if sel, ok := a.Selected(); !ok || sel.ID != 6 {
		t.Fatal("expected Velocity Lounge selected")
	}
	if err := a.Step(carousel.Next); err != nil {
		t.Fatal(err)
	}
	if hero, _ := a.Hero(); hero.Name != "Neon Bistro" {
		t.Fatalf("stepping after direct pick should cycle the full catalog, got %s", hero.Name)
	}

	if _, err := a.SelectRestaurant(99); err == nil {
		t.Fatal("expected error for unknown id")
	}

	_ = a.SelectSection("night-clubs")
	_ = a.SelectSection("fast-casual")
	if err := a.Step(carousel.Next); err != nil {
		t.Fatalf("one-entry list should wrap, got %v", err)
	}
}

func TestHeroAction(t *testing.T) {
	a, _ := newTestApp(t)
	a.GoHome()

	toast, err := a.HeroAction("favourite")
	if err != nil || toast.Message != `Added "Neon Bistro" to Favourites` || toast.Severity != notify.Success {
		t.Fatalf("unexpected favourite toast %+v %v", toast, err)
	}
	if toast, _ := a.HeroAction("route"); toast.Message != `Routing to "Neon Bistro"` {
		t.Fatalf("unexpected route toast %+v", toast)
	}
	if _, err := a.HeroAction("teleport"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestSetFlag(t *testing.T) {
	a, kv := newTestApp(t)

	if err := a.SetFlag(settings.RadiusMode, true); err != nil {
		t.Fatal(err)
	}
	raw, _, _ := kv.Get(storage.SettingsKey)
	var stored models.Settings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || !stored.RadiusMode {
		t.Fatalf("settings not persisted: %s", raw)
	}

	if err := a.SetFlag("warpDrive", true); !errors.Is(err, settings.ErrUnknownFlag) {
		t.Fatalf("expected ErrUnknownFlag, got %v", err)
	}

	kv.ReadOnly = true
	if err := a.SetFlag(settings.VibeLow, true); err != nil {
		t.Fatalf("storage failure must not surface as error, got %v", err)
	}
	if !a.Settings().VibeLow || lastToast(a).Message != storageUnavailable {
		t.Fatal("expected in-memory value kept and storage toast raised")
	}
}

func TestTickRefreshesClockAndPrunes(t *testing.T) {
	now := fixedNow
	a := New(Options{Now: func() time.Time { return now }, NotificationTTL: time.Second})
	if a.Clock() != "3:04 PM" {
		t.Fatalf("unexpected clock %q", a.Clock())
	}
	a.Notify("hello", notify.Info)

	now = now.Add(2 * time.Minute)
	a.Tick(now)
	if a.Clock() != "3:06 PM" {
		t.Fatalf("unexpected clock %q", a.Clock())
	}
	if len(a.Notifications()) != 0 {
		t.Fatal("expired toast should be pruned")
	}
}
