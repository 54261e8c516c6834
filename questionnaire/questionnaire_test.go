package questionnaire

import (
	"errors"
	"testing"
)

func answerAll(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < e.Total(); i++ {
		q, ok := e.Current()
		if !ok {
			t.Fatalf("question %d not showing", i)
		}
		if err := e.SelectOption(q.Options[0]); err != nil {
			t.Fatalf("select: %v", err)
		}
		done, err := e.Confirm()
		if err != nil {
			t.Fatalf("confirm %d: %v", i, err)
		}
		if done != (i == e.Total()-1) {
			t.Fatalf("question %d: done=%v", i, done)
		}
	}
}

func TestCompleteFlowYieldsSixAnswers(t *testing.T) {
	e := New()
	if e.State() != Idle {
		t.Fatalf("expected idle, got %v", e.State())
	}
	e.Start()
	answerAll(t, e)

	if e.State() != Finished {
		t.Fatalf("expected finished, got %v", e.State())
	}
	answers := e.Answers()
	if len(answers) != 6 {
		t.Fatalf("expected 6 answers, got %d", len(answers))
	}
	for _, q := range Questions() {
		if _, ok := answers[q.ID]; !ok {
			t.Fatalf("missing answer for %s", q.ID)
		}
	}
	if answers["restaurantType"] != "Fast Casual" || answers["newsletter"] != "YES" {
		t.Fatalf("unexpected answers %v", answers)
	}
}

func TestConfirmWithoutSelection(t *testing.T) {
	e := New()
	e.Start()

	if _, err := e.Confirm(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if len(e.Answers()) != 0 || e.Index() != 0 {
		t.Fatalf("state changed: answers=%v index=%d", e.Answers(), e.Index())
	}

	_ = e.SelectOption("Urban")
	if e.Tentative() != "" {
		t.Fatal("option of another question must be rejected")
	}
	_ = e.SelectOption("Fine Dining")
	if _, err := e.Confirm(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Confirm(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("tentative selection must not carry over, got %v", err)
	}
	if len(e.Answers()) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(e.Answers()))
	}
}

func TestSelectOptionReplaces(t *testing.T) {
	e := New()
	e.Start()
	_ = e.SelectOption("Fast Casual")
	_ = e.SelectOption("Food Trucks")
	if e.Tentative() != "Food Trucks" {
		t.Fatalf("expected replacement, got %q", e.Tentative())
	}
	if err := e.SelectOption("Pizza"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if e.Tentative() != "Food Trucks" {
		t.Fatal("rejected option must not change the tentative choice")
	}
}

func TestBack(t *testing.T) {
	e := New()
	e.Start()
	if e.Back() {
		t.Fatal("back at index 0 must be a no-op")
	}
	if e.Index() != 0 {
		t.Fatalf("index moved to %d", e.Index())
	}

	_ = e.SelectOption("Spice")
	_ = e.SelectOption("Ethnic Cuisine")
	_, _ = e.Confirm()
	_ = e.SelectOption("Upscale")

	if !e.Back() {
		t.Fatal("expected back to move")
	}
	if e.Index() != 0 {
		t.Fatalf("expected index 0, got %d", e.Index())
	}
	if e.Tentative() != "Ethnic Cuisine" {
		t.Fatalf("expected committed answer restored, got %q", e.Tentative())
	}
	if !e.CanConfirm() {
		t.Fatal("restored answer should enable confirm")
	}
}

func TestProgress(t *testing.T) {
	e := New()
	if e.Progress() != 0 {
		t.Fatalf("idle progress should be 0, got %v", e.Progress())
	}
	e.Start()
	for i := 0; i < e.Total(); i++ {
		want := float64(i+1) / 6 * 100
		if got := e.Progress(); got != want {
			t.Fatalf("index %d: progress %v, want %v", i, got, want)
		}
		q, _ := e.Current()
		_ = e.SelectOption(q.Options[len(q.Options)-1])
		_, _ = e.Confirm()
	}
}

func TestStartResets(t *testing.T) {
	e := New()
	e.Start()
	answerAll(t, e)
	if _, ok := e.Current(); ok {
		t.Fatal("no question should show after finishing")
	}
	if err := e.SelectOption("YES"); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}

	e.Start()
	if e.State() != Showing || e.Index() != 0 || len(e.Answers()) != 0 {
		t.Fatalf("restart did not reset: state=%v index=%d answers=%v", e.State(), e.Index(), e.Answers())
	}
}
