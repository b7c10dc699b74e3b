package wizard

import (
	"errors"
	"testing"
)

func TestWizardHappyPath(t *testing.T) {
	w := New()
	if w.Step() != StepServices {
		t.Fatalf("expected initial step services, got %s", w.Step())
	}

	if err := w.SelectServices([]Selection{{ServiceID: 1, Quantity: 2}}); err != nil {
		t.Fatalf("SelectServices: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if w.Step() != StepDateTime {
		t.Fatalf("expected datetime, got %s", w.Step())
	}

	if err := w.ChooseDateTime("2024-01-15", "09:30"); err != nil {
		t.Fatalf("ChooseDateTime: %v", err)
	}
	if w.Step() != StepDetails {
		t.Fatalf("expected details, got %s", w.Step())
	}
	if w.Time() != "09:30:00" {
		t.Fatalf("expected normalized time, got %q", w.Time())
	}

	if err := w.SubmitDetails(ClientDetails{
		Name:  "João Silva",
		Email: "joao@example.com",
		Phone: "+55 11 99999-0000",
	}); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if w.Step() != StepConfirmation {
		t.Fatalf("expected confirmation, got %s", w.Step())
	}
}

func TestWizardRequiresServiceSelection(t *testing.T) {
	w := New()
	if err := w.Next(); !errors.Is(err, ErrNoServices) {
		t.Fatalf("expected ErrNoServices, got %v", err)
	}
	if w.Step() != StepServices {
		t.Fatalf("step must not advance on empty selection")
	}
}

func TestWizardDateTimeGating(t *testing.T) {
	w := New()
	_ = w.SelectServices([]Selection{{ServiceID: 1}})
	_ = w.Next()

	if err := w.ChooseDateTime("", "09:30"); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime for empty date, got %v", err)
	}
	if err := w.ChooseDateTime("2024-01-15", ""); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime for empty time, got %v", err)
	}
	if w.Step() != StepDateTime {
		t.Fatalf("step must not advance without date and time")
	}
}

func TestWizardDetailsGating(t *testing.T) {
	w := New()
	_ = w.SelectServices([]Selection{{ServiceID: 1}})
	_ = w.Next()
	_ = w.ChooseDateTime("2024-01-15", "09:30")

	if err := w.SubmitDetails(ClientDetails{Name: "João"}); !errors.Is(err, ErrMissingDetails) {
		t.Fatalf("expected ErrMissingDetails, got %v", err)
	}
	if w.Step() != StepDetails {
		t.Fatalf("step must not advance without full details")
	}
}

func TestWizardBackNavigation(t *testing.T) {
	w := New()
	_ = w.SelectServices([]Selection{{ServiceID: 1}})
	_ = w.Next()
	_ = w.ChooseDateTime("2024-01-15", "09:30")

	if err := w.Back(); err != nil {
		t.Fatalf("Back from details: %v", err)
	}
	if w.Step() != StepDateTime {
		t.Fatalf("expected datetime after back, got %s", w.Step())
	}

	if err := w.Back(); err != nil {
		t.Fatalf("Back from datetime: %v", err)
	}
	if w.Step() != StepServices {
		t.Fatalf("expected services after back, got %s", w.Step())
	}

	if err := w.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition at first step, got %v", err)
	}
}

func TestWizardInvalidTransitions(t *testing.T) {
	w := New()

	if err := w.ChooseDateTime("2024-01-15", "09:30"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := w.SubmitDetails(ClientDetails{Name: "a", Email: "b", Phone: "c"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestWizardReset(t *testing.T) {
	w := New()
	_ = w.SelectServices([]Selection{{ServiceID: 1}})
	_ = w.Next()
	_ = w.ChooseDateTime("2024-01-15", "09:30")
	_ = w.SubmitDetails(ClientDetails{Name: "a", Email: "b", Phone: "c"})

	w.Reset()

	if w.Step() != StepServices {
		t.Fatalf("expected services after reset, got %s", w.Step())
	}
	if len(w.Services()) != 0 {
		t.Fatalf("expected empty selection after reset")
	}
	if w.Date() != "" || w.Time() != "" {
		t.Fatalf("expected cleared date/time after reset")
	}
}
