package booking

import (
	"testing"

	"github.com/NavalhaDigital/booking-api/internal/dto"
)

func TestTotals(t *testing.T) {
	items := []dto.BookingServiceDTO{
		{ID: 1, Price: 45, DurationMinutes: 30, Quantity: 2},
		{ID: 2, Price: 35, DurationMinutes: 30, Quantity: 1},
	}

	price, duration := Totals(items)
	if price != 125 {
		t.Fatalf("expected total price 125, got %v", price)
	}
	if duration != 90 {
		t.Fatalf("expected total duration 90, got %d", duration)
	}
}

func TestTotalsEmpty(t *testing.T) {
	price, duration := Totals(nil)
	if price != 0 || duration != 0 {
		t.Fatalf("expected zero totals, got %v / %d", price, duration)
	}
}

func TestMergeItems(t *testing.T) {
	merged := MergeItems([]LineItem{
		{ServiceID: 1, Quantity: 2},
		{ServiceID: 2},
		{ServiceID: 1, Quantity: 1},
		{ServiceID: 3, Quantity: -5},
	})

	if len(merged) != 3 {
		t.Fatalf("expected 3 merged items, got %d", len(merged))
	}
	if merged[0].ServiceID != 1 || merged[0].Quantity != 3 {
		t.Fatalf("expected service 1 with quantity 3, got %+v", merged[0])
	}
	if merged[1].ServiceID != 2 || merged[1].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %+v", merged[1])
	}
	if merged[2].ServiceID != 3 || merged[2].Quantity != 1 {
		t.Fatalf("invalid quantity must fall back to 1, got %+v", merged[2])
	}
}
