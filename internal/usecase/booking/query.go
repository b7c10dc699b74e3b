package booking

import (
	"context"
	"strconv"
	"strings"

	domain "github.com/NavalhaDigital/booking-api/internal/domain/booking"
	"github.com/NavalhaDigital/booking-api/internal/dto"
)

// ======================================================
// INPUT (query string crua; valores inválidos são ignorados)
// ======================================================

type QueryBookingsInput struct {
	ProfessionalID string
	From           string
	To             string
	ServiceID      string
	Client         string
	Time           string
	TimeFrom       string
	TimeTo         string
}

// ======================================================
// USE CASE
// ======================================================

type QueryBookings struct {
	repo domain.Repository
}

func NewQueryBookings(repo domain.Repository) *QueryBookings {
	return &QueryBookings{repo: repo}
}

func (uc *QueryBookings) Execute(
	ctx context.Context,
	in QueryBookingsInput,
) ([]dto.BookingListDTO, error) {

	f := domain.Filter{
		ProfessionalID: strings.TrimSpace(in.ProfessionalID),
		Client:         strings.TrimSpace(in.Client),
	}

	if d := strings.TrimSpace(in.From); domain.IsValidDate(d) {
		f.From = d
	}
	if d := strings.TrimSpace(in.To); domain.IsValidDate(d) {
		f.To = d
	}

	if raw := strings.TrimSpace(in.ServiceID); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			f.ServiceID = id
		}
	}

	// Hora exata tem precedência sobre o intervalo.
	if t := domain.NormalizeTime(strings.TrimSpace(in.Time)); t != "" && domain.IsValidTime(t) {
		f.Time = t
	} else {
		if t := domain.NormalizeTime(strings.TrimSpace(in.TimeFrom)); t != "" && domain.IsValidTime(t) {
			f.TimeFrom = t
		}
		if t := domain.NormalizeTime(strings.TrimSpace(in.TimeTo)); t != "" && domain.IsValidTime(t) {
			f.TimeTo = t
		}
	}

	return uc.repo.QueryBookings(ctx, f)
}
