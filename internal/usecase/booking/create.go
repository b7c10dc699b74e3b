package booking

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NavalhaDigital/booking-api/internal/audit"
	domain "github.com/NavalhaDigital/booking-api/internal/domain/booking"
	"github.com/NavalhaDigital/booking-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date string
	Time string

	ProfessionalID *string

	Client ClientInput

	Services []ServiceSelection
}

type ClientInput struct {
	Name  string
	Email string
	Phone string
	Notes *string
}

type ServiceSelection struct {
	ID       int
	Quantity int
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (string, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios (nenhuma escrita antes daqui)
	// --------------------------------------------------
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return "", httperr.ErrBusiness(
			"missing_date_or_time",
			"date e time são obrigatórios",
		)
	}

	if strings.TrimSpace(in.Client.Name) == "" ||
		strings.TrimSpace(in.Client.Email) == "" ||
		strings.TrimSpace(in.Client.Phone) == "" {
		return "", httperr.ErrBusiness(
			"missing_client_fields",
			"client.name, client.email e client.phone são obrigatórios",
		)
	}

	if len(in.Services) == 0 {
		return "", httperr.ErrBusiness(
			"empty_services",
			"services não pode ser vazio",
		)
	}

	// --------------------------------------------------
	// 2️⃣ Profissional (se informado)
	// --------------------------------------------------
	if in.ProfessionalID != nil && *in.ProfessionalID != "" {
		exists, err := uc.repo.ProfessionalExists(ctx, *in.ProfessionalID)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", httperr.ErrBusiness(
				"professional_not_found",
				fmt.Sprintf("Profissional não encontrado: %s", *in.ProfessionalID),
			)
		}
	}

	// --------------------------------------------------
	// 3️⃣ Serviços referenciados
	// --------------------------------------------------
	ids := make([]int, 0, len(in.Services))
	for _, s := range in.Services {
		ids = append(ids, s.ID)
	}

	missing, err := uc.repo.MissingServiceIDs(ctx, ids)
	if err != nil {
		return "", err
	}
	if len(missing) > 0 {
		return "", httperr.ErrBusiness(
			"services_not_found",
			fmt.Sprintf("IDs de serviços inexistentes: %s", joinIDs(missing)),
		)
	}

	// --------------------------------------------------
	// 4️⃣ Normalização + itens
	// --------------------------------------------------
	items := make([]domain.LineItem, 0, len(in.Services))
	for _, s := range in.Services {
		items = append(items, domain.LineItem{
			ServiceID: s.ID,
			Quantity:  s.Quantity,
		})
	}

	data := domain.CreateBookingData{
		Date:           in.Date,
		Time:           domain.NormalizeTime(in.Time),
		ProfessionalID: normalizeProfessionalID(in.ProfessionalID),
		Client: domain.ClientData{
			Name:  in.Client.Name,
			Email: in.Client.Email,
			Phone: in.Client.Phone,
			Notes: in.Client.Notes,
		},
		Items: domain.MergeItems(items),
	}

	// --------------------------------------------------
	// 5️⃣ Escrita atômica
	// --------------------------------------------------
	bookingID, err := uc.repo.CreateBooking(ctx, data)
	if err != nil {
		return "", err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: bookingID,
		})
	}

	return bookingID, nil
}

func normalizeProfessionalID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	return id
}

func joinIDs(ids []int) string {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}
