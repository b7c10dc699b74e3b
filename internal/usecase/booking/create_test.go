package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	domain "github.com/NavalhaDigital/booking-api/internal/domain/booking"
	"github.com/NavalhaDigital/booking-api/internal/dto"
	"github.com/NavalhaDigital/booking-api/internal/httperr"
)

// --------------------------------------------------
// Stub do repositório
// --------------------------------------------------

type stubRepo struct {
	professionals map[string]bool
	services      map[int]bool

	createdID string
	createErr error

	lastCreate *domain.CreateBookingData
	lastFilter *domain.Filter

	queryResult []dto.BookingListDTO
	queryErr    error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		professionals: map[string]bool{},
		services:      map[int]bool{},
		createdID:     "b-1",
	}
}

func (s *stubRepo) ProfessionalExists(ctx context.Context, id string) (bool, error) {
	return s.professionals[id], nil
}

func (s *stubRepo) MissingServiceIDs(ctx context.Context, ids []int) ([]int, error) {
	var missing []int
	seen := map[int]bool{}
	for _, id := range ids {
		if !s.services[id] && !seen[id] {
			seen[id] = true
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return missing, nil
}

func (s *stubRepo) CreateBooking(ctx context.Context, data domain.CreateBookingData) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.lastCreate = &data
	return s.createdID, nil
}

func (s *stubRepo) QueryBookings(ctx context.Context, f domain.Filter) ([]dto.BookingListDTO, error) {
	s.lastFilter = &f
	return s.queryResult, s.queryErr
}

var _ domain.Repository = (*stubRepo)(nil)

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func validInput() CreateBookingInput {
	in := CreateBookingInput{
		Date: "2024-01-15",
		Time: "09:30",
	}
	in.Client = ClientInput{
		Name:  "João Silva",
		Email: "joao@example.com",
		Phone: "+55 11 99999-0000",
	}
	in.Services = []ServiceSelection{{ID: 1, Quantity: 2}, {ID: 2}}
	return in
}

func expectBusiness(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected business error %q, got nil", code)
	}
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
}

// --------------------------------------------------
// Validação
// --------------------------------------------------

func TestCreateBookingMissingDateOrTime(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreateBooking(repo, nil)

	for _, clear := range []func(*CreateBookingInput){
		func(in *CreateBookingInput) { in.Date = "" },
		func(in *CreateBookingInput) { in.Time = "" },
		func(in *CreateBookingInput) { in.Date = "   " },
	} {
		in := validInput()
		clear(&in)

		_, err := uc.Execute(context.Background(), in)
		expectBusiness(t, err, "missing_date_or_time")
	}

	if repo.lastCreate != nil {
		t.Fatalf("expected no write on validation failure")
	}
}

func TestCreateBookingMissingClientFields(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreateBooking(repo, nil)

	for _, clear := range []func(*CreateBookingInput){
		func(in *CreateBookingInput) { in.Client.Name = "" },
		func(in *CreateBookingInput) { in.Client.Email = "" },
		func(in *CreateBookingInput) { in.Client.Phone = "" },
	} {
		in := validInput()
		clear(&in)

		_, err := uc.Execute(context.Background(), in)
		expectBusiness(t, err, "missing_client_fields")
	}

	if repo.lastCreate != nil {
		t.Fatalf("expected no write on validation failure")
	}
}

func TestCreateBookingEmptyServices(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	in.Services = nil

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "empty_services")

	if repo.lastCreate != nil {
		t.Fatalf("expected no write on validation failure")
	}
}

func TestCreateBookingProfessionalNotFound(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	repo.services[2] = true
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	id := "p-missing"
	in.ProfessionalID = &id

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "professional_not_found")

	if !strings.Contains(err.Error(), "p-missing") {
		t.Fatalf("expected message to name the professional, got %q", err.Error())
	}
	if repo.lastCreate != nil {
		t.Fatalf("expected no write on validation failure")
	}
}

func TestCreateBookingServicesNotFound(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	in.Services = []ServiceSelection{{ID: 7}, {ID: 1}, {ID: 4}}

	_, err := uc.Execute(context.Background(), in)
	expectBusiness(t, err, "services_not_found")

	if !strings.Contains(err.Error(), "4, 7") {
		t.Fatalf("expected sorted missing ids in message, got %q", err.Error())
	}
	if repo.lastCreate != nil {
		t.Fatalf("client upsert must not run when services are missing")
	}
}

// --------------------------------------------------
// Caminho feliz
// --------------------------------------------------

func TestCreateBookingSuccess(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	repo.services[2] = true
	repo.professionals["p-1"] = true
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	id := "p-1"
	in.ProfessionalID = &id

	bookingID, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if bookingID != "b-1" {
		t.Fatalf("expected booking id b-1, got %q", bookingID)
	}

	data := repo.lastCreate
	if data == nil {
		t.Fatalf("expected CreateBooking to be called")
	}
	if data.Time != "09:30:00" {
		t.Fatalf("expected normalized time 09:30:00, got %q", data.Time)
	}
	if data.ProfessionalID == nil || *data.ProfessionalID != "p-1" {
		t.Fatalf("expected professional p-1, got %v", data.ProfessionalID)
	}
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(data.Items))
	}
	if data.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 for first item, got %d", data.Items[0].Quantity)
	}
	if data.Items[1].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", data.Items[1].Quantity)
	}
}

func TestCreateBookingMergesDuplicateServices(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	in.Services = []ServiceSelection{{ID: 1, Quantity: 2}, {ID: 1}}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(repo.lastCreate.Items) != 1 {
		t.Fatalf("expected duplicates merged into one item, got %d", len(repo.lastCreate.Items))
	}
	if repo.lastCreate.Items[0].Quantity != 3 {
		t.Fatalf("expected summed quantity 3, got %d", repo.lastCreate.Items[0].Quantity)
	}
}

func TestCreateBookingBlankProfessionalIsIgnored(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	repo.services[2] = true
	uc := NewCreateBooking(repo, nil)

	in := validInput()
	blank := "  "
	in.ProfessionalID = &blank

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if repo.lastCreate.ProfessionalID != nil {
		t.Fatalf("expected nil professional for blank id")
	}
}

func TestCreateBookingBackendFailurePassesThrough(t *testing.T) {
	repo := newStubRepo()
	repo.services[1] = true
	repo.services[2] = true
	repo.createErr = errors.New("connection refused")
	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if err == nil || err.Error() != "connection refused" {
		t.Fatalf("expected underlying error surfaced, got %v", err)
	}
	if _, ok := httperr.AsBusiness(err); ok {
		t.Fatalf("backend failure must not be a business error")
	}
}
