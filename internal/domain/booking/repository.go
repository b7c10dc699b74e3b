package booking

import (
	"context"

	"github.com/NavalhaDigital/booking-api/internal/dto"
)

// Dados já validados e normalizados de um agendamento a persistir.
type CreateBookingData struct {
	Date string
	Time string

	ProfessionalID *string

	Client ClientData

	// Itens sem duplicatas: quantidades repetidas já vêm somadas.
	Items []LineItem
}

type ClientData struct {
	Name  string
	Email string
	Phone string
	Notes *string
}

type LineItem struct {
	ServiceID int
	Quantity  int
}

type Repository interface {
	// -------- Referências --------
	ProfessionalExists(
		ctx context.Context,
		id string,
	) (bool, error)

	// Retorna, em ordem crescente, os ids que não existem em services.
	MissingServiceIDs(
		ctx context.Context,
		ids []int,
	) ([]int, error)

	// -------- Escrita (atômica) --------
	// Upsert do cliente por e-mail + booking + itens numa transação só.
	CreateBooking(
		ctx context.Context,
		data CreateBookingData,
	) (string, error)

	// -------- Leitura --------
	QueryBookings(
		ctx context.Context,
		f Filter,
	) ([]dto.BookingListDTO, error)
}
