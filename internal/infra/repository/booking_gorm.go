package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/NavalhaDigital/booking-api/internal/domain/booking"
	"github.com/NavalhaDigital/booking-api/internal/dto"
	"github.com/NavalhaDigital/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *BookingGormRepository) ProfessionalExists(
	ctx context.Context,
	id string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) MissingServiceIDs(
	ctx context.Context,
	ids []int,
) ([]int, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var found []int
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	foundSet := make(map[int]bool, len(found))
	for _, id := range found {
		foundSet[id] = true
	}

	var missing []int
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !foundSet[id] && !seen[id] {
			seen[id] = true
			missing = append(missing, id)
		}
	}

	sort.Ints(missing)
	return missing, nil
}

// --------------------------------------------------
// Escrita atômica (upsert cliente + booking + itens)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	data domain.CreateBookingData,
) (string, error) {

	var bookingID string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var client models.Client
		err := tx.Where("email = ?", data.Client.Email).First(&client).Error

		switch {
		case err == nil:
			updates := map[string]any{
				"name":  data.Client.Name,
				"phone": data.Client.Phone,
			}
			// Notes só é sobrescrito quando um valor novo chega.
			if data.Client.Notes != nil {
				updates["notes"] = *data.Client.Notes
			}
			if err := tx.Model(&models.Client{}).
				Where("id = ?", client.ID).
				Updates(updates).Error; err != nil {
				return err
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			client = models.Client{
				ID:    uuid.NewString(),
				Name:  data.Client.Name,
				Phone: data.Client.Phone,
				Email: data.Client.Email,
				Notes: data.Client.Notes,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}

		default:
			return err
		}

		b := models.Booking{
			ID:             uuid.NewString(),
			Date:           data.Date,
			Time:           data.Time,
			ProfessionalID: data.ProfessionalID,
			ClientID:       client.ID,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		items := make([]models.BookingService, 0, len(data.Items))
		for _, it := range data.Items {
			items = append(items, models.BookingService{
				BookingID: b.ID,
				ServiceID: it.ServiceID,
				Quantity:  it.Quantity,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		bookingID = b.ID
		return nil
	})

	return bookingID, err
}

// --------------------------------------------------
// Leitura (filtros dinâmicos + itens + totais)
// --------------------------------------------------

// % e _ digitados pelo usuário são texto literal, não curingas do ILIKE.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type bookingRowScan struct {
	ID             string
	Date           string
	Time           string
	ProfessionalID *string
	ClientID       string
	ClientName     string
	ClientPhone    string
	ClientEmail    string
}

type bookingItemScan struct {
	BookingID       string
	ServiceID       int
	Name            string
	Price           float64
	DurationMinutes int
	Quantity        int
}

func (r *BookingGormRepository) QueryBookings(
	ctx context.Context,
	f domain.Filter,
) ([]dto.BookingListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id,
			bookings.date,
			bookings.time,
			bookings.professional_id,
			clients.id AS client_id,
			clients.name AS client_name,
			clients.phone AS client_phone,
			clients.email AS client_email`).
		Joins("JOIN clients ON clients.id = bookings.client_id")

	if f.ProfessionalID != "" {
		q = q.Where("bookings.professional_id = ?", f.ProfessionalID)
	}
	if f.From != "" {
		q = q.Where("bookings.date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("bookings.date <= ?", f.To)
	}
	if f.ServiceID != 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM booking_services x WHERE x.booking_id = bookings.id AND x.service_id = ?)",
			f.ServiceID,
		)
	}
	if f.Client != "" {
		like := "%" + escapeLike(f.Client) + "%"
		q = q.Where(
			"clients.name ILIKE ? OR clients.email ILIKE ? OR clients.phone ILIKE ?",
			like, like, like,
		)
	}
	if f.Time != "" {
		q = q.Where("bookings.time = ?", f.Time)
	} else {
		if f.TimeFrom != "" {
			q = q.Where("bookings.time >= ?", f.TimeFrom)
		}
		if f.TimeTo != "" {
			q = q.Where("bookings.time <= ?", f.TimeTo)
		}
	}

	var rows []bookingRowScan
	if err := q.
		Order("bookings.date ASC, bookings.time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]dto.BookingListDTO, 0, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []bookingItemScan
	if err := r.db.WithContext(ctx).
		Table("booking_services").
		Select(`booking_services.booking_id,
			services.id AS service_id,
			services.name,
			services.price,
			services.duration_minutes,
			booking_services.quantity`).
		Joins("JOIN services ON services.id = booking_services.service_id").
		Where("booking_services.booking_id IN ?", ids).
		Order("services.name ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}

	byBooking := make(map[string][]dto.BookingServiceDTO, len(rows))
	for _, it := range items {
		byBooking[it.BookingID] = append(byBooking[it.BookingID], dto.BookingServiceDTO{
			ID:              it.ServiceID,
			Name:            it.Name,
			Price:           it.Price,
			DurationMinutes: it.DurationMinutes,
			Quantity:        it.Quantity,
		})
	}

	for _, row := range rows {
		services := byBooking[row.ID]
		if services == nil {
			services = []dto.BookingServiceDTO{}
		}
		totalPrice, totalDuration := domain.Totals(services)

		result = append(result, dto.BookingListDTO{
			ID:                   row.ID,
			Date:                 row.Date,
			Time:                 row.Time,
			ProfessionalID:       row.ProfessionalID,
			ClientID:             row.ClientID,
			ClientName:           row.ClientName,
			ClientPhone:          row.ClientPhone,
			ClientEmail:          row.ClientEmail,
			TotalPrice:           totalPrice,
			TotalDurationMinutes: totalDuration,
			Services:             services,
		})
	}

	return result, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
