package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NavalhaDigital/booking-api/internal/httperr"
	"github.com/NavalhaDigital/booking-api/internal/httpresp"
	ucBooking "github.com/NavalhaDigital/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	queryUC  *ucBooking.QueryBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	queryUC *ucBooking.QueryBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		queryUC:  queryUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	ProfessionalID *string `json:"professional_id"`

	Client struct {
		Name  string  `json:"name"`
		Email string  `json:"email"`
		Phone string  `json:"phone"`
		Notes *string `json:"notes"`
	} `json:"client"`

	Services []struct {
		ID       int `json:"id"`
		Quantity int `json:"quantity"`
	} `json:"services"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucBooking.CreateBookingInput{
		Date:           req.Date,
		Time:           req.Time,
		ProfessionalID: req.ProfessionalID,
		Client: ucBooking.ClientInput{
			Name:  req.Client.Name,
			Email: req.Client.Email,
			Phone: req.Client.Phone,
			Notes: req.Client.Notes,
		},
	}
	for _, s := range req.Services {
		in.Services = append(in.Services, ucBooking.ServiceSelection{
			ID:       s.ID,
			Quantity: s.Quantity,
		})
	}

	bookingID, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{"booking_id": bookingID})
}

// ======================================================
// LIST (filtros opcionais)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.queryUC.Execute(c.Request.Context(), ucBooking.QueryBookingsInput{
		ProfessionalID: c.Query("professional_id"),
		From:           c.Query("from"),
		To:             c.Query("to"),
		ServiceID:      c.Query("service_id"),
		Client:         c.Query("client"),
		Time:           c.Query("time"),
		TimeFrom:       c.Query("time_from"),
		TimeTo:         c.Query("time_to"),
	})
	if err != nil {
		httperr.Internal(c, "backend_failure", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"bookings": bookings})
}

// ======================================================
// ERROR MAPPING
// ======================================================

// Erros de negócio da criação viram 400; o resto é falha de backend (500)
// com a mensagem original repassada.
func mapBookingErrors(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}

	httperr.Internal(c, "backend_failure", err.Error())
}
