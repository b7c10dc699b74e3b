package dto

// Linha do GET /bookings: agendamento enriquecido com o cliente,
// os itens ordenados por nome de serviço e os totais agregados.
type BookingListDTO struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	ProfessionalID *string `json:"professional_id"`

	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	TotalPrice           float64 `json:"total_price"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`

	Services []BookingServiceDTO `json:"services"`
}

type BookingServiceDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Quantity        int     `json:"quantity"`
}
