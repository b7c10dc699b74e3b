package booking

// Filtros opcionais do GET /bookings. Campo vazio (ou zero) = sem filtro.
// Quando Time está presente, TimeFrom/TimeTo são ignorados.
type Filter struct {
	ProfessionalID string
	From           string
	To             string
	ServiceID      int
	Client         string
	Time           string
	TimeFrom       string
	TimeTo         string
}
