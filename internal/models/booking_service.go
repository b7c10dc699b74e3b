package models

// Item de um agendamento. A chave composta impede linhas duplicadas
// para o mesmo serviço; quantidades repetidas são somadas na escrita.
type BookingService struct {
	BookingID string `gorm:"size:36;primaryKey" json:"booking_id"`
	ServiceID int    `gorm:"primaryKey" json:"service_id"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
