package models

import "time"

// Data e hora ficam em colunas texto ISO (YYYY-MM-DD / HH:MM:SS),
// então a ordem lexicográfica coincide com a cronológica e os filtros
// de intervalo viram comparações simples.
type Booking struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;index:idx_bookings_date_time" json:"date"`
	Time string `gorm:"size:8;not null;index:idx_bookings_date_time" json:"time"`

	ProfessionalID *string       `gorm:"size:36;index" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional,omitempty"`

	ClientID string `gorm:"size:36;not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	CreatedAt time.Time `json:"created_at"`
}
