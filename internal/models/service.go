package models

// Catálogo de serviços da barbearia (corte, barba, combos...)
type Service struct {
	ID              int     `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	Price           float64 `gorm:"type:numeric(10,2)" json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     string  `gorm:"size:255" json:"description"`
}
