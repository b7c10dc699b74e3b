package models

import "time"

// Cliente simples, sem login; criado/atualizado como efeito do agendamento.
// O e-mail é a chave de negócio do upsert.
type Client struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Phone string  `gorm:"size:20;not null" json:"phone"`
	Email string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Notes *string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
