package models

import "time"

type Professional struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
