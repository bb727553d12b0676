package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex;not null;size:50" json:"employee_id"`
	FullName   string    `gorm:"not null;size:100" json:"full_name"`
	Email      string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Department string    `gorm:"not null;size:100" json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
