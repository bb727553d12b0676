package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Attendance holds one record per (employee_id, date) pair. The pair is
// backed by a composite unique index so marking the same day twice updates
// the existing row instead of inserting a second one.
type Attendance struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string           `gorm:"uniqueIndex:idx_attendance_employee_date;not null;size:50" json:"employee_id"`
	Date       string           `gorm:"uniqueIndex:idx_attendance_employee_date;not null;size:10" json:"date"`
	Status     AttendanceStatus `gorm:"not null;size:10" json:"status"`
	// Resolved from the owning employee when records are read; nil if the
	// employee no longer exists.
	EmployeeName *string   `gorm:"-" json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type AttendanceSummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalPresent int64  `json:"total_present"`
	TotalAbsent  int64  `json:"total_absent"`
	TotalDays    int64  `json:"total_days"`
}

type DashboardStats struct {
	TotalEmployees int64   `json:"total_employees"`
	PresentToday   int64   `json:"present_today"`
	AbsentToday    int64   `json:"absent_today"`
	AttendanceRate float64 `json:"attendance_rate"`
	Date           string  `json:"date"`
}
