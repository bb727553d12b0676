package repository

import (
	"context"
	"fmt"
	"time"

	"hrms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	db        *gorm.DB
	employees *EmployeeRepository
}

func NewAttendanceRepository(db *gorm.DB, employees *EmployeeRepository) *AttendanceRepository {
	return &AttendanceRepository{db: db, employees: employees}
}

type MarkAttendanceInput struct {
	EmployeeID string
	Date       string
	Status     models.AttendanceStatus
}

// Mark upserts the attendance record for (employee_id, date). The composite
// unique index resolves concurrent marks; the later write wins. On update the
// record keeps its identity and created_at, only status and updated_at change.
func (r *AttendanceRepository) Mark(ctx context.Context, input MarkAttendanceInput) (models.Attendance, error) {
	employee, err := r.employees.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return models.Attendance{}, err
	}

	now := time.Now().UTC()
	record := models.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Status:     input.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     input.Status,
			"updated_at": now,
		}),
	}).Create(&record).Error
	if err != nil {
		return models.Attendance{}, fmt.Errorf("mark attendance: %w", err)
	}

	// Reload the canonical row: on conflict the freshly generated id is
	// discarded and the stored record keeps its original identity.
	var stored models.Attendance
	err = r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", input.EmployeeID, input.Date).
		First(&stored).Error
	if err != nil {
		return models.Attendance{}, fmt.Errorf("reload attendance: %w", err)
	}

	stored.EmployeeName = &employee.FullName
	return stored, nil
}

// List returns attendance records ordered by date descending. Both date
// bounds are optional and inclusive. Records carry the owning employee's
// current full name.
func (r *AttendanceRepository) List(ctx context.Context, startDate, endDate string) ([]models.Attendance, error) {
	records, err := r.find(ctx, "", startDate, endDate)
	if err != nil {
		return nil, err
	}

	employees, err := r.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, employee := range employees {
		names[employee.EmployeeID] = employee.FullName
	}

	for i := range records {
		if name, ok := names[records[i].EmployeeID]; ok {
			resolved := name
			records[i].EmployeeName = &resolved
		}
	}
	return records, nil
}

// ListForEmployee is List scoped to a single employee, which must exist.
func (r *AttendanceRepository) ListForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]models.Attendance, error) {
	employee, err := r.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := r.find(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].EmployeeName = &employee.FullName
	}
	return records, nil
}

func (r *AttendanceRepository) CountForEmployee(ctx context.Context, employeeID string, status models.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count attendance for employee: %w", err)
	}
	return count, nil
}

func (r *AttendanceRepository) CountForDate(ctx context.Context, date string, status models.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count attendance for date: %w", err)
	}
	return count, nil
}

func (r *AttendanceRepository) find(ctx context.Context, employeeID, startDate, endDate string) ([]models.Attendance, error) {
	query := r.db.WithContext(ctx).Model(&models.Attendance{})
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	// Dates are fixed-width ISO strings, so string comparison is
	// chronological.
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var records []models.Attendance
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
