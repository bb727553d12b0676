package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrms/apperror"
	"hrms/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// Create inserts a new employee. Uniqueness of employee_id and email is
// enforced by the database indexes; a violation is reported as a duplicate-key
// error naming the colliding field and value.
func (r *EmployeeRepository) Create(ctx context.Context, input CreateEmployeeInput) (models.Employee, error) {
	now := time.Now().UTC()
	employee := models.Employee{
		EmployeeID: input.EmployeeID,
		FullName:   input.FullName,
		Email:      input.Email,
		Department: input.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := r.db.WithContext(ctx).Create(&employee).Error; err != nil {
		if isDuplicateError(err) {
			return models.Employee{}, r.duplicateFieldError(ctx, input)
		}
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return employee, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperror.New(apperror.CodeNotFound,
				fmt.Sprintf("Employee with ID '%s' not found", employeeID))
		}
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

// Delete removes the employee and all attendance records carrying its
// business key. The cascade is unconditional and runs in one transaction.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	if _, err := r.GetByEmployeeID(ctx, employeeID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Attendance{}).Error; err != nil {
			return fmt.Errorf("delete attendance records: %w", err)
		}
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Employee{}).Error; err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		return nil
	})
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// duplicateFieldError re-queries to learn which unique field collided so the
// message can name it. employee_id is checked first, matching the precedence
// of the API contract.
func (r *EmployeeRepository) duplicateFieldError(ctx context.Context, input CreateEmployeeInput) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_id = ?", input.EmployeeID).Count(&count).Error
	if err == nil && count > 0 {
		return apperror.New(apperror.CodeDuplicateKey,
			fmt.Sprintf("Employee with ID '%s' already exists", input.EmployeeID))
	}
	return apperror.New(apperror.CodeDuplicateKey,
		fmt.Sprintf("Employee with email '%s' already exists", input.Email))
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
