package repository

import (
	"context"
	"testing"
	"time"

	"hrms/apperror"
	"hrms/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection so every statement sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Attendance{}))
	return db
}

func createEmployee(t *testing.T, repo *EmployeeRepository, employeeID, email string) models.Employee {
	t.Helper()
	employee, err := repo.Create(context.Background(), CreateEmployeeInput{
		EmployeeID: employeeID,
		FullName:   "Test Person",
		Email:      email,
		Department: "Engineering",
	})
	require.NoError(t, err)
	return employee
}

func TestCreateEmployee(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))

	employee := createEmployee(t, repo, "E001", "ann@x.com")

	require.NotEmpty(t, employee.ID)
	require.Equal(t, "E001", employee.EmployeeID)
	require.True(t, employee.UpdatedAt.Equal(employee.CreatedAt))
}

func TestCreateEmployeeDuplicateID(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))
	createEmployee(t, repo, "E001", "ann@x.com")

	_, err := repo.Create(context.Background(), CreateEmployeeInput{
		EmployeeID: "E001",
		FullName:   "Somebody Else",
		Email:      "other@x.com",
		Department: "Sales",
	})

	require.Error(t, err)
	require.Equal(t, apperror.CodeDuplicateKey, apperror.GetCode(err))
	require.Contains(t, err.Error(), "Employee with ID 'E001' already exists")
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))
	createEmployee(t, repo, "E001", "ann@x.com")

	_, err := repo.Create(context.Background(), CreateEmployeeInput{
		EmployeeID: "E002",
		FullName:   "Somebody Else",
		Email:      "ann@x.com",
		Department: "Sales",
	})

	require.Error(t, err)
	require.Equal(t, apperror.CodeDuplicateKey, apperror.GetCode(err))
	require.Contains(t, err.Error(), "Employee with email 'ann@x.com' already exists")
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))

	createEmployee(t, repo, "E001", "first@x.com")
	time.Sleep(5 * time.Millisecond)
	createEmployee(t, repo, "E002", "second@x.com")

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	require.Equal(t, "E002", employees[0].EmployeeID)
	require.Equal(t, "E001", employees[1].EmployeeID)
}

func TestGetByEmployeeIDNotFound(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))

	_, err := repo.GetByEmployeeID(context.Background(), "E404")

	require.Error(t, err)
	require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	require.Contains(t, err.Error(), "Employee with ID 'E404' not found")
}

func TestDeleteCascadesAttendance(t *testing.T) {
	db := newTestDB(t)
	employees := NewEmployeeRepository(db)
	attendance := NewAttendanceRepository(db, employees)
	ctx := context.Background()

	createEmployee(t, employees, "E001", "ann@x.com")
	_, err := attendance.Mark(ctx, MarkAttendanceInput{EmployeeID: "E001", Date: "2024-01-01", Status: models.StatusPresent})
	require.NoError(t, err)
	_, err = attendance.Mark(ctx, MarkAttendanceInput{EmployeeID: "E001", Date: "2024-01-02", Status: models.StatusAbsent})
	require.NoError(t, err)

	require.NoError(t, employees.Delete(ctx, "E001"))

	_, err = employees.GetByEmployeeID(ctx, "E001")
	require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Where("employee_id = ?", "E001").Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteNotFound(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))

	err := repo.Delete(context.Background(), "E404")

	require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
}

func TestCount(t *testing.T) {
	repo := NewEmployeeRepository(newTestDB(t))
	createEmployee(t, repo, "E001", "ann@x.com")
	createEmployee(t, repo, "E002", "bob@x.com")

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}
