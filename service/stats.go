package service

import (
	"context"
	"math"
	"time"

	"hrms/models"
	"hrms/repository"
)

// StatsService derives aggregate views by composing the repositories; it
// holds no state of its own.
type StatsService struct {
	employees  *repository.EmployeeRepository
	attendance *repository.AttendanceRepository
}

func NewStatsService(employees *repository.EmployeeRepository, attendance *repository.AttendanceRepository) *StatsService {
	return &StatsService{employees: employees, attendance: attendance}
}

// Summarize emits one row per employee in list order. Employees without any
// attendance records appear with all-zero counts.
func (s *StatsService) Summarize(ctx context.Context) ([]models.AttendanceSummary, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AttendanceSummary, 0, len(employees))
	for _, employee := range employees {
		present, err := s.attendance.CountForEmployee(ctx, employee.EmployeeID, models.StatusPresent)
		if err != nil {
			return nil, err
		}
		absent, err := s.attendance.CountForEmployee(ctx, employee.EmployeeID, models.StatusAbsent)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.AttendanceSummary{
			EmployeeID:   employee.EmployeeID,
			EmployeeName: employee.FullName,
			TotalPresent: present,
			TotalAbsent:  absent,
			TotalDays:    present + absent,
		})
	}

	return summaries, nil
}

// DashboardStats reports the employee headcount and today's attendance split.
// The rate is a percentage rounded to one decimal place, 0.0 when nothing has
// been marked today. "Today" is the system local calendar date.
func (s *StatsService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	today := time.Now().Format("2006-01-02")

	present, err := s.attendance.CountForDate(ctx, today, models.StatusPresent)
	if err != nil {
		return models.DashboardStats{}, err
	}
	absent, err := s.attendance.CountForDate(ctx, today, models.StatusAbsent)
	if err != nil {
		return models.DashboardStats{}, err
	}

	rate := 0.0
	if marked := present + absent; marked > 0 {
		rate = math.Round(float64(present)/float64(marked)*1000) / 10
	}

	return models.DashboardStats{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		AttendanceRate: rate,
		Date:           today,
	}, nil
}
