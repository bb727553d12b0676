package handlers

import (
	"net/http"

	"hrms/models"
	"hrms/repository"
	"hrms/service"

	"github.com/go-chi/chi/v5"
)

type AttendanceHandler struct {
	attendance *repository.AttendanceRepository
	stats      *service.StatsService
}

func NewAttendanceHandler(attendance *repository.AttendanceRepository, stats *service.StatsService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, stats: stats}
}

type markAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// Mark creates or updates the attendance record for the given employee and
// date. Re-marking an existing date answers 201 as well, matching the create
// semantics of the endpoint.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondWithError(w, err)
		return
	}

	record, err := h.attendance.Mark(r.Context(), repository.MarkAttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     models.AttendanceStatus(req.Status),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	startDate, err := dateParam(r, "start_date")
	if err != nil {
		respondWithError(w, err)
		return
	}
	endDate, err := dateParam(r, "end_date")
	if err != nil {
		respondWithError(w, err)
		return
	}

	records, err := h.attendance.List(r.Context(), startDate, endDate)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if records == nil {
		records = []models.Attendance{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *AttendanceHandler) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	startDate, err := dateParam(r, "start_date")
	if err != nil {
		respondWithError(w, err)
		return
	}
	endDate, err := dateParam(r, "end_date")
	if err != nil {
		respondWithError(w, err)
		return
	}

	records, err := h.attendance.ListForEmployee(r.Context(), chi.URLParam(r, "employeeID"), startDate, endDate)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if records == nil {
		records = []models.Attendance{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *AttendanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.stats.Summarize(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
