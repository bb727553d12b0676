package handlers

import (
	"net/http"

	"hrms/models"
	"hrms/repository"

	"github.com/go-chi/chi/v5"
)

type EmployeeHandler struct {
	employees *repository.EmployeeRepository
}

func NewEmployeeHandler(employees *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=1,max=100"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondWithError(w, err)
		return
	}

	employee, err := h.employees.Create(r.Context(), repository.CreateEmployeeInput{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employees.GetByEmployeeID(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employees.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
