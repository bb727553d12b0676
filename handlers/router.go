package handlers

import (
	"net/http"

	"hrms/config"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires middleware and routes for the full API surface.
func NewRouter(cfg *config.Config, employees *EmployeeHandler, attendance *AttendanceHandler, dashboard *DashboardHandler) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		// All origins stay allowed for development, on top of the
		// configured ones.
		AllowedOrigins:   append(cfg.CORSOrigins, "*"),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/", rootHandler(cfg))
	router.Get("/health", healthHandler)

	router.Route("/api", func(r chi.Router) {
		r.Post("/employees", employees.Create)
		r.Get("/employees", employees.List)
		r.Get("/employees/{employeeID}", employees.Get)
		r.Delete("/employees/{employeeID}", employees.Delete)

		r.Post("/attendance", attendance.Mark)
		r.Get("/attendance", attendance.List)
		r.Get("/attendance/summary", attendance.Summary)
		r.Get("/attendance/employee/{employeeID}", attendance.ListForEmployee)

		r.Get("/dashboard/stats", dashboard.Stats)
	})

	return router
}

func rootHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to " + cfg.AppName + " API",
			"status":  "healthy",
			"version": "1.0.0",
		})
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
