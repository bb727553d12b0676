package main

import (
	"log"
	"net/http"

	"hrms/config"
	"hrms/database"
	"hrms/handlers"
	"hrms/repository"
	"hrms/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize repositories and services
	employees := repository.NewEmployeeRepository(db)
	attendance := repository.NewAttendanceRepository(db, employees)
	stats := service.NewStatsService(employees, attendance)

	// Initialize handlers and router
	router := handlers.NewRouter(cfg,
		handlers.NewEmployeeHandler(employees),
		handlers.NewAttendanceHandler(attendance, stats),
		handlers.NewDashboardHandler(stats),
	)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
