package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/medchart/medchart-api/internal/api"
	apiMiddleware "github.com/medchart/medchart-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.authService)
	patientHandler := api.NewPatientHandler(app.patientService)
	vitalHandler := api.NewVitalHandler(app.vitalService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Patient endpoints
			r.Get("/patients", patientHandler.ListPatients)
			r.Post("/patients", patientHandler.CreatePatient)
			r.Get("/patients/{patientID}", patientHandler.GetPatient)
			r.Put("/patients/{patientID}", patientHandler.UpdatePatient)

			// Vital sign endpoints
			r.Get("/patients/{patientID}/vitals", vitalHandler.GetVitals)
			r.Post("/patients/{patientID}/vitals", vitalHandler.AddVitals)
			r.Get("/patients/{patientID}/vitals/stats", vitalHandler.GetStatistics)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
