// Package main implements a small seeding tool that provisions a default
// admin account and a handful of demo patients with vital records. It is
// idempotent: records that already exist are left untouched.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/medchart/medchart-api/internal/config"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/platform/logger"
	"github.com/medchart/medchart-api/internal/platform/postgres"
	"github.com/medchart/medchart-api/internal/service/auth"
	"github.com/medchart/medchart-api/internal/store"
)

type demoPatient struct {
	firstName   string
	lastName    string
	dateOfBirth string
	gender      domain.Gender
	phone       string
	email       string
}

var demoPatients = []demoPatient{
	// Phone numbers are long enough to satisfy the patient validators, so
	// seeded records survive partial updates unchanged.
	{"John", "Doe", "1990-01-15", domain.GenderMale, "555-010-0101", "john.doe@example.com"},
	{"Jane", "Smith", "1985-05-20", domain.GenderFemale, "555-010-0102", "jane.smith@example.com"},
	{"Robert", "Johnson", "1978-11-30", domain.GenderMale, "555-010-0103", "robert.johnson@example.com"},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := seedAdminUser(ctx, db, cfg, appLogger); err != nil {
		return err
	}
	if err := seedDemoPatients(ctx, db, appLogger); err != nil {
		return err
	}

	appLogger.Info("Seeding completed")
	return nil
}

// seedAdminUser creates the default admin account unless it already exists.
func seedAdminUser(ctx context.Context, db *sql.DB, cfg *config.Config, log *slog.Logger) error {
	userStore := postgres.NewPostgresUserStore(db, log)

	if _, err := userStore.GetByUsername(ctx, "admin"); err == nil {
		log.Info("Admin user already exists, skipping")
		return nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	hashed, err := hasher.Hash("Admin123!")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := domain.NewUser("admin", "admin@medchart.local", "")
	admin.HashedPassword = hashed

	if err := userStore.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Admin user created", "username", admin.Username)
	return nil
}

// seedDemoPatients inserts the demo patients and one baseline vital record
// each. A patient counts as existing when a record with the same first and
// last name is already present.
func seedDemoPatients(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	patientStore := postgres.NewPostgresPatientStore(db, log)
	vitalStore := postgres.NewPostgresVitalStore(db, log)

	for _, dp := range demoPatients {
		exists, err := patientExists(ctx, db, dp.firstName, dp.lastName)
		if err != nil {
			return fmt.Errorf("failed to check for existing patient: %w", err)
		}
		if exists {
			log.Info("Demo patient already exists, skipping",
				"first_name", dp.firstName,
				"last_name", dp.lastName)
			continue
		}

		patient := domain.NewPatient()
		patient.FirstName = dp.firstName
		patient.LastName = dp.lastName
		patient.DateOfBirth = dp.dateOfBirth
		patient.Gender = dp.gender
		phone, email := dp.phone, dp.email
		patient.Phone = &phone
		patient.Email = &email

		if err := patientStore.Create(ctx, patient); err != nil {
			return fmt.Errorf("failed to create demo patient: %w", err)
		}

		vital := domain.NewVital(patient.ID)
		systolic, diastolic, heartRate, respiratoryRate := 120, 80, 72, 16
		temperature, oxygenSaturation := 37.0, 98.0
		vital.BloodPressureSystolic = &systolic
		vital.BloodPressureDiastolic = &diastolic
		vital.HeartRate = &heartRate
		vital.Temperature = &temperature
		vital.RespiratoryRate = &respiratoryRate
		vital.OxygenSaturation = &oxygenSaturation
		vital.RecordedAt = time.Now().UTC()

		if err := vitalStore.Create(ctx, vital); err != nil {
			return fmt.Errorf("failed to create demo vitals: %w", err)
		}

		log.Info("Demo patient created",
			"patient_id", patient.ID,
			"first_name", dp.firstName,
			"last_name", dp.lastName)
	}

	return nil
}

func patientExists(ctx context.Context, db *sql.DB, firstName, lastName string) (bool, error) {
	var count int
	err := db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM patients WHERE first_name = $1 AND last_name = $2`,
		firstName, lastName,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
