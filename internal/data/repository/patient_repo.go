package repository

import (
	"context"
	"errors"
	"fmt"

	"doctor-appointment/internal/data/entity"
	"doctor-appointment/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Patient, error)
	CountAll(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

type patientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPatientRepository(db database.PgxIface, log *zap.Logger) PatientRepository {
	return &patientRepository{
		db:  db,
		log: log,
	}
}

const patientColumns = `id, full_name, email, password, mobile, date_of_birth,
	gender, blood_group, address, emergency_contact, role, is_active,
	created_at, updated_at`

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&p.PasswordHash,
		&p.Mobile,
		&p.DateOfBirth,
		&p.Gender,
		&p.BloodGroup,
		&p.Address,
		&p.EmergencyContact,
		&p.Role,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	query := `
		INSERT INTO patient (
			id, full_name, email, password, mobile, date_of_birth, gender,
			blood_group, address, emergency_contact, role, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := pr.db.Exec(ctx, query,
		patient.ID,
		patient.FullName,
		patient.Email,
		patient.PasswordHash,
		patient.Mobile,
		patient.DateOfBirth,
		patient.Gender,
		patient.BloodGroup,
		patient.Address,
		patient.EmergencyContact,
		patient.Role,
		patient.IsActive,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		pr.log.Error("Failed to create patient",
			zap.Error(err),
			zap.String("email", patient.Email),
		)
		return fmt.Errorf("create patient %s: %w", patient.Email, err)
	}

	return nil
}

func (pr *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patient WHERE id = $1`

	patient, err := scanPatient(pr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find patient by ID",
			zap.Error(err),
			zap.String("patient_id", id.String()),
		)
		return nil, fmt.Errorf("find patient by ID %s: %w", id.String(), err)
	}

	return patient, nil
}

func (pr *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patient WHERE email = $1`

	patient, err := scanPatient(pr.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find patient by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find patient by email %s: %w", email, err)
	}

	return patient, nil
}

func (pr *patientRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + `
		FROM patient
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := pr.db.Query(ctx, query, limit, offset)
	if err != nil {
		pr.log.Error("Failed to get all patients",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all patients limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			pr.log.Error("Failed to scan patient row", zap.Error(err))
			return nil, fmt.Errorf("scan patient row: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate patients rows: %w", err)
	}

	return patients, nil
}

func (pr *patientRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM patient`

	var count int64
	if err := pr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		pr.log.Error("Database error counting patients", zap.Error(err))
		return 0, fmt.Errorf("count all patients: %w", err)
	}

	return count, nil
}

// SetActive toggles the activation flag. Idempotent: updating to the
// current value still succeeds, only a missing row returns false.
func (pr *patientRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	query := `UPDATE patient SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id, active)
	if err != nil {
		pr.log.Error("Failed to update patient activation",
			zap.Error(err),
			zap.String("patient_id", id.String()),
			zap.Bool("is_active", active),
		)
		return false, fmt.Errorf("set patient %s is_active=%t: %w", id.String(), active, err)
	}

	return result.RowsAffected() > 0, nil
}
