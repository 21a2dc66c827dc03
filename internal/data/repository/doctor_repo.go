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

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Doctor, error)
	CountAll(ctx context.Context) (int64, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (bool, error)
	SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) (bool, error)
	SetDocumentsVerified(ctx context.Context, id uuid.UUID, verified bool) (bool, error)
}

type doctorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDoctorRepository(db database.PgxIface, log *zap.Logger) DoctorRepository {
	return &doctorRepository{
		db:  db,
		log: log,
	}
}

const doctorColumns = `id, full_name, email, password, mobile, gender, location,
	registration_number, council, degree, specialty, experience,
	clinic_name, clinic_address, profile_photo, dob, blood_group,
	available_days, available_from, available_to, city, state, zip_code,
	languages, documents, role, approved, suspended, documents_verified,
	created_at, updated_at`

func scanDoctor(row pgx.Row) (*entity.Doctor, error) {
	var d entity.Doctor
	err := row.Scan(
		&d.ID,
		&d.FullName,
		&d.Email,
		&d.PasswordHash,
		&d.Mobile,
		&d.Gender,
		&d.Location,
		&d.RegistrationNumber,
		&d.Council,
		&d.Degree,
		&d.Specialty,
		&d.Experience,
		&d.ClinicName,
		&d.ClinicAddress,
		&d.ProfilePhoto,
		&d.DOB,
		&d.BloodGroup,
		&d.AvailableDays,
		&d.AvailableFrom,
		&d.AvailableTo,
		&d.City,
		&d.State,
		&d.ZipCode,
		&d.Languages,
		&d.Documents,
		&d.Role,
		&d.Approved,
		&d.Suspended,
		&d.DocumentsVerified,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (dr *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	query := `
		INSERT INTO doctors (
			id, full_name, email, password, mobile, gender, location,
			registration_number, council, degree, specialty, experience,
			clinic_name, clinic_address, profile_photo, dob, blood_group,
			available_days, available_from, available_to, city, state, zip_code,
			languages, documents, role, approved, suspended, documents_verified,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31
		)
	`

	_, err := dr.db.Exec(ctx, query,
		doctor.ID,
		doctor.FullName,
		doctor.Email,
		doctor.PasswordHash,
		doctor.Mobile,
		doctor.Gender,
		doctor.Location,
		doctor.RegistrationNumber,
		doctor.Council,
		doctor.Degree,
		doctor.Specialty,
		doctor.Experience,
		doctor.ClinicName,
		doctor.ClinicAddress,
		doctor.ProfilePhoto,
		doctor.DOB,
		doctor.BloodGroup,
		doctor.AvailableDays,
		doctor.AvailableFrom,
		doctor.AvailableTo,
		doctor.City,
		doctor.State,
		doctor.ZipCode,
		doctor.Languages,
		doctor.Documents,
		doctor.Role,
		doctor.Approved,
		doctor.Suspended,
		doctor.DocumentsVerified,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		dr.log.Error("Failed to create doctor",
			zap.Error(err),
			zap.String("email", doctor.Email),
		)
		return fmt.Errorf("create doctor %s: %w", doctor.Email, err)
	}

	return nil
}

func (dr *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`

	doctor, err := scanDoctor(dr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		dr.log.Error("Failed to find doctor by ID",
			zap.Error(err),
			zap.String("doctor_id", id.String()),
		)
		return nil, fmt.Errorf("find doctor by ID %s: %w", id.String(), err)
	}

	return doctor, nil
}

func (dr *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE email = $1`

	doctor, err := scanDoctor(dr.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		dr.log.Error("Failed to find doctor by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find doctor by email %s: %w", email, err)
	}

	return doctor, nil
}

func (dr *doctorRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + `
		FROM doctors
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := dr.db.Query(ctx, query, limit, offset)
	if err != nil {
		dr.log.Error("Failed to get all doctors",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all doctors limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var doctors []*entity.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			dr.log.Error("Failed to scan doctor row", zap.Error(err))
			return nil, fmt.Errorf("scan doctor row: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		dr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate doctors rows: %w", err)
	}

	return doctors, nil
}

func (dr *doctorRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM doctors`

	var count int64
	if err := dr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		dr.log.Error("Database error counting doctors", zap.Error(err))
		return 0, fmt.Errorf("count all doctors: %w", err)
	}

	return count, nil
}

// SetApproved flips the approval flag. The UPDATE matches on id alone so a
// repeated approve/reject stays an idempotent success; the returned bool
// only distinguishes a missing row.
func (dr *doctorRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (bool, error) {
	query := `UPDATE doctors SET approved = $2, updated_at = NOW() WHERE id = $1`

	result, err := dr.db.Exec(ctx, query, id, approved)
	if err != nil {
		dr.log.Error("Failed to update doctor approval",
			zap.Error(err),
			zap.String("doctor_id", id.String()),
			zap.Bool("approved", approved),
		)
		return false, fmt.Errorf("set doctor %s approved=%t: %w", id.String(), approved, err)
	}

	return result.RowsAffected() > 0, nil
}

func (dr *doctorRepository) SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) (bool, error) {
	query := `UPDATE doctors SET suspended = $2, updated_at = NOW() WHERE id = $1`

	result, err := dr.db.Exec(ctx, query, id, suspended)
	if err != nil {
		dr.log.Error("Failed to update doctor suspension",
			zap.Error(err),
			zap.String("doctor_id", id.String()),
			zap.Bool("suspended", suspended),
		)
		return false, fmt.Errorf("set doctor %s suspended=%t: %w", id.String(), suspended, err)
	}

	return result.RowsAffected() > 0, nil
}

func (dr *doctorRepository) SetDocumentsVerified(ctx context.Context, id uuid.UUID, verified bool) (bool, error) {
	query := `UPDATE doctors SET documents_verified = $2, updated_at = NOW() WHERE id = $1`

	result, err := dr.db.Exec(ctx, query, id, verified)
	if err != nil {
		dr.log.Error("Failed to update doctor document verification",
			zap.Error(err),
			zap.String("doctor_id", id.String()),
			zap.Bool("documents_verified", verified),
		)
		return false, fmt.Errorf("set doctor %s documents_verified=%t: %w", id.String(), verified, err)
	}

	return result.RowsAffected() > 0, nil
}
