package repository

import (
	"errors"

	"doctor-appointment/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned when an insert trips the unique email
// constraint. The services pre-check by email, but the constraint is the
// source of truth under concurrent identical registrations.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository struct {
	Admin   AdminRepository
	Doctor  DoctorRepository
	Patient PatientRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:   NewAdminRepository(db, log),
		Doctor:  NewDoctorRepository(db, log),
		Patient: NewPatientRepository(db, log),
	}
}
