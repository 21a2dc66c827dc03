package usecase

import (
	"doctor-appointment/internal/data/repository"
	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Doctor  DoctorService
	Patient PatientService
	Admin   AdminService
}

func NewService(repo *repository.Repository, tokens *token.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Doctor:  NewDoctorService(repo.Doctor, tokens, log),
		Patient: NewPatientService(repo.Patient, tokens, log),
		Admin:   NewAdminService(repo, tokens, config, log),
	}
}
