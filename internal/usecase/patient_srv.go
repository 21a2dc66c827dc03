package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"doctor-appointment/internal/apperr"
	"doctor-appointment/internal/data/entity"
	"doctor-appointment/internal/data/repository"
	"doctor-appointment/internal/dto/request"
	"doctor-appointment/internal/dto/response"
	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PatientService interface {
	Register(ctx context.Context, req *request.PatientRegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, rawToken string) error
	GetProfile(ctx context.Context, patientID uuid.UUID) (*response.PatientResponse, error)
}

type patientService struct {
	patientRepo repository.PatientRepository
	tokens      *token.Manager
	log         *zap.Logger
}

func NewPatientService(patientRepo repository.PatientRepository, tokens *token.Manager, log *zap.Logger) PatientService {
	return &patientService{
		patientRepo: patientRepo,
		tokens:      tokens,
		log:         log,
	}
}

func (s *patientService) Register(ctx context.Context, req *request.PatientRegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patient register validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(req.Email)

	existing, err := s.patientRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.NewInternal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.NewDuplicate("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.NewInternal("Failed to process password", err)
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperr.NewValidation("Invalid date format. Use YYYY-MM-DD")
	}

	var gender *string
	if req.Gender != nil {
		upper := strings.ToUpper(*req.Gender)
		gender = &upper
	}

	// New patients are active until an admin deactivates them.
	now := time.Now()
	patient := &entity.Patient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:         req.FullName,
		Email:            email,
		PasswordHash:     hashedPassword,
		Mobile:           req.Mobile,
		DateOfBirth:      dob,
		Gender:           gender,
		BloodGroup:       req.BloodGroup,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Role:             entity.RolePatient,
		IsActive:         true,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.NewDuplicate("Email already registered")
		}
		return nil, apperr.NewInternal("Failed to create account", err)
	}

	signed, expiresAt, err := s.tokens.Issue(patient.ID, string(entity.RolePatient))
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("patient_id", patient.ID.String()))
		return nil, apperr.NewInternal("Failed to create session", err)
	}

	s.log.Info("Patient registered",
		zap.String("patient_id", patient.ID.String()),
		zap.String("email", patient.Email))

	return response.PatientAuthResponse(patient, signed, expiresAt), nil
}

func (s *patientService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patient login validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	patient, err := s.patientRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, apperr.NewInternal("Failed to find patient", err)
	}
	if patient == nil {
		s.log.Warn("Patient not found for login", zap.String("email", req.Email))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, patient.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("patient_id", patient.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	// Deactivated patients cannot authenticate.
	if !patient.IsActive {
		s.log.Warn("Inactive patient tried to login", zap.String("patient_id", patient.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	signed, expiresAt, err := s.tokens.Issue(patient.ID, string(entity.RolePatient))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("patient_id", patient.ID.String()))
		return nil, apperr.NewInternal("Failed to create session", err)
	}

	s.log.Info("Patient logged in",
		zap.String("patient_id", patient.ID.String()),
		zap.String("email", patient.Email))

	return response.PatientAuthResponse(patient, signed, expiresAt), nil
}

func (s *patientService) Logout(ctx context.Context, rawToken string) error {
	if err := revokeToken(ctx, s.tokens, rawToken); err != nil {
		return err
	}

	s.log.Info("Patient logged out")
	return nil
}

func (s *patientService) GetProfile(ctx context.Context, patientID uuid.UUID) (*response.PatientResponse, error) {
	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, apperr.NewInternal("Failed to get profile", err)
	}
	if patient == nil {
		return nil, apperr.NewNotFound("Patient not found")
	}

	return response.PatientToResponse(patient), nil
}
