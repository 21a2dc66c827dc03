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

type DoctorService interface {
	Register(ctx context.Context, req *request.DoctorRegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, rawToken string) error
	GetProfile(ctx context.Context, doctorID uuid.UUID) (*response.DoctorResponse, error)
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
	tokens     *token.Manager
	log        *zap.Logger
}

func NewDoctorService(doctorRepo repository.DoctorRepository, tokens *token.Manager, log *zap.Logger) DoctorService {
	return &doctorService{
		doctorRepo: doctorRepo,
		tokens:     tokens,
		log:        log,
	}
}

func (s *doctorService) Register(ctx context.Context, req *request.DoctorRegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Doctor register validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(req.Email)

	// 2. Check email not taken
	existing, err := s.doctorRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.NewInternal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.NewDuplicate("Email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.NewInternal("Failed to process password", err)
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, apperr.NewValidation("Invalid date format. Use YYYY-MM-DD")
	}

	// 4. Build doctor entity. New doctors start unapproved and unverified
	// until an admin moderates them.
	now := time.Now()
	doctor := &entity.Doctor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:           req.FullName,
		Email:              email,
		PasswordHash:       hashedPassword,
		Mobile:             req.Mobile,
		Gender:             strings.ToUpper(req.Gender),
		Location:           req.Location,
		RegistrationNumber: req.RegistrationNumber,
		Council:            req.Council,
		Degree:             req.Degree,
		Specialty:          req.Specialty,
		Experience:         req.Experience,
		ClinicName:         req.ClinicName,
		ClinicAddress:      req.ClinicAddress,
		ProfilePhoto:       req.ProfilePhoto,
		DOB:                dob,
		BloodGroup:         req.BloodGroup,
		AvailableDays:      req.AvailableDays,
		AvailableFrom:      req.AvailableFrom,
		AvailableTo:        req.AvailableTo,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		Languages:          req.Languages,
		Documents:          req.Documents,
		Role:               entity.RoleDoctor,
		Approved:           false,
		Suspended:          false,
		DocumentsVerified:  false,
	}

	// 5. Save (single insert; unique constraint backstops the pre-check)
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.NewDuplicate("Email already registered")
		}
		return nil, apperr.NewInternal("Failed to create account", err)
	}

	// 6. Issue session token
	signed, expiresAt, err := s.tokens.Issue(doctor.ID, string(entity.RoleDoctor))
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("doctor_id", doctor.ID.String()))
		return nil, apperr.NewInternal("Failed to create session", err)
	}

	s.log.Info("Doctor registered",
		zap.String("doctor_id", doctor.ID.String()),
		zap.String("email", doctor.Email))

	return response.DoctorAuthResponse(doctor, signed, expiresAt), nil
}

func (s *doctorService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Doctor login validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	doctor, err := s.doctorRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, apperr.NewInternal("Failed to find doctor", err)
	}
	if doctor == nil {
		s.log.Warn("Doctor not found for login", zap.String("email", req.Email))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, doctor.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("doctor_id", doctor.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	// Suspended doctors cannot authenticate. Same message as a credential
	// mismatch so the response does not leak account state.
	if doctor.Suspended {
		s.log.Warn("Suspended doctor tried to login", zap.String("doctor_id", doctor.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid email or password")
	}

	signed, expiresAt, err := s.tokens.Issue(doctor.ID, string(entity.RoleDoctor))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("doctor_id", doctor.ID.String()))
		return nil, apperr.NewInternal("Failed to create session", err)
	}

	s.log.Info("Doctor logged in",
		zap.String("doctor_id", doctor.ID.String()),
		zap.String("email", doctor.Email))

	return response.DoctorAuthResponse(doctor, signed, expiresAt), nil
}

func (s *doctorService) Logout(ctx context.Context, rawToken string) error {
	if err := revokeToken(ctx, s.tokens, rawToken); err != nil {
		return err
	}

	s.log.Info("Doctor logged out")
	return nil
}

func (s *doctorService) GetProfile(ctx context.Context, doctorID uuid.UUID) (*response.DoctorResponse, error) {
	doctor, err := s.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		return nil, apperr.NewInternal("Failed to get profile", err)
	}
	if doctor == nil {
		return nil, apperr.NewNotFound("Doctor not found")
	}

	return response.DoctorToResponse(doctor), nil
}

// ==================== HELPERS SHARED BY AUTH SERVICES ====================

// revokeToken adds the token's identifier to the revocation set, mapping
// token errors onto the application error kinds.
func revokeToken(ctx context.Context, tokens *token.Manager, rawToken string) error {
	err := tokens.Revoke(ctx, rawToken)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, token.ErrTokenExpired):
		return apperr.NewUnauthorized("Token expired")
	case errors.Is(err, token.ErrTokenInvalid):
		return apperr.NewUnauthorized("Invalid token")
	default:
		return apperr.NewInternal("Failed to logout", err)
	}
}

// parseDate parses an optional YYYY-MM-DD string.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
