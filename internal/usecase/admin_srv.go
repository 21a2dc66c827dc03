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

// AdminService covers admin authentication, admin creation and the
// moderation surface over doctors and patients.
type AdminService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, rawToken string) error
	CreateAdmin(ctx context.Context, callerRole string, req *request.AdminCreateRequest) (*response.AdminResponse, error)

	ListDoctors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DoctorListItem], error)
	ViewDoctor(ctx context.Context, id uuid.UUID) (*response.DoctorResponse, error)
	ApproveDoctor(ctx context.Context, id uuid.UUID) error
	RejectDoctor(ctx context.Context, id uuid.UUID) error
	SuspendDoctor(ctx context.Context, id uuid.UUID) error
	ReinstateDoctor(ctx context.Context, id uuid.UUID) error
	VerifyDoctorDocuments(ctx context.Context, id uuid.UUID) error

	ListPatients(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PatientListItem], error)
	ViewPatient(ctx context.Context, id uuid.UUID) (*response.PatientResponse, error)
	ActivatePatient(ctx context.Context, id uuid.UUID) error
	DeactivatePatient(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	repo   *repository.Repository
	tokens *token.Manager
	config *utils.Config
	log    *zap.Logger
}

func NewAdminService(repo *repository.Repository, tokens *token.Manager, config *utils.Config, log *zap.Logger) AdminService {
	return &adminService{
		repo:   repo,
		tokens: tokens,
		config: config,
		log:    log,
	}
}

// ==================== AUTH ====================

func (s *adminService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin login validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	admin, err := s.repo.Admin.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, apperr.NewInternal("Failed to find admin", err)
	}
	if admin == nil {
		s.log.Warn("Admin not found for login", zap.String("email", req.Email))
		return nil, apperr.NewUnauthorized("Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid admin password", zap.String("admin_id", admin.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid credentials")
	}

	if !admin.IsActive {
		s.log.Warn("Inactive admin tried to login", zap.String("admin_id", admin.ID.String()))
		return nil, apperr.NewUnauthorized("Invalid credentials")
	}

	signed, expiresAt, err := s.tokens.Issue(admin.ID, string(admin.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("admin_id", admin.ID.String()))
		return nil, apperr.NewInternal("Failed to create session", err)
	}

	s.log.Info("Admin logged in",
		zap.String("admin_id", admin.ID.String()),
		zap.String("role", string(admin.Role)))

	return response.AdminAuthResponse(admin, signed, expiresAt), nil
}

func (s *adminService) Logout(ctx context.Context, rawToken string) error {
	if err := revokeToken(ctx, s.tokens, rawToken); err != nil {
		return err
	}

	s.log.Info("Admin logged out")
	return nil
}

// CreateAdmin registers a new admin account. Under the privileged policy
// only a SUPER_ADMIN caller may do this; the open policy accepts any
// authenticated admin.
func (s *adminService) CreateAdmin(ctx context.Context, callerRole string, req *request.AdminCreateRequest) (*response.AdminResponse, error) {
	if s.config.Admin.CreatePolicy == utils.AdminCreatePolicyPrivileged &&
		callerRole != string(entity.RoleSuperAdmin) {
		s.log.Warn("Non-privileged admin creation attempt", zap.String("caller_role", callerRole))
		return nil, apperr.NewForbidden("Not authorized")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin create validation failed", zap.Any("errors", errs))
		return nil, apperr.NewValidation(utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(req.Email)

	existing, err := s.repo.Admin.FindByEmail(ctx, email)
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

	role := entity.RoleAdmin
	if req.Role != "" {
		role = entity.Role(req.Role)
	}

	now := time.Now()
	admin := &entity.Admin{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.NewDuplicate("Email already registered")
		}
		return nil, apperr.NewInternal("Failed to create admin", err)
	}

	s.log.Info("Admin created",
		zap.String("admin_id", admin.ID.String()),
		zap.String("role", string(admin.Role)))

	return response.AdminToResponse(admin), nil
}

// ==================== DOCTOR MODERATION ====================

func (s *adminService) ListDoctors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DoctorListItem], error) {
	doctors, err := s.repo.Doctor.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperr.NewInternal("Failed to get doctors", err)
	}

	total, err := s.repo.Doctor.CountAll(ctx)
	if err != nil {
		return nil, apperr.NewInternal("Failed to count doctors", err)
	}

	items := make([]response.DoctorListItem, len(doctors))
	for i, doctor := range doctors {
		items[i] = response.DoctorToListItem(doctor)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) ViewDoctor(ctx context.Context, id uuid.UUID) (*response.DoctorResponse, error) {
	doctor, err := s.repo.Doctor.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NewInternal("Failed to get doctor", err)
	}
	if doctor == nil {
		return nil, apperr.NewNotFound("Doctor not found")
	}

	return response.DoctorToResponse(doctor), nil
}

func (s *adminService) ApproveDoctor(ctx context.Context, id uuid.UUID) error {
	return s.setDoctorFlag(ctx, id, "approved", func() (bool, error) {
		return s.repo.Doctor.SetApproved(ctx, id, true)
	})
}

func (s *adminService) RejectDoctor(ctx context.Context, id uuid.UUID) error {
	return s.setDoctorFlag(ctx, id, "rejected", func() (bool, error) {
		return s.repo.Doctor.SetApproved(ctx, id, false)
	})
}

func (s *adminService) SuspendDoctor(ctx context.Context, id uuid.UUID) error {
	return s.setDoctorFlag(ctx, id, "suspended", func() (bool, error) {
		return s.repo.Doctor.SetSuspended(ctx, id, true)
	})
}

func (s *adminService) ReinstateDoctor(ctx context.Context, id uuid.UUID) error {
	return s.setDoctorFlag(ctx, id, "reinstated", func() (bool, error) {
		return s.repo.Doctor.SetSuspended(ctx, id, false)
	})
}

func (s *adminService) VerifyDoctorDocuments(ctx context.Context, id uuid.UUID) error {
	return s.setDoctorFlag(ctx, id, "documents verified", func() (bool, error) {
		return s.repo.Doctor.SetDocumentsVerified(ctx, id, true)
	})
}

func (s *adminService) setDoctorFlag(ctx context.Context, id uuid.UUID, action string, update func() (bool, error)) error {
	found, err := update()
	if err != nil {
		return apperr.NewInternal("Failed to update doctor", err)
	}
	if !found {
		return apperr.NewNotFound("Doctor not found")
	}

	s.log.Info("Doctor "+action, zap.String("doctor_id", id.String()))
	return nil
}

// ==================== PATIENT MODERATION ====================

func (s *adminService) ListPatients(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PatientListItem], error) {
	patients, err := s.repo.Patient.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperr.NewInternal("Failed to get patients", err)
	}

	total, err := s.repo.Patient.CountAll(ctx)
	if err != nil {
		return nil, apperr.NewInternal("Failed to count patients", err)
	}

	items := make([]response.PatientListItem, len(patients))
	for i, patient := range patients {
		items[i] = response.PatientToListItem(patient)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) ViewPatient(ctx context.Context, id uuid.UUID) (*response.PatientResponse, error) {
	patient, err := s.repo.Patient.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NewInternal("Failed to get patient", err)
	}
	if patient == nil {
		return nil, apperr.NewNotFound("Patient not found")
	}

	return response.PatientToResponse(patient), nil
}

func (s *adminService) ActivatePatient(ctx context.Context, id uuid.UUID) error {
	return s.setPatientActive(ctx, id, true)
}

func (s *adminService) DeactivatePatient(ctx context.Context, id uuid.UUID) error {
	return s.setPatientActive(ctx, id, false)
}

func (s *adminService) setPatientActive(ctx context.Context, id uuid.UUID, active bool) error {
	found, err := s.repo.Patient.SetActive(ctx, id, active)
	if err != nil {
		return apperr.NewInternal("Failed to update patient", err)
	}
	if !found {
		return apperr.NewNotFound("Patient not found")
	}

	s.log.Info("Patient activation updated",
		zap.String("patient_id", id.String()),
		zap.Bool("is_active", active))
	return nil
}
