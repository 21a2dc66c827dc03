package usecase

import (
	"context"
	"time"

	"doctor-appointment/internal/data/entity"
	"doctor-appointment/internal/data/repository"
	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests.

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*entity.Doctor)}
}

func (f *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	for _, d := range f.doctors {
		if d.Email == doctor.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *doctor
	f.doctors[doctor.ID] = &copied
	return nil
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if d, ok := f.doctors[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByEmail(_ context.Context, email string) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Doctor, error) {
	var all []*entity.Doctor
	for _, d := range f.doctors {
		copied := *d
		all = append(all, &copied)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeDoctorRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.doctors)), nil
}

func (f *fakeDoctorRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) (bool, error) {
	d, ok := f.doctors[id]
	if !ok {
		return false, nil
	}
	d.Approved = approved
	return true, nil
}

func (f *fakeDoctorRepo) SetSuspended(_ context.Context, id uuid.UUID, suspended bool) (bool, error) {
	d, ok := f.doctors[id]
	if !ok {
		return false, nil
	}
	d.Suspended = suspended
	return true, nil
}

func (f *fakeDoctorRepo) SetDocumentsVerified(_ context.Context, id uuid.UUID, verified bool) (bool, error) {
	d, ok := f.doctors[id]
	if !ok {
		return false, nil
	}
	d.DocumentsVerified = verified
	return true, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (f *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	for _, p := range f.patients {
		if p.Email == patient.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *patient
	f.patients[patient.ID] = &copied
	return nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	if p, ok := f.patients[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByEmail(_ context.Context, email string) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Patient, error) {
	var all []*entity.Patient
	for _, p := range f.patients {
		copied := *p
		all = append(all, &copied)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakePatientRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

func (f *fakePatientRepo) SetActive(_ context.Context, id uuid.UUID, active bool) (bool, error) {
	p, ok := f.patients[id]
	if !ok {
		return false, nil
	}
	p.IsActive = active
	return true, nil
}

type fakeAdminRepo struct {
	admins map[uuid.UUID]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*entity.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *admin
	f.admins[admin.ID] = &copied
	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	if a, ok := f.admins[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

// ==================== SHARED TEST HELPERS ====================

func newTestTokens() *token.Manager {
	return token.NewManager("test-secret", time.Hour, token.NewMemoryRevocationStore())
}

func mustHash(password string) string {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
