package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"doctor-appointment/internal/apperr"
	"doctor-appointment/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatientRegister() *request.PatientRegisterRequest {
	return &request.PatientRegisterRequest{
		FullName: "A",
		Email:    "a@x.com",
		Password: "secret1",
		Mobile:   "1",
	}
}

func newPatientService(repo *fakePatientRepo) PatientService {
	return NewPatientService(repo, newTestTokens(), testLogger())
}

func TestPatientRegister_Succeeds(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newPatientService(repo)

	resp, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.Account.Email)
	assert.Equal(t, "A", resp.Account.FullName)

	// Stored account is active with a hashed password
	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestPatientRegister_ResponseNeverContainsPassword(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	resp, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret1")
}

func TestPatientRegister_DuplicateEmail(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	_, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validPatientRegister())
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicate, apperr.From(err).Kind)
}

func TestPatientRegister_EmailLowercased(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newPatientService(repo)

	req := validPatientRegister()
	req.Email = "A@X.COM"

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.Account.Email)
}

func TestPatientRegister_ValidationFails(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	req := validPatientRegister()
	req.Password = "short" // below 6 chars

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestPatientLogin_WrongPassword(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	_, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestPatientLogin_UnknownEmail(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestPatientLogin_DeactivatedAccount(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newPatientService(repo)

	resp, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	id := uuid.MustParse(resp.Account.ID)
	found, err := repo.SetActive(context.Background(), id, false)
	require.NoError(t, err)
	require.True(t, found)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
}

func TestPatientLogin_Succeeds(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	_, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestPatientLogoutRevokesToken(t *testing.T) {
	repo := newFakePatientRepo()
	tokens := newTestTokens()
	svc := NewPatientService(repo, tokens, testLogger())

	resp, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = tokens.Verify(context.Background(), resp.Token)
	assert.Error(t, err)
}

func TestPatientGetProfile_NotFound(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestPatientGetProfile_ExcludesHash(t *testing.T) {
	svc := newPatientService(newFakePatientRepo())

	created, err := svc.Register(context.Background(), validPatientRegister())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), uuid.MustParse(created.Account.ID))
	require.NoError(t, err)

	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}
