package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctor-appointment/internal/apperr"
	"doctor-appointment/internal/dto/request"
	"doctor-appointment/internal/dto/response"
	"doctor-appointment/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPatientService lets each test pin the service outcome.
type stubPatientService struct {
	registerResp *response.AuthResponse
	registerErr  error
	loginResp    *response.AuthResponse
	loginErr     error
	logoutErr    error
	profileResp  *response.PatientResponse
	profileErr   error
}

func (s *stubPatientService) Register(context.Context, *request.PatientRegisterRequest) (*response.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubPatientService) Login(context.Context, *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubPatientService) Logout(context.Context, string) error {
	return s.logoutErr
}

func (s *stubPatientService) GetProfile(context.Context, uuid.UUID) (*response.PatientResponse, error) {
	return s.profileResp, s.profileErr
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestPatientRegister_Created(t *testing.T) {
	stub := &stubPatientService{
		registerResp: &response.AuthResponse{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	handler := NewPatientHandler(stub, zap.NewNop())

	body := `{"fullName":"A","email":"a@x.com","password":"secret1","mobile":"1"}`
	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/api/patient/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, "Registered successfully", envelope.Message)
}

func TestPatientRegister_MalformedJSON(t *testing.T) {
	handler := NewPatientHandler(&stubPatientService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/api/patient/register", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Status)
}

func TestPatientRegister_ValidationErrorsInEnvelope(t *testing.T) {
	handler := NewPatientHandler(&stubPatientService{}, zap.NewNop())

	body := `{"fullName":"A","email":"not-an-email","password":"secret1","mobile":"1"}`
	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/api/patient/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation failed", envelope.Message)
	assert.NotNil(t, envelope.Errors)
}

func TestPatientRegister_DuplicateMapsToConflict(t *testing.T) {
	stub := &stubPatientService{registerErr: apperr.NewDuplicate("Email already registered")}
	handler := NewPatientHandler(stub, zap.NewNop())

	body := `{"fullName":"A","email":"a@x.com","password":"secret1","mobile":"1"}`
	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/api/patient/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", decodeEnvelope(t, rec).Message)
}

func TestPatientLogin_UnauthorizedMessageSurfaces(t *testing.T) {
	stub := &stubPatientService{loginErr: apperr.NewUnauthorized("Invalid email or password")}
	handler := NewPatientHandler(stub, zap.NewNop())

	body := `{"email":"a@x.com","password":"wrong"}`
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/patient/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, rec).Message)
}

func TestPatientLogin_InternalErrorIsGeneric(t *testing.T) {
	stub := &stubPatientService{loginErr: apperr.NewInternal("Failed to find patient", errors.New("db down"))}
	handler := NewPatientHandler(stub, zap.NewNop())

	body := `{"email":"a@x.com","password":"secret1"}`
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/patient/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestPatientLogout_RequiresTokenInContext(t *testing.T) {
	handler := NewPatientHandler(&stubPatientService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/patient/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPatientLogout_Succeeds(t *testing.T) {
	handler := NewPatientHandler(&stubPatientService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/patient/logout", nil)
	req = req.WithContext(utils.SetTokenContext(req.Context(), "signed-token"))

	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPatientGetProfile(t *testing.T) {
	accountID := uuid.New()
	stub := &stubPatientService{
		profileResp: &response.PatientResponse{
			ID:       accountID.String(),
			FullName: "A",
			Email:    "a@x.com",
			IsActive: true,
		},
	}
	handler := NewPatientHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/profile", nil)
	req = req.WithContext(utils.SetAccountContext(req.Context(), accountID, "PATIENT"))

	rec := httptest.NewRecorder()
	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

func TestPatientGetProfile_NotFound(t *testing.T) {
	stub := &stubPatientService{profileErr: apperr.NewNotFound("Patient not found")}
	handler := NewPatientHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/patient/profile", nil)
	req = req.WithContext(utils.SetAccountContext(req.Context(), uuid.New(), "PATIENT"))

	rec := httptest.NewRecorder()
	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", decodeEnvelope(t, rec).Message)
}
