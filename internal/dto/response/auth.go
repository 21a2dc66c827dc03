package response

import (
	"time"

	"doctor-appointment/internal/data/entity"
)

// AccountSummary is the short identity block returned next to a fresh token.
type AccountSummary struct {
	ID       string      `json:"id"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Mobile   string      `json:"mobile,omitempty"`
	Role     entity.Role `json:"role"`
}

type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Account   AccountSummary `json:"account"`
}

func DoctorAuthResponse(doctor *entity.Doctor, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account: AccountSummary{
			ID:       doctor.ID.String(),
			FullName: doctor.FullName,
			Email:    doctor.Email,
			Mobile:   doctor.Mobile,
			Role:     doctor.Role,
		},
	}
}

func PatientAuthResponse(patient *entity.Patient, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account: AccountSummary{
			ID:       patient.ID.String(),
			FullName: patient.FullName,
			Email:    patient.Email,
			Mobile:   patient.Mobile,
			Role:     patient.Role,
		},
	}
}

func AdminAuthResponse(admin *entity.Admin, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account: AccountSummary{
			ID:       admin.ID.String(),
			FullName: admin.FullName,
			Email:    admin.Email,
			Role:     admin.Role,
		},
	}
}
