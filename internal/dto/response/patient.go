package response

import (
	"time"

	"doctor-appointment/internal/data/entity"
)

type PatientResponse struct {
	ID               string      `json:"id"`
	FullName         string      `json:"full_name"`
	Email            string      `json:"email"`
	Mobile           string      `json:"mobile"`
	DateOfBirth      *string     `json:"date_of_birth,omitempty"`
	Gender           *string     `json:"gender,omitempty"`
	BloodGroup       *string     `json:"blood_group,omitempty"`
	Address          *string     `json:"address,omitempty"`
	EmergencyContact *string     `json:"emergency_contact,omitempty"`
	Role             entity.Role `json:"role"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
}

// PatientListItem matches the columns the admin listing exposes.
type PatientListItem struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	IsActive bool   `json:"is_active"`
}

func PatientToResponse(patient *entity.Patient) *PatientResponse {
	var dob *string
	if patient.DateOfBirth != nil {
		formatted := patient.DateOfBirth.Format("2006-01-02")
		dob = &formatted
	}

	return &PatientResponse{
		ID:               patient.ID.String(),
		FullName:         patient.FullName,
		Email:            patient.Email,
		Mobile:           patient.Mobile,
		DateOfBirth:      dob,
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		Role:             patient.Role,
		IsActive:         patient.IsActive,
		CreatedAt:        patient.CreatedAt,
	}
}

func PatientToListItem(patient *entity.Patient) PatientListItem {
	return PatientListItem{
		ID:       patient.ID.String(),
		FullName: patient.FullName,
		Email:    patient.Email,
		Mobile:   patient.Mobile,
		IsActive: patient.IsActive,
	}
}
