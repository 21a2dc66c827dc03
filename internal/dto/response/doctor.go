package response

import (
	"time"

	"doctor-appointment/internal/data/entity"
)

// DoctorResponse is the public projection of a doctor record. The password
// hash never leaves the repository layer.
type DoctorResponse struct {
	ID                 string      `json:"id"`
	FullName           string      `json:"full_name"`
	Email              string      `json:"email"`
	Mobile             string      `json:"mobile"`
	Gender             string      `json:"gender"`
	Location           string      `json:"location"`
	RegistrationNumber string      `json:"registration_number"`
	Council            string      `json:"council"`
	Degree             string      `json:"degree"`
	Specialty          string      `json:"specialty"`
	Experience         string      `json:"experience"`
	ClinicName         string      `json:"clinic_name"`
	ClinicAddress      string      `json:"clinic_address"`
	ProfilePhoto       *string     `json:"profile_photo,omitempty"`
	DOB                *string     `json:"dob,omitempty"`
	BloodGroup         *string     `json:"blood_group,omitempty"`
	AvailableDays      *string     `json:"available_days,omitempty"`
	AvailableFrom      *string     `json:"available_from,omitempty"`
	AvailableTo        *string     `json:"available_to,omitempty"`
	City               *string     `json:"city,omitempty"`
	State              *string     `json:"state,omitempty"`
	ZipCode            *string     `json:"zip_code,omitempty"`
	Languages          *string     `json:"languages,omitempty"`
	Documents          *string     `json:"documents,omitempty"`
	Role               entity.Role `json:"role"`
	Approved           bool        `json:"approved"`
	Suspended          bool        `json:"suspended"`
	DocumentsVerified  bool        `json:"documents_verified"`
	CreatedAt          time.Time   `json:"created_at"`
}

// DoctorListItem matches the columns the admin listing exposes.
type DoctorListItem struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Approved          bool   `json:"approved"`
	Suspended         bool   `json:"suspended"`
	DocumentsVerified bool   `json:"documents_verified"`
}

func DoctorToResponse(doctor *entity.Doctor) *DoctorResponse {
	var dob *string
	if doctor.DOB != nil {
		formatted := doctor.DOB.Format("2006-01-02")
		dob = &formatted
	}

	return &DoctorResponse{
		ID:                 doctor.ID.String(),
		FullName:           doctor.FullName,
		Email:              doctor.Email,
		Mobile:             doctor.Mobile,
		Gender:             doctor.Gender,
		Location:           doctor.Location,
		RegistrationNumber: doctor.RegistrationNumber,
		Council:            doctor.Council,
		Degree:             doctor.Degree,
		Specialty:          doctor.Specialty,
		Experience:         doctor.Experience,
		ClinicName:         doctor.ClinicName,
		ClinicAddress:      doctor.ClinicAddress,
		ProfilePhoto:       doctor.ProfilePhoto,
		DOB:                dob,
		BloodGroup:         doctor.BloodGroup,
		AvailableDays:      doctor.AvailableDays,
		AvailableFrom:      doctor.AvailableFrom,
		AvailableTo:        doctor.AvailableTo,
		City:               doctor.City,
		State:              doctor.State,
		ZipCode:            doctor.ZipCode,
		Languages:          doctor.Languages,
		Documents:          doctor.Documents,
		Role:               doctor.Role,
		Approved:           doctor.Approved,
		Suspended:          doctor.Suspended,
		DocumentsVerified:  doctor.DocumentsVerified,
		CreatedAt:          doctor.CreatedAt,
	}
}

func DoctorToListItem(doctor *entity.Doctor) DoctorListItem {
	return DoctorListItem{
		ID:                doctor.ID.String(),
		FullName:          doctor.FullName,
		Email:             doctor.Email,
		Approved:          doctor.Approved,
		Suspended:         doctor.Suspended,
		DocumentsVerified: doctor.DocumentsVerified,
	}
}
