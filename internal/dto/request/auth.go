package request

// DoctorRegisterRequest mirrors the doctors intake form. Optional fields
// stay pointers so absent JSON keys are distinguishable from empty values.
type DoctorRegisterRequest struct {
	FullName           string  `json:"full_name" validate:"required,min=2,max=100"`
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required,min=6"`
	Mobile             string  `json:"mobile" validate:"required,min=7,max=15"`
	Gender             string  `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Location           string  `json:"location" validate:"required"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	Council            string  `json:"council" validate:"required"`
	Degree             string  `json:"degree" validate:"required"`
	Specialty          string  `json:"specialty" validate:"required"`
	Experience         string  `json:"experience" validate:"required"`
	ClinicName         string  `json:"clinic_name" validate:"required"`
	ClinicAddress      string  `json:"clinic_address" validate:"required"`
	ProfilePhoto       *string `json:"profile_photo,omitempty"`
	DOB                *string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup         *string `json:"blood_group,omitempty"`
	AvailableDays      *string `json:"available_days,omitempty"`
	AvailableFrom      *string `json:"available_from,omitempty"`
	AvailableTo        *string `json:"available_to,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	ZipCode            *string `json:"zip_code,omitempty"`
	Languages          *string `json:"languages,omitempty"`
	Documents          *string `json:"documents,omitempty"`
}

type PatientRegisterRequest struct {
	FullName         string  `json:"fullName" validate:"required,min=1,max=100"`
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=6"`
	Mobile           string  `json:"mobile" validate:"required,min=1,max=15"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender           *string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodGroup       *string `json:"bloodGroup,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminCreateRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN SUPER_ADMIN"`
}
