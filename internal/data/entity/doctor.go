package entity

import "time"

type Doctor struct {
	Base
	FullName           string  `db:"full_name"`
	Email              string  `db:"email"`
	PasswordHash       string  `db:"password"`
	Mobile             string  `db:"mobile"`
	Gender             string  `db:"gender"`
	Location           string  `db:"location"`
	RegistrationNumber string  `db:"registration_number"`
	Council            string  `db:"council"`
	Degree             string  `db:"degree"`
	Specialty          string  `db:"specialty"`
	Experience         string  `db:"experience"`
	ClinicName         string  `db:"clinic_name"`
	ClinicAddress      string  `db:"clinic_address"`
	ProfilePhoto       *string `db:"profile_photo"`
	DOB                *time.Time `db:"dob"`
	BloodGroup         *string `db:"blood_group"`
	AvailableDays      *string `db:"available_days"`
	AvailableFrom      *string `db:"available_from"`
	AvailableTo        *string `db:"available_to"`
	City               *string `db:"city"`
	State              *string `db:"state"`
	ZipCode            *string `db:"zip_code"`
	Languages          *string `db:"languages"`
	Documents          *string `db:"documents"`
	Role               Role    `db:"role"`

	// Moderation flags, admin-controlled.
	Approved          bool `db:"approved"`
	Suspended         bool `db:"suspended"`
	DocumentsVerified bool `db:"documents_verified"`
}
