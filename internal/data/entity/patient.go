package entity

import "time"

type Patient struct {
	Base
	FullName         string     `db:"full_name"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password"`
	Mobile           string     `db:"mobile"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Gender           *string    `db:"gender"`
	BloodGroup       *string    `db:"blood_group"`
	Address          *string    `db:"address"`
	EmergencyContact *string    `db:"emergency_contact"`
	Role             Role       `db:"role"`
	IsActive         bool       `db:"is_active"`
}
