package entity

type Admin struct {
	Base
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
	IsActive     bool   `db:"is_active"`
}
