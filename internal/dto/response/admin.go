package response

import (
	"time"

	"doctor-appointment/internal/data/entity"
)

type AdminResponse struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func AdminToResponse(admin *entity.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        admin.ID.String(),
		FullName:  admin.FullName,
		Email:     admin.Email,
		Role:      admin.Role,
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt,
	}
}
