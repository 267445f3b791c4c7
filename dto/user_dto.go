package dto

// CreateUserRequest creates a dashboard user
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"nome"`
	IsAdmin  bool    `json:"is_admin"`
}

// UpdateUserRequest is a partial user update
type UpdateUserRequest struct {
	Name     *string `json:"nome"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"ativo"`
}
