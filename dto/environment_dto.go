package dto

// EnvironmentRequest is the structure for environment creation/update requests
type EnvironmentRequest struct {
	Name      string `json:"nome" binding:"required"`
	Category  string `json:"categoria" binding:"required"`
	ProjectID string `json:"projeto" binding:"required"`
}
