package dto

// MaterialFilter narrows material listings
type MaterialFilter struct {
	EnvironmentID string
	ProjectID     string
	PageRequest
}

// CreateMaterialRequest creates a material under an environment
type CreateMaterialRequest struct {
	EnvironmentID string `json:"ambiente" binding:"required"`
	Item          string `json:"item" binding:"required"`
	Description   string `json:"descricao" binding:"required"`
}

// UpdateMaterialRequest is a partial material update. Setting Status back to
// PENDENTE clears the rejection reason and approval stamp.
type UpdateMaterialRequest struct {
	Item        *string `json:"item"`
	Description *string `json:"descricao"`
	Status      *string `json:"status"`
	Reason      *string `json:"motivo"`
}
