package dto

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	Status string
	PageRequest
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name         string `json:"nome" binding:"required"`
	Type         string `json:"tipo" binding:"required"`
	Responsible  string `json:"responsavel" binding:"required"`
	CreatedOn    string `json:"data_criacao"`
	DeliveryOn   string `json:"data_entrega" binding:"required"`
	Description  string `json:"descricao"`
	GeneralNotes string `json:"observacoes_gerais"`
}

// UpdateProjectRequest is a partial update; nil fields are left unchanged
type UpdateProjectRequest struct {
	Name         *string `json:"nome"`
	Type         *string `json:"tipo"`
	Responsible  *string `json:"responsavel"`
	DeliveryOn   *string `json:"data_entrega"`
	Description  *string `json:"descricao"`
	GeneralNotes *string `json:"observacoes_gerais"`
	Status       *string `json:"status"`
}

// DecisionRequest carries the optional reason of an approve/reject action
type DecisionRequest struct {
	Reason string `json:"motivo"`
}
