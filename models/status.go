package models

// Approval status values stored for projects and materials.
const (
	StatusPending  = "PENDENTE"
	StatusApproved = "APROVADO"
	StatusRejected = "REPROVADO"
)

// Project types.
const (
	ProjectTypeResidential = "RESIDENCIAL"
	ProjectTypeCommercial  = "COMERCIAL"
	ProjectTypeIndustrial  = "INDUSTRIAL"
)

// Environment categories.
const (
	CategoryPrivateUnit  = "UNIDADE_PRIVATIVA"
	CategoryCommonArea   = "AREA_COMUM"
	CategoryExternalArea = "AREA_EXTERNA"
)

// Log actions recorded by the backend.
const (
	ActionProjectCreated      = "PROJETO_CRIADO"
	ActionProjectApproved     = "PROJETO_APROVADO"
	ActionProjectRejected     = "PROJETO_REPROVADO"
	ActionProjectResubmitted  = "PROJETO_REENVIADO"
	ActionMaterialApproved    = "MATERIAL_APROVADO"
	ActionMaterialRejected    = "MATERIAL_REPROVADO"
	ActionMaterialResubmitted = "MATERIAL_REENVIADO"
)
