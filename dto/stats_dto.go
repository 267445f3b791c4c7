package dto

// DashboardStats is the body of GET /api/stats/dashboard/
type DashboardStats struct {
	TotalProjects     int64 `json:"total_projetos"`
	PendingProjects   int64 `json:"projetos_pendentes"`
	ApprovedProjects  int64 `json:"projetos_aprovados"`
	RejectedProjects  int64 `json:"projetos_reprovados"`
	TotalMaterials    int64 `json:"total_materiais"`
	PendingMaterials  int64 `json:"materiais_pendentes"`
	ApprovedMaterials int64 `json:"materiais_aprovados"`
	RejectedMaterials int64 `json:"materiais_reprovados"`
}

// MonthlyStats is one row of GET /api/stats/mensais/
type MonthlyStats struct {
	Month    string `json:"mes"`
	Pending  int64  `json:"pendentes"`
	Approved int64  `json:"aprovados"`
	Rejected int64  `json:"reprovados"`
}
