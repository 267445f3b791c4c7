package dto

// Draft holds the unsaved item → description selections of an environment
type Draft struct {
	EnvironmentID string            `json:"ambiente"`
	Selections    map[string]string `json:"selecoes"`
}
