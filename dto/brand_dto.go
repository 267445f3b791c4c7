package dto

// BrandRequest creates or updates a brand mapping
type BrandRequest struct {
	Material  string  `json:"material" binding:"required"`
	Brands    string  `json:"marcas" binding:"required"`
	ProjectID *string `json:"projeto"`
}

// BrandPatchRequest is a partial brand mapping update
type BrandPatchRequest struct {
	Material *string `json:"material"`
	Brands   *string `json:"marcas"`
}

// SaveBrandsRequest upserts the rows of a project by material name
type SaveBrandsRequest struct {
	ProjectID *string        `json:"projeto"`
	Rows      []BrandRequest `json:"linhas" binding:"required,dive"`
}
