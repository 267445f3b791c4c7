package services

import (
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"gorm.io/gorm"
)

// BrandService manages brand mappings
type BrandService struct {
	brandRepo   *repositories.BrandRepository
	projectRepo *repositories.ProjectRepository
}

// NewBrandService creates a new brand service instance
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{
		brandRepo:   repositories.NewBrandRepository(db),
		projectRepo: repositories.NewProjectRepository(db),
	}
}

// ListBrands retrieves a page of brand mappings
func (s *BrandService) ListBrands(projectID string, page dto.PageRequest) ([]models.BrandMapping, int64, error) {
	return s.brandRepo.FindPage(projectID, page)
}

// CreateBrand creates a single brand mapping
func (s *BrandService) CreateBrand(req dto.BrandRequest) (models.BrandMapping, error) {
	brand, err := s.build(req)
	if err != nil {
		return models.BrandMapping{}, err
	}
	if err := s.checkProject(req.ProjectID); err != nil {
		return models.BrandMapping{}, err
	}
	if err := s.brandRepo.Create(&brand); err != nil {
		return models.BrandMapping{}, err
	}
	return brand, nil
}

// PatchBrand updates the material name and/or brand list
func (s *BrandService) PatchBrand(id string, req dto.BrandPatchRequest) (models.BrandMapping, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		return models.BrandMapping{}, notFound(err, "brand mapping")
	}
	if req.Material != nil {
		if strings.TrimSpace(*req.Material) == "" {
			return models.BrandMapping{}, validationf("material cannot be empty")
		}
		brand.Material = strings.TrimSpace(*req.Material)
	}
	if req.Brands != nil {
		list := NormalizeBrands(*req.Brands)
		if list == "" {
			return models.BrandMapping{}, validationf("at least one brand is required")
		}
		brand.Brands = list
	}
	if err := s.brandRepo.Update(&brand); err != nil {
		return models.BrandMapping{}, err
	}
	return brand, nil
}

// DeleteBrand removes a brand mapping
func (s *BrandService) DeleteBrand(id string) error {
	return notFound(s.brandRepo.Delete(id), "brand mapping")
}

// SaveBrands upserts all rows of a project by material name
func (s *BrandService) SaveBrands(req dto.SaveBrandsRequest) ([]models.BrandMapping, error) {
	if err := s.checkProject(req.ProjectID); err != nil {
		return nil, err
	}
	rows := make([]models.BrandMapping, 0, len(req.Rows))
	seen := make(map[string]bool, len(req.Rows))
	for _, r := range req.Rows {
		row, err := s.build(r)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(row.Material)
		if seen[key] {
			return nil, validationf("material %q appears more than once", row.Material)
		}
		seen[key] = true
		rows = append(rows, row)
	}
	return s.brandRepo.Upsert(req.ProjectID, rows)
}

func (s *BrandService) build(req dto.BrandRequest) (models.BrandMapping, error) {
	material := strings.TrimSpace(req.Material)
	if material == "" {
		return models.BrandMapping{}, validationf("material is required")
	}
	list := NormalizeBrands(req.Brands)
	if list == "" {
		return models.BrandMapping{}, validationf("at least one brand is required for %q", material)
	}
	return models.BrandMapping{Material: material, Brands: list, ProjectID: req.ProjectID}, nil
}

func (s *BrandService) checkProject(projectID *string) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectRepo.FindByID(*projectID); err != nil {
		return notFound(err, "project")
	}
	return nil
}

// NormalizeBrands trims every comma separated brand, drops empty and
// duplicate entries and joins them with ", ".
func NormalizeBrands(list string) string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[strings.ToLower(p)] {
			continue
		}
		seen[strings.ToLower(p)] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}
