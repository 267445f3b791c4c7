package services

import (
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// monthsInReport is the number of calendar months covered by MonthlyStats.
const monthsInReport = 12

// StatsService computes dashboard counters
type StatsService struct {
	projectRepo  *repositories.ProjectRepository
	materialRepo *repositories.MaterialRepository
	now          func() time.Time
}

// NewStatsService creates a new stats service instance
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		projectRepo:  repositories.NewProjectRepository(db),
		materialRepo: repositories.NewMaterialRepository(db),
		now:          time.Now,
	}
}

// Dashboard counts projects and materials per status. The eight counts run
// concurrently.
func (s *StatsService) Dashboard() (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	var g errgroup.Group

	count := func(dst *int64, fn func(string) (int64, error), status string) {
		g.Go(func() error {
			n, err := fn(status)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.TotalProjects, s.projectRepo.CountByStatus, "")
	count(&stats.PendingProjects, s.projectRepo.CountByStatus, models.StatusPending)
	count(&stats.ApprovedProjects, s.projectRepo.CountByStatus, models.StatusApproved)
	count(&stats.RejectedProjects, s.projectRepo.CountByStatus, models.StatusRejected)
	count(&stats.TotalMaterials, s.materialRepo.CountByStatus, "")
	count(&stats.PendingMaterials, s.materialRepo.CountByStatus, models.StatusPending)
	count(&stats.ApprovedMaterials, s.materialRepo.CountByStatus, models.StatusApproved)
	count(&stats.RejectedMaterials, s.materialRepo.CountByStatus, models.StatusRejected)

	if err := g.Wait(); err != nil {
		return dto.DashboardStats{}, err
	}
	return stats, nil
}

// Monthly returns projects created per month over the last twelve months
func (s *StatsService) Monthly() ([]dto.MonthlyStats, error) {
	now := s.now().UTC()
	start := firstMonth(now)
	projects, err := s.projectRepo.StatusSince(start)
	if err != nil {
		return nil, err
	}
	return BucketByMonth(projects, now), nil
}

// BucketByMonth groups projects by creation month and status. The result
// always has twelve rows, oldest month first, ending with the month of now.
func BucketByMonth(projects []models.Project, now time.Time) []dto.MonthlyStats {
	start := firstMonth(now.UTC())
	rows := make([]dto.MonthlyStats, monthsInReport)
	index := make(map[string]int, monthsInReport)
	for i := range rows {
		key := start.AddDate(0, i, 0).Format("2006-01")
		rows[i].Month = key
		index[key] = i
	}

	for _, p := range projects {
		i, ok := index[p.CreatedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		switch p.Status {
		case models.StatusPending:
			rows[i].Pending++
		case models.StatusApproved:
			rows[i].Approved++
		case models.StatusRejected:
			rows[i].Rejected++
		}
	}
	return rows
}

func firstMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1-monthsInReport, 0)
}
