package services

import (
	"testing"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/dto"
	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/Fernandolass/frontend-lab-eng-sub000/repositories"
	"github.com/Fernandolass/frontend-lab-eng-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type decisionFixture struct {
	db        *gorm.DB
	actor     Actor
	projects  *ProjectService
	materials *MaterialService
	project   models.Project
	material  models.Material
}

func newDecisionFixture(t *testing.T) *decisionFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)

	user := models.User{Email: "admin@example.com", Password: "x", Role: models.RoleAdmin, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	actor := Actor{UserID: user.ID, Email: user.Email, Role: string(user.Role)}

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	projects := NewProjectService(db, zap.NewNop())
	projects.now = func() time.Time { return now }
	materials := NewMaterialService(db, zap.NewNop())
	materials.now = func() time.Time { return now }

	project, err := projects.CreateProject(actor, dto.CreateProjectRequest{
		Name:        "Residencial Aurora",
		Type:        models.ProjectTypeResidential,
		Responsible: "Ana",
		DeliveryOn:  "2024-12-01",
	})
	require.NoError(t, err)

	env, err := NewEnvironmentService(db).CreateEnvironment(dto.EnvironmentRequest{
		Name:      "Sala",
		Category:  models.CategoryPrivateUnit,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	material, err := materials.CreateMaterial(dto.CreateMaterialRequest{
		EnvironmentID: env.ID,
		Item:          "Piso",
		Description:   "Porcelanato 60x60",
	})
	require.NoError(t, err)

	return &decisionFixture{
		db:        db,
		actor:     actor,
		projects:  projects,
		materials: materials,
		project:   project,
		material:  material,
	}
}

func (f *decisionFixture) logs(t *testing.T, action string) []models.LogEntry {
	t.Helper()
	all, err := repositories.NewLogRepository(f.db).FindAll()
	require.NoError(t, err)
	var out []models.LogEntry
	for _, e := range all {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

func TestDecideMaterialApprovesOnce(t *testing.T) {
	f := newDecisionFixture(t)

	m, err := f.materials.DecideMaterial(f.actor, f.material.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, m.Status)
	require.NotNil(t, m.ApprovedBy)
	assert.Equal(t, f.actor.Email, *m.ApprovedBy)
	assert.NotNil(t, m.ApprovedAt)
	assert.Nil(t, m.Reason)

	_, err = f.materials.DecideMaterial(f.actor, f.material.ID, false, "cor errada")
	assert.ErrorIs(t, err, ErrConflict, "a decided material cannot be decided again")

	stored, err := f.materials.GetMaterial(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	entries := f.logs(t, models.ActionMaterialApproved)
	require.Len(t, entries, 1)
	assert.Equal(t, "Residencial Aurora", entries[0].ProjectName)
	assert.Equal(t, f.actor.Email, entries[0].UserEmail)
	assert.Empty(t, f.logs(t, models.ActionMaterialRejected))
}

func TestRejectMaterialRequiresReason(t *testing.T) {
	f := newDecisionFixture(t)

	_, err := f.materials.DecideMaterial(f.actor, f.material.ID, false, "  ")
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := f.materials.GetMaterial(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status, "a failed rejection leaves the material pending")
	assert.Empty(t, f.logs(t, models.ActionMaterialRejected))

	m, err := f.materials.DecideMaterial(f.actor, f.material.ID, false, "cor errada")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, m.Status)
	require.NotNil(t, m.Reason)
	assert.Equal(t, "cor errada", *m.Reason)

	entries := f.logs(t, models.ActionMaterialRejected)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Reason)
	assert.Equal(t, "cor errada", *entries[0].Reason)
}

func TestDecideMissingMaterial(t *testing.T) {
	f := newDecisionFixture(t)

	_, err := f.materials.DecideMaterial(f.actor, "00000000-0000-0000-0000-000000000000", true, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResubmitMaterialClearsDecision(t *testing.T) {
	f := newDecisionFixture(t)

	_, err := f.materials.DecideMaterial(f.actor, f.material.ID, false, "cor errada")
	require.NoError(t, err)

	_, err = f.materials.UpdateMaterial(f.actor, f.material.ID, dto.UpdateMaterialRequest{Status: strPtr(models.StatusApproved)})
	assert.ErrorIs(t, err, ErrValidation, "approval only goes through the decision action")

	m, err := f.materials.UpdateMaterial(f.actor, f.material.ID, dto.UpdateMaterialRequest{
		Description: strPtr("Porcelanato 90x90"),
		Status:      strPtr("pendente"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, m.Status)
	assert.Equal(t, "Porcelanato 90x90", m.Description)

	stored, err := f.materials.GetMaterial(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Nil(t, stored.Reason)
	assert.Nil(t, stored.ApprovedBy)
	assert.Nil(t, stored.ApprovedAt)

	require.Len(t, f.logs(t, models.ActionMaterialResubmitted), 1)

	_, err = f.materials.DecideMaterial(f.actor, f.material.ID, true, "")
	assert.NoError(t, err, "a resubmitted material can be decided again")
}

func TestDecideProjectApprovesOnce(t *testing.T) {
	f := newDecisionFixture(t)

	p, err := f.projects.DecideProject(f.actor, f.project.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, p.Status)

	_, err = f.projects.DecideProject(f.actor, f.project.ID, false, "prazo")
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := f.projects.GetProject(f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	require.Len(t, f.logs(t, models.ActionProjectCreated), 1)
	require.Len(t, f.logs(t, models.ActionProjectApproved), 1)
	assert.Empty(t, f.logs(t, models.ActionProjectRejected))
}

func TestResubmitRejectedProject(t *testing.T) {
	f := newDecisionFixture(t)

	_, err := f.projects.DecideProject(f.actor, f.project.ID, false, "prazo curto")
	require.NoError(t, err)
	rejected := f.logs(t, models.ActionProjectRejected)
	require.Len(t, rejected, 1)
	require.NotNil(t, rejected[0].Reason)
	assert.Equal(t, "prazo curto", *rejected[0].Reason)

	_, err = f.projects.UpdateProject(f.actor, f.project.ID, dto.UpdateProjectRequest{Status: strPtr(models.StatusApproved)})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.projects.UpdateProject(f.actor, f.project.ID, dto.UpdateProjectRequest{Status: strPtr("ARQUIVADO")})
	assert.ErrorIs(t, err, ErrValidation)

	p, err := f.projects.UpdateProject(f.actor, f.project.ID, dto.UpdateProjectRequest{
		Responsible: strPtr("Bruno"),
		Status:      strPtr(models.StatusPending),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, p.Status)
	assert.Equal(t, "Bruno", p.Responsible)
	require.Len(t, f.logs(t, models.ActionProjectResubmitted), 1)

	p, err = f.projects.UpdateProject(f.actor, f.project.ID, dto.UpdateProjectRequest{Name: strPtr("Residencial Aurora II")})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, p.Status)
	assert.Len(t, f.logs(t, models.ActionProjectResubmitted), 1, "edits to a pending project are not resubmissions")

	_, err = f.projects.DecideProject(f.actor, f.project.ID, true, "")
	assert.NoError(t, err)
}
