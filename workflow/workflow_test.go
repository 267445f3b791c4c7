package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Fernandolass/frontend-lab-eng-sub000/client"
	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records every call and answers from an in-memory project
type fakeAPI struct {
	project  domain.Project
	projects []domain.Project
	calls    []string
	failOn   map[string]error
	seq      int
}

func (f *fakeAPI) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failOn[call]
}

func (f *fakeAPI) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeAPI) material(id string) *domain.Material {
	for i := range f.project.Environments {
		for j := range f.project.Environments[i].Materials {
			if f.project.Environments[i].Materials[j].ID == id {
				return &f.project.Environments[i].Materials[j]
			}
		}
	}
	return nil
}

func (f *fakeAPI) GetProject(_ context.Context, id string) (domain.Project, error) {
	if err := f.record("GetProject " + id); err != nil {
		return domain.Project{}, err
	}
	return cloneProject(f.project), nil
}

func (f *fakeAPI) ApproveMaterial(_ context.Context, id string) (domain.Material, error) {
	if err := f.record("ApproveMaterial " + id); err != nil {
		return domain.Material{}, err
	}
	m := f.material(id)
	m.Status = domain.StatusApproved
	m.Reason = ""
	return *m, nil
}

func (f *fakeAPI) RejectMaterial(_ context.Context, id, reason string) (domain.Material, error) {
	if err := f.record("RejectMaterial " + id + " " + reason); err != nil {
		return domain.Material{}, err
	}
	m := f.material(id)
	m.Status = domain.StatusRejected
	m.Reason = reason
	return *m, nil
}

func (f *fakeAPI) ApproveProject(_ context.Context, id string) (domain.Project, error) {
	if err := f.record("ApproveProject " + id); err != nil {
		return domain.Project{}, err
	}
	f.project.Status = domain.StatusApproved
	return f.project, nil
}

func (f *fakeAPI) RejectProject(_ context.Context, id, _ string) (domain.Project, error) {
	if err := f.record("RejectProject " + id); err != nil {
		return domain.Project{}, err
	}
	f.project.Status = domain.StatusRejected
	return f.project, nil
}

func (f *fakeAPI) UpdateMaterial(_ context.Context, id string, patch client.MaterialPatch) (domain.Material, error) {
	if err := f.record("UpdateMaterial " + id); err != nil {
		return domain.Material{}, err
	}
	m := f.material(id)
	if m == nil {
		return domain.Material{ID: id, Description: *patch.Description}, nil
	}
	if patch.Item != nil {
		m.Item = *patch.Item
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Status != nil {
		m.Status = domain.StatusPending
		m.Reason = ""
	}
	return *m, nil
}

func (f *fakeAPI) ResubmitProject(_ context.Context, id string) (domain.Project, error) {
	if err := f.record("ResubmitProject " + id); err != nil {
		return domain.Project{}, err
	}
	f.project.Status = domain.StatusPending
	return f.project, nil
}

func (f *fakeAPI) ListAllProjects(_ context.Context, status *domain.Status) ([]domain.Project, error) {
	f.record("ListAllProjects")
	var out []domain.Project
	for _, p := range f.projects {
		if status == nil || p.Status == *status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAPI) next(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *fakeAPI) CreateProject(_ context.Context, in client.ProjectInput) (domain.Project, error) {
	if err := f.record("CreateProject " + in.Name); err != nil {
		return domain.Project{}, err
	}
	return domain.Project{ID: f.next("p"), Name: in.Name, Type: in.Type}, nil
}

func (f *fakeAPI) CreateEnvironment(_ context.Context, in client.EnvironmentInput) (domain.Environment, error) {
	if err := f.record("CreateEnvironment " + in.Name); err != nil {
		return domain.Environment{}, err
	}
	return domain.Environment{ID: f.next("e"), Name: in.Name, Category: in.Category, ProjectID: in.ProjectID}, nil
}

func (f *fakeAPI) CreateMaterial(_ context.Context, in client.MaterialInput) (domain.Material, error) {
	if err := f.record("CreateMaterial " + in.Item); err != nil {
		return domain.Material{}, err
	}
	return domain.Material{ID: f.next("m"), EnvironmentID: in.EnvironmentID, Item: in.Item, Description: in.Description}, nil
}

func (f *fakeAPI) DeleteEnvironment(_ context.Context, id string) error {
	return f.record("DeleteEnvironment " + id)
}

func projectWith(status domain.Status, materials ...domain.Material) domain.Project {
	for i := range materials {
		materials[i].EnvironmentID = "env1"
	}
	return domain.Project{
		ID:     "p1",
		Name:   "Residencial Aurora",
		Status: status,
		Environments: []domain.Environment{
			{ID: "env1", ProjectID: "p1", Name: "Sala", Materials: materials},
		},
	}
}

func TestApprovalSettlesOnlyWhenNothingPending(t *testing.T) {
	api := &fakeAPI{project: projectWith(domain.StatusPending,
		domain.Material{ID: "m1", Item: "Piso", Status: domain.StatusPending},
		domain.Material{ID: "m2", Item: "Parede", Status: domain.StatusRejected},
		domain.Material{ID: "m3", Item: "Teto", Status: domain.StatusPending},
	)}
	a := NewApproval(api, nil)
	require.NoError(t, a.Load(context.Background(), "p1"))

	out, err := a.ApproveMaterial(context.Background(), "env1", "m1")
	require.NoError(t, err)
	assert.False(t, out.Settled)
	assert.Equal(t, domain.StatusPending, out.Aggregate)
	assert.False(t, out.ProjectChanged)
	assert.Zero(t, api.count("ApproveProject"))
	assert.Zero(t, api.count("RejectProject"))

	out, err = a.ApproveMaterial(context.Background(), "env1", "m3")
	require.NoError(t, err)
	assert.True(t, out.Settled)
	assert.Equal(t, domain.StatusRejected, out.Aggregate)
	assert.True(t, out.ProjectChanged)
	assert.Equal(t, 1, api.count("RejectProject"))
	assert.Zero(t, api.count("ApproveProject"))

	p, ok := a.Project()
	require.True(t, ok)
	assert.Equal(t, domain.StatusRejected, p.Status)
}

func TestApprovalAllApprovedApprovesProject(t *testing.T) {
	api := &fakeAPI{project: projectWith(domain.StatusPending,
		domain.Material{ID: "m1", Status: domain.StatusApproved},
		domain.Material{ID: "m2", Status: domain.StatusPending},
	)}
	a := NewApproval(api, nil)
	require.NoError(t, a.Load(context.Background(), "p1"))

	out, err := a.ApproveMaterial(context.Background(), "env1", "m2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.ProjectStatus)
	assert.Equal(t, 1, api.count("ApproveProject"))
}

func TestApprovalSkipsProjectCallWhenStatusUnchanged(t *testing.T) {
	api := &fakeAPI{project: projectWith(domain.StatusRejected,
		domain.Material{ID: "m1", Status: domain.StatusRejected},
		domain.Material{ID: "m2", Status: domain.StatusPending},
	)}
	a := NewApproval(api, nil)
	require.NoError(t, a.Load(context.Background(), "p1"))

	out, err := a.ApproveMaterial(context.Background(), "env1", "m2")
	require.NoError(t, err)
	assert.True(t, out.Settled)
	assert.False(t, out.ProjectChanged)
	assert.Zero(t, api.count("RejectProject"))
}

func TestApprovalNotes(t *testing.T) {
	api := &fakeAPI{project: projectWith(domain.StatusPending,
		domain.Material{ID: "m1", Status: domain.StatusPending},
		domain.Material{ID: "m2", Status: domain.StatusPending},
		domain.Material{ID: "m3", Status: domain.StatusPending},
	)}
	a := NewApproval(api, nil)
	require.NoError(t, a.Load(context.Background(), "p1"))

	a.SetNote("m1", "cor errada")
	_, err := a.ApproveMaterial(context.Background(), "env1", "m1")
	require.NoError(t, err)
	assert.Empty(t, a.Note("m1"))

	a.SetNote("m2", "fora do padrão")
	out, err := a.RejectMaterial(context.Background(), "env1", "m2")
	require.NoError(t, err)
	assert.Equal(t, "fora do padrão", out.Material.Reason)
	assert.Empty(t, a.Note("m2"))

	_, err = a.RejectMaterial(context.Background(), "env1", "m3")
	require.NoError(t, err)
	assert.Contains(t, api.calls, "RejectMaterial m3 "+DefaultRejectionReason)
}

func TestApprovalErrors(t *testing.T) {
	api := &fakeAPI{project: projectWith(domain.StatusPending,
		domain.Material{ID: "m1", Status: domain.StatusPending},
	)}
	a := NewApproval(api, nil)

	_, err := a.ApproveMaterial(context.Background(), "env1", "m1")
	assert.ErrorIs(t, err, ErrNotLoaded)

	require.NoError(t, a.Load(context.Background(), "p1"))
	_, err = a.ApproveMaterial(context.Background(), "env1", "nope")
	assert.ErrorIs(t, err, ErrUnknownMaterial)

	api.failOn = map[string]error{"ApproveMaterial m1": client.ErrConflict}
	_, err = a.ApproveMaterial(context.Background(), "env1", "m1")
	assert.ErrorIs(t, err, client.ErrConflict)
	p, _ := a.Project()
	assert.Equal(t, domain.StatusPending, p.Environments[0].Materials[0].Status)
}

func TestApprovalCollapsed(t *testing.T) {
	a := NewApproval(&fakeAPI{}, nil)
	assert.False(t, a.Collapsed("env1"))
	assert.True(t, a.ToggleCollapsed("env1"))
	assert.True(t, a.Collapsed("env1"))
	assert.False(t, a.ToggleCollapsed("env1"))
}

func rejectedProject() domain.Project {
	return projectWith(domain.StatusRejected,
		domain.Material{ID: "m1", Item: "Piso", Description: "porcelanato", Status: domain.StatusRejected, Reason: "cor"},
		domain.Material{ID: "m2", Item: "Parede", Description: "pintura", Status: domain.StatusApproved},
		domain.Material{ID: "m3", Item: "Teto", Description: "gesso", Status: domain.StatusRejected, Reason: "altura"},
	)
}

func TestResubmissionSendsMaterialsThenProject(t *testing.T) {
	api := &fakeAPI{project: rejectedProject()}
	r, err := NewResubmission(api, rejectedProject(), nil)
	require.NoError(t, err)

	editable := r.Editable()
	require.Len(t, editable, 2)
	assert.Equal(t, "m1", editable[0].ID)
	assert.Equal(t, "m3", editable[1].ID)

	require.NoError(t, r.SetItem("m1", "  rodapé "))
	require.NoError(t, r.SetDescription("m1", "madeira"))
	require.NoError(t, r.SetDescription("m3", "forro de PVC"))
	assert.ErrorIs(t, r.SetItem("m2", "Piso"), ErrNotEditable)
	assert.ErrorIs(t, r.SetItem("m1", "Escada"), ErrUnknownItem)

	report, err := r.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"UpdateMaterial m1", "UpdateMaterial m3", "ResubmitProject p1"}, api.calls)

	m1 := api.material("m1")
	assert.Equal(t, "Rodapé", m1.Item)
	assert.Equal(t, "madeira", m1.Description)
	assert.Equal(t, domain.StatusPending, m1.Status)
	assert.Empty(t, m1.Reason)
	assert.Equal(t, domain.StatusPending, api.project.Status)
}

func TestResubmissionAbortsAtFirstFailure(t *testing.T) {
	api := &fakeAPI{
		project: rejectedProject(),
		failOn:  map[string]error{"UpdateMaterial m3": client.ErrValidation},
	}
	r, err := NewResubmission(api, rejectedProject(), nil)
	require.NoError(t, err)

	report, err := r.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrValidation)
	var sagaErr *SagaError
	require.ErrorAs(t, err, &sagaErr)
	assert.Equal(t, []string{"material m1"}, report.Completed)
	assert.Equal(t, "material m3", report.Failed)
	assert.Equal(t, []string{"project p1"}, report.Pending)
	assert.Zero(t, api.count("ResubmitProject"))
	// m1 stays resubmitted
	assert.Equal(t, domain.StatusPending, api.material("m1").Status)
}

func TestResubmissionRequiresRejectedProject(t *testing.T) {
	_, err := NewResubmission(&fakeAPI{}, projectWith(domain.StatusPending), nil)
	assert.ErrorIs(t, err, ErrNotRejected)
}

func TestSagaCompensatesInReverse(t *testing.T) {
	var order []string
	saga := NewSaga(nil)
	for _, name := range []string{"a", "b"} {
		name := name
		saga.AddStep(Step{
			Name: name,
			Run:  func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				order = append(order, name)
				return nil
			},
		})
	}
	saga.Add("c", func(context.Context) error { return errors.New("boom") })
	saga.Add("d", func(context.Context) error { return nil })

	report := saga.Run(context.Background())
	assert.False(t, report.OK())
	assert.Equal(t, []string{"a", "b"}, report.Completed)
	assert.Equal(t, "c", report.Failed)
	assert.Equal(t, []string{"d"}, report.Pending)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, []string{"b", "a"}, report.Compensated)
	assert.Contains(t, report.String(), `step "c" failed: boom`)
}

func TestSagaStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	report := NewSaga(nil).Add("a", func(context.Context) error {
		ran = true
		return nil
	}).Run(ctx)
	assert.False(t, ran)
	assert.ErrorIs(t, report.Err, context.Canceled)
}

func TestListerView(t *testing.T) {
	api := &fakeAPI{projects: []domain.Project{
		{ID: "1", Name: "Aurora", Responsible: "Ana", Status: domain.StatusPending},
		{ID: "2", Name: "Boreal", Responsible: "Bruno", Status: domain.StatusApproved},
		{ID: "3", Name: "Cedro", Responsible: "Ana Paula", Status: domain.StatusPending},
		{ID: "4", Name: "Duna", Responsible: "Carlos", Status: domain.StatusPending},
	}}
	l := NewLister(api, 2)
	pending := domain.StatusPending

	view, err := l.View(context.Background(), &pending, "", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 2, view.Pages)
	require.Len(t, view.Projects, 1)
	assert.Equal(t, "4", view.Projects[0].ID)

	view, err = l.View(context.Background(), &pending, "ANA", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
	for _, p := range view.Projects {
		assert.Equal(t, domain.StatusPending, p.Status)
	}

	all, err := l.ByStatus(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSelectMaterialCreatesThenPatches(t *testing.T) {
	api := &fakeAPI{}
	env := &domain.Environment{ID: "e1"}

	m, err := SelectMaterial(context.Background(), api, env, "piso", "porcelanato")
	require.NoError(t, err)
	assert.Equal(t, "Piso", m.Item)
	require.Len(t, env.Materials, 1)

	_, err = SelectMaterial(context.Background(), api, env, "Piso", "porcelanato")
	require.NoError(t, err)
	_, err = SelectMaterial(context.Background(), api, env, "Piso", "granito")
	require.NoError(t, err)
	assert.Equal(t, []string{"CreateMaterial Piso", "UpdateMaterial " + m.ID}, api.calls)
	assert.Len(t, env.Materials, 1)

	_, err = SelectMaterial(context.Background(), api, env, "Piso", " ")
	assert.Error(t, err)
}

func TestCreateProjectSaga(t *testing.T) {
	plan := ProjectPlan{
		Project: client.ProjectInput{Name: "Aurora", Type: domain.ProjectResidential, Responsible: "Ana", DeliveryOn: "2026-12-01"},
		Environments: []EnvironmentPlan{
			{Name: "Sala", Category: domain.CategoryPrivateUnit, Selections: []Selection{{Item: "Piso", Description: "porcelanato"}}},
			{Name: "Hall", Category: domain.CategoryCommonArea, Selections: []Selection{{Item: "Teto", Description: "gesso"}}},
		},
	}

	t.Run("success", func(t *testing.T) {
		api := &fakeAPI{}
		p, report, err := CreateProject(context.Background(), api, plan, nil)
		require.NoError(t, err)
		assert.Len(t, report.Completed, 5)
		require.Len(t, p.Environments, 2)
		assert.Len(t, p.Environments[1].Materials, 1)
		assert.Equal(t, p.ID, p.Environments[0].ProjectID)
	})

	t.Run("partial failure with rollback", func(t *testing.T) {
		api := &fakeAPI{failOn: map[string]error{"CreateMaterial Teto": client.ErrValidation}}
		withRollback := plan
		withRollback.RollbackEnvironments = true
		_, report, err := CreateProject(context.Background(), api, withRollback, nil)
		require.Error(t, err)
		assert.Equal(t, "material Hall/Teto", report.Failed)
		assert.Equal(t, []string{"environment Hall", "environment Sala"}, report.Compensated)
		assert.Equal(t, 2, api.count("DeleteEnvironment"))
	})

	t.Run("invalid plan sends nothing", func(t *testing.T) {
		api := &fakeAPI{}
		bad := plan
		bad.Environments = append([]EnvironmentPlan{}, plan.Environments...)
		bad.Environments = append(bad.Environments, EnvironmentPlan{Name: "sala", Category: domain.CategoryPrivateUnit})
		_, _, err := CreateProject(context.Background(), api, bad, nil)
		assert.Error(t, err)
		assert.Empty(t, api.calls)
	})
}
