package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"go.uber.org/zap"
)

// DefaultRejectionReason is sent when a material is rejected without a note
const DefaultRejectionReason = "Motivo não informado"

// ErrNotLoaded is returned when a decision is made before Load
var ErrNotLoaded = errors.New("no project loaded")

// ErrUnknownMaterial is returned for a material that is not in the loaded tree
var ErrUnknownMaterial = errors.New("material not found in project")

// ApprovalAPI is the part of the API client the approval screen needs
type ApprovalAPI interface {
	GetProject(ctx context.Context, id string) (domain.Project, error)
	ApproveMaterial(ctx context.Context, id string) (domain.Material, error)
	RejectMaterial(ctx context.Context, id, reason string) (domain.Material, error)
	ApproveProject(ctx context.Context, id string) (domain.Project, error)
	RejectProject(ctx context.Context, id, reason string) (domain.Project, error)
}

// Outcome describes the effect of one material decision
type Outcome struct {
	Material domain.Material

	// Aggregate is the project status derived from the materials after the decision
	Aggregate domain.Status
	Settled   bool

	// ProjectChanged is set when the decision moved the project itself
	ProjectChanged bool
	ProjectStatus  domain.Status
}

// Approval holds the state of the approval screen for one project: the tree,
// per-material notes and which environments are collapsed.
type Approval struct {
	api ApprovalAPI
	log *zap.Logger

	mu        sync.Mutex
	project   *domain.Project
	notes     map[string]string
	collapsed map[string]bool
}

// NewApproval creates an approval screen backed by api
func NewApproval(api ApprovalAPI, log *zap.Logger) *Approval {
	if log == nil {
		log = zap.NewNop()
	}
	return &Approval{
		api:       api,
		log:       log.Named("approval"),
		notes:     make(map[string]string),
		collapsed: make(map[string]bool),
	}
}

// Load fetches the project tree and resets notes
func (a *Approval) Load(ctx context.Context, projectID string) error {
	p, err := a.api.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.project = &p
	a.notes = make(map[string]string)
	return nil
}

// Project returns a copy of the loaded tree
func (a *Approval) Project() (domain.Project, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.project == nil {
		return domain.Project{}, false
	}
	return cloneProject(*a.project), true
}

// SetNote stores the rejection note typed for a material
func (a *Approval) SetNote(materialID, note string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if note == "" {
		delete(a.notes, materialID)
		return
	}
	a.notes[materialID] = note
}

// Note returns the draft rejection note of a material, empty when none
func (a *Approval) Note(materialID string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notes[materialID]
}

// ToggleCollapsed flips the collapsed flag of an environment and returns it
func (a *Approval) ToggleCollapsed(environmentID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collapsed[environmentID] = !a.collapsed[environmentID]
	return a.collapsed[environmentID]
}

// Collapsed reports whether an environment is collapsed in the view
func (a *Approval) Collapsed(environmentID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.collapsed[environmentID]
}

// ApproveMaterial approves a material and, once nothing is pending, moves
// the project to the aggregate status.
func (a *Approval) ApproveMaterial(ctx context.Context, environmentID, materialID string) (Outcome, error) {
	if _, err := a.lookup(environmentID, materialID); err != nil {
		return Outcome{}, err
	}
	m, err := a.api.ApproveMaterial(ctx, materialID)
	if err != nil {
		return Outcome{}, err
	}
	return a.after(ctx, environmentID, materialID, m)
}

// RejectMaterial rejects a material with its note, or with
// DefaultRejectionReason when the note is empty.
func (a *Approval) RejectMaterial(ctx context.Context, environmentID, materialID string) (Outcome, error) {
	if _, err := a.lookup(environmentID, materialID); err != nil {
		return Outcome{}, err
	}
	reason := strings.TrimSpace(a.Note(materialID))
	if reason == "" {
		reason = DefaultRejectionReason
	}
	m, err := a.api.RejectMaterial(ctx, materialID, reason)
	if err != nil {
		return Outcome{}, err
	}
	if m.Reason == "" {
		m.Reason = reason
	}
	return a.after(ctx, environmentID, materialID, m)
}

func (a *Approval) lookup(environmentID, materialID string) (domain.Material, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.project == nil {
		return domain.Material{}, ErrNotLoaded
	}
	m := a.project.FindMaterial(environmentID, materialID)
	if m == nil {
		return domain.Material{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, materialID)
	}
	return *m, nil
}

// after records the server's view of the material, clears its note and
// applies the aggregate rule to the project.
func (a *Approval) after(ctx context.Context, environmentID, materialID string, updated domain.Material) (Outcome, error) {
	a.mu.Lock()
	local := a.project.FindMaterial(environmentID, materialID)
	if local != nil {
		updated.EnvironmentID = local.EnvironmentID
		*local = updated
	}
	delete(a.notes, materialID)
	status, settled := domain.Aggregate(a.project.AllMaterials())
	current := a.project.Status
	projectID := a.project.ID
	reasons := rejectionSummary(a.project)
	a.mu.Unlock()

	out := Outcome{Material: updated, Aggregate: status, Settled: settled, ProjectStatus: current}
	if !settled || status == current {
		return out, nil
	}

	var (
		p   domain.Project
		err error
	)
	if status == domain.StatusRejected {
		p, err = a.api.RejectProject(ctx, projectID, reasons)
	} else {
		p, err = a.api.ApproveProject(ctx, projectID)
	}
	if err != nil {
		return out, fmt.Errorf("material saved but project status update failed: %w", err)
	}

	a.mu.Lock()
	if a.project != nil && a.project.ID == projectID {
		a.project.Status = status
	}
	a.mu.Unlock()

	a.log.Info("project settled",
		zap.String("project_id", projectID),
		zap.String("status", status.String()),
		zap.String("server_status", p.Status.String()),
	)
	out.ProjectChanged = true
	out.ProjectStatus = status
	return out, nil
}

// rejectionSummary lists the rejected items for the project-level reason
func rejectionSummary(p *domain.Project) string {
	var items []string
	for _, env := range p.Environments {
		for _, m := range env.Materials {
			if m.Status.IsRejected() {
				items = append(items, env.Name+": "+m.Item)
			}
		}
	}
	if len(items) == 0 {
		return DefaultRejectionReason
	}
	return "Materiais reprovados: " + strings.Join(items, "; ")
}

func cloneProject(p domain.Project) domain.Project {
	envs := make([]domain.Environment, len(p.Environments))
	for i, env := range p.Environments {
		env.Materials = append([]domain.Material(nil), env.Materials...)
		envs[i] = env
	}
	p.Environments = envs
	p.Brands = append([]domain.BrandMapping(nil), p.Brands...)
	return p
}
