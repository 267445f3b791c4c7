package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/client"
	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"go.uber.org/zap"
)

var (
	// ErrNotRejected is returned when resubmitting a project that is not rejected
	ErrNotRejected = errors.New("project is not rejected")
	// ErrNotEditable is returned when editing a material that was not rejected
	ErrNotEditable = errors.New("material is not editable")
	// ErrUnknownItem is returned for an item label outside domain.ItemCatalog
	ErrUnknownItem = errors.New("item is not in the catalog")
)

// ResubmitAPI is the part of the API client resubmission needs
type ResubmitAPI interface {
	UpdateMaterial(ctx context.Context, id string, patch client.MaterialPatch) (domain.Material, error)
	ResubmitProject(ctx context.Context, id string) (domain.Project, error)
}

type materialEdit struct {
	item        string
	description string
}

// Resubmission buffers edits to the rejected materials of a rejected
// project until Submit sends them.
type Resubmission struct {
	api     ResubmitAPI
	log     *zap.Logger
	project domain.Project

	// editable materials in display order
	order []string
	edits map[string]*materialEdit
}

// NewResubmission prepares a rejected project for editing
func NewResubmission(api ResubmitAPI, project domain.Project, log *zap.Logger) (*Resubmission, error) {
	if !project.Status.IsRejected() {
		return nil, fmt.Errorf("%w: %s", ErrNotRejected, project.Name)
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resubmission{
		api:     api,
		log:     log.Named("resubmit"),
		project: project,
		edits:   make(map[string]*materialEdit),
	}
	for _, m := range project.AllMaterials() {
		if !m.Status.IsRejected() {
			continue
		}
		r.order = append(r.order, m.ID)
		r.edits[m.ID] = &materialEdit{item: m.Item, description: m.Description}
	}
	return r, nil
}

// Editable returns the rejected materials with the buffered edits applied
func (r *Resubmission) Editable() []domain.Material {
	out := make([]domain.Material, 0, len(r.order))
	for _, m := range r.project.AllMaterials() {
		e, ok := r.edits[m.ID]
		if !ok {
			continue
		}
		m.Item = e.item
		m.Description = e.description
		out = append(out, m)
	}
	return out
}

// SetItem replaces the item label of an editable material
func (r *Resubmission) SetItem(materialID, item string) error {
	e, ok := r.edits[materialID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotEditable, materialID)
	}
	canonical, ok := domain.CanonicalItem(item)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	e.item = canonical
	return nil
}

// SetDescription replaces the description of an editable material
func (r *Resubmission) SetDescription(materialID, description string) error {
	e, ok := r.edits[materialID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotEditable, materialID)
	}
	e.description = description
	return nil
}

// Submit sends every editable material back to PENDENTE with its edits,
// then the project. The first failure stops the sequence; materials already
// updated stay updated and the report says which.
func (r *Resubmission) Submit(ctx context.Context) (Report, error) {
	for _, id := range r.order {
		if strings.TrimSpace(r.edits[id].description) == "" {
			return Report{}, fmt.Errorf("material %s: description is required", id)
		}
	}

	saga := NewSaga(r.log)
	pending := domain.WirePending
	for _, id := range r.order {
		id, e := id, r.edits[id]
		saga.Add("material "+id, func(ctx context.Context) error {
			item, desc := e.item, strings.TrimSpace(e.description)
			_, err := r.api.UpdateMaterial(ctx, id, client.MaterialPatch{
				Item:        &item,
				Description: &desc,
				Status:      &pending,
			})
			return err
		})
	}
	saga.Add("project "+r.project.ID, func(ctx context.Context) error {
		_, err := r.api.ResubmitProject(ctx, r.project.ID)
		return err
	})

	report := saga.Run(ctx)
	if !report.OK() {
		return report, &SagaError{Report: report}
	}
	r.log.Info("project resubmitted",
		zap.String("project_id", r.project.ID),
		zap.Int("materials", len(r.order)),
	)
	return report, nil
}
