package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/Fernandolass/frontend-lab-eng-sub000/workflow"
	"github.com/spf13/cobra"
)

func (a *app) materialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "materials",
		Aliases: []string{"materiais"},
		Short:   "Approve or reject the materials of a project",
	}
	cmd.AddCommand(a.decideCmd(true), a.decideCmd(false))
	return cmd
}

func (a *app) decideCmd(approve bool) *cobra.Command {
	var reason string
	use, short := "approve", "Approve a material"
	if !approve {
		use, short = "reject", "Reject a material"
	}
	cmd := &cobra.Command{
		Use:   use + " PROJECT_ID MATERIAL_ID",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, materialID := args[0], args[1]
			approval := workflow.NewApproval(a.api, a.log)
			if err := approval.Load(cmd.Context(), projectID); err != nil {
				return err
			}
			p, _ := approval.Project()
			envID := environmentOf(p, materialID)
			if envID == "" {
				return fmt.Errorf("material %s is not part of project %s", materialID, projectID)
			}

			var out workflow.Outcome
			var err error
			if approve {
				out, err = approval.ApproveMaterial(cmd.Context(), envID, materialID)
			} else {
				approval.SetNote(materialID, reason)
				out, err = approval.RejectMaterial(cmd.Context(), envID, materialID)
			}
			if err != nil {
				return err
			}
			a.printOutcome(out)
			return nil
		},
	}
	if !approve {
		cmd.Flags().StringVar(&reason, "reason", "", "rejection reason (default \""+workflow.DefaultRejectionReason+"\")")
	}
	return cmd
}

func (a *app) printOutcome(out workflow.Outcome) {
	fmt.Fprintf(a.out, "material %s is now %s\n", out.Material.ID, out.Material.Status.Wire())
	switch {
	case !out.Settled:
		fmt.Fprintln(a.out, "project still has pending materials")
	case out.ProjectChanged:
		fmt.Fprintf(a.out, "project is now %s\n", out.ProjectStatus.Wire())
	default:
		fmt.Fprintf(a.out, "project stays %s\n", out.ProjectStatus.Wire())
	}
}

func environmentOf(p domain.Project, materialID string) string {
	for _, env := range p.Environments {
		for _, m := range env.Materials {
			if m.ID == materialID {
				return env.ID
			}
		}
	}
	return ""
}

func (a *app) resubmitCmd() *cobra.Command {
	var items, descriptions []string
	cmd := &cobra.Command{
		Use:   "resubmit PROJECT_ID",
		Short: "Edit the rejected materials of a project and send it back for approval",
		Long: "Every rejected material is sent back as PENDENTE, then the project.\n" +
			"Edits are given as MATERIAL_ID=value, e.g. --item 12=Piso --desc 12=\"porcelanato 60x60\".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resubmit(cmd.Context(), args[0], items, descriptions)
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "MATERIAL_ID=item label from the catalog")
	cmd.Flags().StringArrayVar(&descriptions, "desc", nil, "MATERIAL_ID=new description")
	return cmd
}

func (a *app) resubmit(ctx context.Context, projectID string, items, descriptions []string) error {
	p, err := a.api.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	r, err := workflow.NewResubmission(a.api, p, a.log)
	if err != nil {
		return err
	}
	for _, kv := range items {
		id, value, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		if err := r.SetItem(id, value); err != nil {
			return fmt.Errorf("%w (catalog: %s)", err, strings.Join(domain.ItemCatalog, ", "))
		}
	}
	for _, kv := range descriptions {
		id, value, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		if err := r.SetDescription(id, value); err != nil {
			return err
		}
	}

	report, err := r.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "resubmitted %d materials and project %s\n", len(r.Editable()), p.Name)
	a.log.Debug("resubmission report", zapReport(report)...)
	return nil
}

func splitAssignment(kv string) (string, string, error) {
	id, value, ok := strings.Cut(kv, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return "", "", fmt.Errorf("expected MATERIAL_ID=value, got %q", kv)
	}
	return strings.TrimSpace(id), value, nil
}
