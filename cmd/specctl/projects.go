package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/Fernandolass/frontend-lab-eng-sub000/workflow"
	"github.com/spf13/cobra"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"projetos"},
		Short:   "List, inspect and create projects",
	}
	cmd.AddCommand(a.projectsListCmd(), a.projectsShowCmd(), a.projectsCreateCmd(), a.projectsPDFCmd())
	return cmd
}

// parseStatusFlag maps "" and "all" to no filter
func parseStatusFlag(s string) (*domain.Status, error) {
	if s == "" || strings.EqualFold(s, "all") || strings.EqualFold(s, "todos") {
		return nil, nil
	}
	st, err := domain.ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (a *app) projectsListCmd() *cobra.Command {
	var status, search string
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects by status, filtered by name or responsible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := parseStatusFlag(status)
			if err != nil {
				return err
			}
			view, err := workflow.NewLister(a.api, a.cfg.PageSize).View(cmd.Context(), st, search, page)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tRESPONSÁVEL\tENTREGA\tSTATUS")
			for _, p := range view.Projects {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Responsible, formatDay(p.DeliveryOn), p.Status.Wire())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "page %d/%d, %d projects\n", view.Page, max(view.Pages, 1), view.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "pendente, aprovado, reprovado or all")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on name or responsible")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func (a *app) projectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT_ID",
		Short: "Show a project with its environments and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printProject(a.out, p)
			return nil
		},
	}
}

func (a *app) projectsCreateCmd() *cobra.Command {
	var planPath string
	var rollback bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project with its environments and materials from a plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := readPlan(planPath)
			if err != nil {
				return err
			}
			plan.RollbackEnvironments = rollback
			p, report, err := workflow.CreateProject(cmd.Context(), a.api, plan, a.log)
			if err != nil {
				if len(report.Completed) > 0 || report.Failed != "" {
					fmt.Fprintln(a.out, report.String())
				}
				return err
			}
			fmt.Fprintf(a.out, "created project %s (%s): %s\n", p.Name, p.ID, report.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "f", "", "YAML or JSON plan file")
	cmd.Flags().BoolVar(&rollback, "rollback", false, "delete created environments if a later step fails")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func (a *app) projectsPDFCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pdf PROJECT_ID",
		Short: "Download the specification PDF of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.api.ProjectPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = "projeto_" + args[0] + ".pdf"
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s (%d bytes)\n", output, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
