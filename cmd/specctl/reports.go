package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/workflow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func zapReport(r workflow.Report) []zap.Field {
	fields := []zap.Field{zap.Strings("completed", r.Completed)}
	if r.Failed != "" {
		fields = append(fields, zap.String("failed", r.Failed), zap.Error(r.Err))
	}
	return fields
}

func (a *app) logsCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.api.ListLogs(cmd.Context(), page)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATA\tUSUÁRIO\tAÇÃO\tPROJETO\tMOTIVO")
			for _, e := range res.Results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.At.Local().Format("02/01/2006 15:04"), e.UserEmail, e.Action, e.ProjectName, e.Reason)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if res.HasNext() {
				fmt.Fprintf(a.out, "%d entries, more with --page %d\n", res.Count, page+1)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	var output string
	export := &cobra.Command{
		Use:   "export",
		Short: "Download the whole activity log as a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.api.ExportLogs(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = "logs_" + time.Now().Format("20060102_150405") + ".xlsx"
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", output)
			return nil
		},
	}
	export.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.AddCommand(export)
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.api.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tTOTAL\tPENDENTES\tAPROVADOS\tREPROVADOS")
			fmt.Fprintf(w, "projetos\t%d\t%d\t%d\t%d\n", s.Projects, s.ProjectsPending, s.ProjectsApproved, s.ProjectsRejected)
			fmt.Fprintf(w, "materiais\t%d\t%d\t%d\t%d\n", s.Materials, s.MaterialsPending, s.MaterialsApproved, s.MaterialsRejected)
			return w.Flush()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Show projects per month and status for the last year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.api.MonthlyStats(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MÊS\tPENDENTES\tAPROVADOS\tREPROVADOS")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Month, r.Pending, r.Approved, r.Rejected)
			}
			return w.Flush()
		},
	})
	return cmd
}
