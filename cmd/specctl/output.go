package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
)

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func printProject(out io.Writer, p domain.Project) {
	fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(out, "  tipo: %s  responsável: %s  entrega: %s  status: %s\n",
		p.Type, p.Responsible, formatDay(p.DeliveryOn), p.Status.Wire())
	if p.Description != "" {
		fmt.Fprintf(out, "  %s\n", p.Description)
	}

	for _, env := range p.Environments {
		fmt.Fprintf(out, "\n[%s] %s (%s)\n", env.ID, env.Name, env.Category)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, m := range env.Materials {
			line := fmt.Sprintf("  %s\t%s\t%s\t%s", m.ID, m.Item, m.Description, m.Status.Wire())
			if m.Status.IsRejected() && m.Reason != "" {
				line += "\tmotivo: " + m.Reason
			}
			fmt.Fprintln(w, line)
		}
		_ = w.Flush()
	}

	if len(p.Brands) > 0 {
		fmt.Fprintln(out, "\nmarcas:")
		for _, b := range p.Brands {
			fmt.Fprintf(out, "  %s: %s\n", b.Material, strings.Join(b.Brands, ", "))
		}
	}
	if p.GeneralNotes != "" {
		fmt.Fprintf(out, "\nobservações: %s\n", p.GeneralNotes)
	}
	status, settled := domain.Aggregate(p.AllMaterials())
	if !settled {
		fmt.Fprintln(out, "\nmaterials still pending")
	} else if status != p.Status {
		fmt.Fprintf(out, "\nmaterials settle to %s\n", status.Wire())
	}
}
