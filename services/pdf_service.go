package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/jung-kurt/gofpdf"
)

var categoryLabels = map[string]string{
	models.CategoryPrivateUnit:  "Unidade privativa",
	models.CategoryCommonArea:   "Área comum",
	models.CategoryExternalArea: "Área externa",
}

// PDFService renders project specifications
type PDFService struct {
	projects *ProjectService
}

// NewPDFService creates a new PDF service instance
func NewPDFService(projects *ProjectService) *PDFService {
	return &PDFService{projects: projects}
}

// ProjectPDF loads the project tree and renders it. It returns the document
// and a download file name.
func (s *PDFService) ProjectPDF(id string) ([]byte, string, error) {
	project, err := s.projects.GetProject(id)
	if err != nil {
		return nil, "", err
	}
	doc, err := RenderProject(project)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("projeto_%s.pdf", project.ID), nil
}

// RenderProject writes the header, one table per environment and the
// brand list of a project.
func RenderProject(p models.Project) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(p.Name), false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(p.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	line := func(label, value string) {
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}
	line("Tipo:", p.Type)
	line("Responsável:", p.Responsible)
	line("Criado em:", formatDate(time.Time(p.CreatedOn)))
	line("Entrega:", formatDate(time.Time(p.DeliveryOn)))
	line("Status:", p.Status)
	if p.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, tr(p.Description), "", "L", false)
	}

	for _, env := range p.Environments {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		title := env.Name
		if label, ok := categoryLabels[env.Category]; ok {
			title = fmt.Sprintf("%s (%s)", env.Name, label)
		}
		pdf.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(217, 225, 242)
		pdf.CellFormat(40, 6, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(110, 6, tr("Descrição"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 6, "Status", "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		if len(env.Materials) == 0 {
			pdf.CellFormat(180, 6, "Nenhum material especificado", "1", 1, "L", false, 0, "")
		}
		for _, m := range env.Materials {
			pdf.CellFormat(40, 6, tr(m.Item), "1", 0, "L", false, 0, "")
			pdf.CellFormat(110, 6, tr(truncate(m.Description, 70)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, m.Status, "1", 1, "L", false, 0, "")
			if m.Reason != nil && *m.Reason != "" {
				pdf.SetFont("Helvetica", "I", 8)
				pdf.CellFormat(180, 5, tr("Motivo: "+*m.Reason), "LRB", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 9)
			}
		}
	}

	if len(p.Brands) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Marcas", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, b := range p.Brands {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s: %s", b.Material, b.Brands)), "", "L", false)
		}
	}

	if p.GeneralNotes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Observações gerais"), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(p.GeneralNotes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
