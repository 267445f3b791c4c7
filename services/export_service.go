package services

import (
	"fmt"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/models"
	"github.com/xuri/excelize/v2"
)

var logExportHeaders = []string{"Data", "Usuário", "Ação", "Projeto", "Motivo"}

var logExportWidths = []float64{20, 32, 22, 36, 48}

// ExportService renders the activity log as a spreadsheet
type ExportService struct {
	logs *LogService
	now  func() time.Time
}

// NewExportService creates a new export service instance
func NewExportService(logs *LogService) *ExportService {
	return &ExportService{logs: logs, now: time.Now}
}

// ExportLogs builds an XLSX workbook with every log entry. The caller must
// close the returned file.
func (s *ExportService) ExportLogs() (*excelize.File, string, error) {
	entries, err := s.logs.AllLogs()
	if err != nil {
		return nil, "", fmt.Errorf("load logs: %w", err)
	}
	f, err := LogWorkbook(entries)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("logs_%s.xlsx", s.now().Format("20060102_150405"))
	return f, filename, nil
}

// LogWorkbook writes one row per entry below a bold header row
func LogWorkbook(entries []models.LogEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Logs"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for i, h := range logExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, logExportWidths[i])
	}

	for i, e := range entries {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.UserEmail)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Action)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.ProjectName)
		if e.Reason != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *e.Reason)
		}
	}
	return f, nil
}
