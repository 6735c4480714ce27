package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// Sheet names of the workbook.
const (
	ModulesSheet = "Modules"
	SummarySheet = "Summary"
)

var moduleColWidths = []float64{14, 18, 56, 9, 12, 8, 20, 12, 9}

// XLSXExporter writes the module table and a summary sheet to a workbook.
type XLSXExporter struct {
	path string
	log  *logger.Logger
}

// NewXLSXExporter creates an exporter writing to path.
func NewXLSXExporter(path string, log *logger.Logger) *XLSXExporter {
	return &XLSXExporter{path: path, log: log.With(logger.Component("xlsx_export"))}
}

// Export writes the workbook and returns the file path.
func (e *XLSXExporter) Export(ctx context.Context, p *curriculum.Program) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(ModulesSheet)
	if err != nil {
		return "", fmt.Errorf("export: xlsx: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("export: xlsx: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("export: xlsx: style: %w", err)
	}

	rows := Rows(p)
	if err := writeModules(f, rows, headerStyle); err != nil {
		return "", fmt.Errorf("export: xlsx: modules: %w", err)
	}
	if err := writeSummary(f, p, headerStyle); err != nil {
		return "", fmt.Errorf("export: xlsx: summary: %w", err)
	}

	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: xlsx: %w", err)
		}
	}
	if err := f.SaveAs(e.path); err != nil {
		return "", fmt.Errorf("export: xlsx: save: %w", err)
	}

	e.log.Info("program exported", logger.Path(e.path), logger.Int("rows", len(rows)))
	return e.path, nil
}

func writeModules(f *excelize.File, rows [][]string, headerStyle int) error {
	for i, h := range Header {
		if err := f.SetCellValue(ModulesSheet, cell(i+1, 1), h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(ModulesSheet, cell(1, 1), cell(len(Header), 1), headerStyle); err != nil {
		return err
	}

	for i, w := range moduleColWidths {
		col := colName(i + 1)
		if err := f.SetColWidth(ModulesSheet, col, col, w); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, v := range row {
			if err := f.SetCellValue(ModulesSheet, cell(c+1, r+2), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, p *curriculum.Program, headerStyle int) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	lines := [][]any{
		{"Key figure", "Value"},
		{"Program", p.Name()},
		{"Degree", p.Degree().String()},
		{"Progress (%)", p.Progress()},
		{"Earned credits", p.EarnedCredits()},
		{"Target credits", p.TargetCredits()},
		{"Remaining credits", p.RemainingCredits()},
		{"Average", p.Average()},
		{"Target average", p.TargetAverage()},
	}
	for r, line := range lines {
		for c, v := range line {
			if err := f.SetCellValue(SummarySheet, cell(c+1, r+1), v); err != nil {
				return err
			}
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 22)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx)
	return name
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

var _ curriculum.Exporter = (*XLSXExporter)(nil)
