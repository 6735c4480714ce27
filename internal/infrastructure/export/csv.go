package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ';'

// CSVExporter writes the module table as UTF-8 CSV.
type CSVExporter struct {
	path      string
	delimiter rune
	log       *logger.Logger
}

// NewCSVExporter creates an exporter writing to path. A zero delimiter
// means DefaultDelimiter.
func NewCSVExporter(path string, delimiter rune, log *logger.Logger) *CSVExporter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVExporter{
		path:      path,
		delimiter: delimiter,
		log:       log.With(logger.Component("csv_export")),
	}
}

// Export writes the table and returns the file path.
func (e *CSVExporter) Export(ctx context.Context, p *curriculum.Program) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: csv: %w", err)
		}
	}

	f, err := os.Create(e.path)
	if err != nil {
		return "", fmt.Errorf("export: csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = e.delimiter

	rows := Rows(p)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("export: csv: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("export: csv: write rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: csv: %w", err)
	}

	e.log.Info("program exported", logger.Path(e.path), logger.Int("rows", len(rows)))
	return e.path, nil
}

var _ curriculum.Exporter = (*CSVExporter)(nil)
