package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/studyhub/study-dashboard/internal/application/seed"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func sample(t *testing.T) *curriculum.Program {
	t.Helper()
	prog, err := seed.SampleProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)
	return prog
}

func TestRows(t *testing.T) {
	rows := Rows(sample(t))
	require.Len(t, rows, 21)

	assert.Equal(t, []string{
		"Winter 2024/2025", "DLBDSOOFPP01_D",
		"Object-oriented and Functional Programming with Python",
		"5", "Passed", "1.70", "Portfolio", "2024-11-15", "1",
	}, rows[0])

	assert.Equal(t, "DLBINGIT01", rows[3][1])
	assert.Equal(t, "Open", rows[3][4])
	assert.Equal(t, []string{"", "", "", ""}, rows[3][5:])

	assert.Equal(t, "Winter 2025/2026", rows[5][0])
}

func TestRows_EmptyProgram(t *testing.T) {
	prog, err := seed.EmptyProgram(timeutil.Date(2024, 10, 1))
	require.NoError(t, err)
	assert.Empty(t, Rows(prog))
}

func TestCSVExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "study.csv")
	exp := NewCSVExporter(path, 0, logger.Nop())

	got, err := exp.Export(context.Background(), sample(t))
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 22)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, "DLBCSICS01", records[2][1])
	assert.Equal(t, "2.30", records[2][5])
	assert.Equal(t, "Written exam", records[2][6])
}

func TestCSVExporter_CustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.csv")
	_, err := NewCSVExporter(path, ',', logger.Nop()).Export(context.Background(), sample(t))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Semester,Module code,Module name")
}

func TestCSVExporter_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.csv")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVExporter(path, 0, logger.Nop()).Export(ctx, sample(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestXLSXExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.xlsx")
	got, err := NewXLSXExporter(path, logger.Nop()).Export(context.Background(), sample(t))
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ModulesSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(ModulesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 22)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "DLBINGWBS01", rows[3][1])
	assert.Equal(t, "2.00", rows[3][5])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	values := map[string]string{}
	for _, row := range summary[1:] {
		require.Len(t, row, 2)
		values[row[0]] = row[1]
	}
	assert.Equal(t, "Cybersecurity", values["Program"])
	assert.Equal(t, "8.33", values["Progress (%)"])
	assert.Equal(t, "2", values["Average"])
	assert.Equal(t, "165", values["Remaining credits"])
}
