package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"goab/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReader_CSVContinuous(t *testing.T) {
	path := writeCSV(t, `variant,revenue
control,25.50
test,28.75
control,30.20
test,33.40
control,15.75
test,18.90
`)

	table, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, table.Rows, 6)

	trial, err := table.ContinuousTrial("variant", "revenue", "control", "test")
	require.NoError(t, err)
	assert.Equal(t, []float64{25.50, 30.20, 15.75}, []float64(trial.Control))
	assert.Equal(t, []float64{28.75, 33.40, 18.90}, []float64(trial.Test))
}

func TestReader_AutoDetectGroups(t *testing.T) {
	path := writeCSV(t, `bucket,latency_ms
baseline,120
baseline,135
candidate,101
candidate,98
`)

	table, err := NewReader(path).Read()
	require.NoError(t, err)

	trial, err := table.ContinuousTrial("bucket", "latency_ms", "", "")
	require.NoError(t, err)
	// First label seen becomes control.
	assert.Equal(t, []float64{120, 135}, []float64(trial.Control))
	assert.Equal(t, []float64{101, 98}, []float64(trial.Test))
}

func TestReader_CSVProportionRows(t *testing.T) {
	path := writeCSV(t, `variant,conversions,visitors
control,120,2400
test,150,2300
`)

	table, err := NewReader(path).Read()
	require.NoError(t, err)

	trial, err := table.ProportionTrial("variant", "conversions", "visitors", "control", "test")
	require.NoError(t, err)
	assert.Equal(t, 120, trial.Control.Conversions)
	assert.Equal(t, 2300, trial.Test.Visitors)
}

func TestReader_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"variant", "revenue"},
		{"control", 10.0},
		{"control", 12.0},
		{"test", 15.0},
		{"test", 14.0},
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := NewReader(path).Read()
	require.NoError(t, err)

	trial, err := table.ContinuousTrial("variant", "revenue", "control", "test")
	require.NoError(t, err)
	assert.Len(t, trial.Control, 2)
	assert.Len(t, trial.Test, 2)
	assert.InDelta(t, 11.0, (trial.Control[0]+trial.Control[1])/2, 1e-9)
}

func TestReader_Errors(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.csv")).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	path := writeCSV(t, "variant,revenue\n")
	_, err = NewReader(path).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one data row")
}

func TestTable_ColumnValidation(t *testing.T) {
	path := writeCSV(t, `variant,revenue
control,25.50
test,28.75
`)
	table, err := NewReader(path).Read()
	require.NoError(t, err)

	_, err = table.ContinuousTrial("missing", "revenue", "control", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "missing" not found`)

	_, err = table.ContinuousTrial("variant", "revenue", "control", "test")
	require.Error(t, err, "single observation per arm cannot carry a variance")
	assert.True(t, core.IsInvalidInput(err))
}

func TestTable_RejectsThirdGroup(t *testing.T) {
	path := writeCSV(t, `variant,revenue
control,25.50
test,28.75
holdout,30.00
`)
	table, err := NewReader(path).Read()
	require.NoError(t, err)

	_, err = table.ContinuousTrial("variant", "revenue", "control", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected group "holdout"`)
}

func TestTable_BadNumeric(t *testing.T) {
	path := writeCSV(t, `variant,revenue
control,25.50
control,abc
test,1
test,2
`)
	table, err := NewReader(path).Read()
	require.NoError(t, err)

	_, err = table.ContinuousTrial("variant", "revenue", "control", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
