package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"goab/domain/experiment"
)

// Table is a loaded tabular file: a header row plus data rows. Rows may be
// ragged (spreadsheet exports drop trailing empty cells).
type Table struct {
	Headers []string
	Rows    [][]string
}

// column resolves a header name to an index, case-insensitively.
func (t *Table) column(name string) (int, error) {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (have: %s)", name, strings.Join(t.Headers, ", "))
}

// cell returns the trimmed cell value, or "" past the end of a ragged row.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ContinuousTrial splits a value column into control and test samples using
// a group column. When the labels are empty they are auto-detected: the first
// distinct label seen is control, the second is test. More than two labels is
// an error — this is an A/B reader, not a multi-variant one.
func (t *Table) ContinuousTrial(groupCol, valueCol, controlLabel, testLabel string) (experiment.ContinuousTrial, error) {
	var trial experiment.ContinuousTrial

	groupIdx, err := t.column(groupCol)
	if err != nil {
		return trial, err
	}
	valueIdx, err := t.column(valueCol)
	if err != nil {
		return trial, err
	}

	autoDetect := controlLabel == "" && testLabel == ""
	for n, row := range t.Rows {
		group := cell(row, groupIdx)
		raw := cell(row, valueIdx)
		if group == "" || raw == "" {
			continue
		}

		if autoDetect {
			switch {
			case controlLabel == "":
				controlLabel = group
			case testLabel == "" && !strings.EqualFold(group, controlLabel):
				testLabel = group
			}
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return trial, fmt.Errorf("row %d: %q is not numeric in column %q", n+2, raw, valueCol)
		}

		switch {
		case strings.EqualFold(group, controlLabel):
			trial.Control = append(trial.Control, value)
		case strings.EqualFold(group, testLabel):
			trial.Test = append(trial.Test, value)
		default:
			return trial, fmt.Errorf("row %d: unexpected group %q (expected %q or %q)", n+2, group, controlLabel, testLabel)
		}
	}

	if err := trial.Validate(); err != nil {
		return experiment.ContinuousTrial{}, err
	}
	return trial, nil
}

// ProportionTrial reads one conversion-count row per variant out of the
// table. Each variant row carries its conversions and visitors totals.
func (t *Table) ProportionTrial(groupCol, conversionsCol, visitorsCol, controlLabel, testLabel string) (experiment.ProportionTrial, error) {
	var trial experiment.ProportionTrial

	groupIdx, err := t.column(groupCol)
	if err != nil {
		return trial, err
	}
	convIdx, err := t.column(conversionsCol)
	if err != nil {
		return trial, err
	}
	visIdx, err := t.column(visitorsCol)
	if err != nil {
		return trial, err
	}

	seenControl, seenTest := false, false
	for n, row := range t.Rows {
		group := cell(row, groupIdx)
		if group == "" {
			continue
		}

		conv, err := strconv.Atoi(cell(row, convIdx))
		if err != nil {
			return trial, fmt.Errorf("row %d: bad conversions value %q", n+2, cell(row, convIdx))
		}
		vis, err := strconv.Atoi(cell(row, visIdx))
		if err != nil {
			return trial, fmt.Errorf("row %d: bad visitors value %q", n+2, cell(row, visIdx))
		}
		sample := experiment.ProportionSample{Conversions: conv, Visitors: vis}

		switch {
		case strings.EqualFold(group, controlLabel):
			trial.Control = sample
			seenControl = true
		case strings.EqualFold(group, testLabel):
			trial.Test = sample
			seenTest = true
		default:
			return trial, fmt.Errorf("row %d: unexpected group %q (expected %q or %q)", n+2, group, controlLabel, testLabel)
		}
	}

	if !seenControl || !seenTest {
		return trial, fmt.Errorf("need one %q row and one %q row", controlLabel, testLabel)
	}
	if err := trial.Validate(); err != nil {
		return experiment.ProportionTrial{}, err
	}
	return trial, nil
}
