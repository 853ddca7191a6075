package output

import (
	"fmt"
	"math"

	"github.com/ukaji3/plotbridge-go/pkg/plotbridge/models"
	"github.com/xuri/excelize/v2"
)

// DataColumns are the trace fields exported to workbook columns, in order.
var DataColumns = []string{"x", "y", "z", "labels", "values", "text"}

// defaultSheet is the sheet created by excelize.NewFile.
const defaultSheet = "Sheet1"

// SheetName returns the workbook sheet name for the i-th (0-based) trace.
func SheetName(i int, tt models.TraceType) string {
	return fmt.Sprintf("%d_%s", i+1, tt)
}

// WriteXLSX exports the data columns of every trace to a workbook at path,
// one sheet per trace.
func WriteXLSX(fig *models.Figure, path string) error {
	f, err := BuildWorkbook(fig)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// BuildWorkbook builds the in-memory workbook written by WriteXLSX.
func BuildWorkbook(fig *models.Figure) (*excelize.File, error) {
	if len(fig.Traces) == 0 {
		return nil, fmt.Errorf("%w: figure has no traces", ErrUnsupportedTrace)
	}

	f := excelize.NewFile()
	for i, tr := range fig.Traces {
		sheet := SheetName(i, tr.Type)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, err
		}

		if err := writeTraceSheet(f, sheet, tr); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

// writeTraceSheet writes one column per present data field. A nested field
// (e.g. a heatmap z matrix) occupies one column per inner element.
func writeTraceSheet(f *excelize.File, sheet string, tr models.Trace) error {
	col := 1
	for _, field := range DataColumns {
		values := sequence(tr.Fields[field])
		if values == nil {
			continue
		}

		if err := setCell(f, sheet, col, 1, field); err != nil {
			return err
		}

		width := 1
		for r, v := range values {
			row := sequence(v)
			if row == nil {
				if err := setCell(f, sheet, col, r+2, v); err != nil {
					return err
				}
				continue
			}
			for c, cell := range row {
				if err := setCell(f, sheet, col+c, r+2, cell); err != nil {
					return err
				}
			}
			if len(row) > width {
				width = len(row)
			}
		}
		col += width
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	switch val := v.(type) {
	case map[string]interface{}, []interface{}:
		v = label(v)
	case float64:
		if math.IsNaN(val) {
			return nil
		}
	}
	return f.SetCellValue(sheet, cellName, v)
}
