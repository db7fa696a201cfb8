package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "parameters"

// WriteXLSX writes t as a single-sheet workbook.
func WriteXLSX(w io.Writer, t *Table, sheet string) (err error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()

	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return
	}

	header := make([]interface{}, 0, len(t.Columns)+1)
	header = append(header, "year")

	for _, col := range t.Columns {
		header = append(header, col)
	}

	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return
	}

	for idx, year := range t.Years {
		row := make([]interface{}, 0, len(t.Cells[idx])+1)
		row = append(row, year)

		for _, v := range t.Cells[idx] {
			row = append(row, v)
		}

		var cell string

		cell, err = excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return
		}

		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return
		}
	}

	err = f.Write(w)

	return
}
