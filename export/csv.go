package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{"year"}, t.Columns...)); err != nil {
		return err
	}

	for idx, year := range t.Years {
		record := make([]string, 0, len(t.Columns)+1)
		record = append(record, strconv.Itoa(year))

		for _, v := range t.Cells[idx] {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
