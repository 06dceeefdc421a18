package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads trip rows from the first sheet of a workbook.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	fields := resolveHeaders(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, buildRecord(i+2, fields, row))
	}

	return records, nil
}
