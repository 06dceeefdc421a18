package output

import (
	"fmt"
	"strconv"

	"travelog/internal/durtext"
	"travelog/internal/timetext"
	"travelog/triplog"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, entries []triplog.Entry) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range rawHeaders() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Origin,
			entry.Destination,
			entry.Mode,
			timetext.FormatStorage(entry.Start),
			timetext.FormatStorage(entry.End),
			durtext.Render(entry.Start, entry.End),
			entry.Description,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
