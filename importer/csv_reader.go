package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVReader reads trip rows from a CSV sheet. The first row is the header;
// columns that resolve to no trip field are ignored.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header row: %w", err)
	}
	fields := resolveHeaders(headers)

	var records []Record
	for rowNumber := 2; ; rowNumber++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber, err)
		}
		records = append(records, buildRecord(rowNumber, fields, row))
	}

	return records, nil
}
