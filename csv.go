package spendwise

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVPreview is the parsed form of a delimited transaction file: a header
// row and the data rows. Mapping rows into transactions is deliberately not
// done here; the preview is all the core offers.
type CSVPreview struct {
	Header []string
	Rows   [][]string
}

// ReadCSVPreview parses r as comma-separated rows with a leading header.
// Rows may have varying field counts; an empty input yields an error.
func ReadCSVPreview(r io.Reader) (*CSVPreview, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}
	return &CSVPreview{Header: records[0], Rows: records[1:]}, nil
}
