package registry

import (
	"encoding/csv"
	"io"
	"strings"
)

// Column aliases seen across supplier exports. Header matching is
// case-insensitive on the trimmed header cell.
var columnAliases = map[string][]string{
	"reference":   {"employee ref", "employee reference", "reference", "ref", "employee no"},
	"name":        {"employee name", "name"},
	"location":    {"location", "station", "site"},
	"barcode":     {"product id", "product code", "barcode"},
	"description": {"garment description", "product description", "description"},
	"size":        {"size"},
	"condition":   {"current condition", "condition"},
}

// ParseRecords reads a header-driven CSV export into raw records.
// Ragged rows are tolerated: missing trailing cells read as empty.
// Only the reference and barcode columns are mandatory in the header.
func ParseRecords(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ErrBadHeader
	}

	cols := resolveColumns(header)
	if _, ok := cols["reference"]; !ok {
		return nil, ErrBadHeader
	}
	if _, ok := cols["barcode"]; !ok {
		return nil, ErrBadHeader
	}

	var records []RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		cell := func(key string) string {
			idx, ok := cols[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, RawRecord{
			Reference:   cell("reference"),
			Name:        cell("name"),
			Location:    cell("location"),
			Barcode:     cell("barcode"),
			Description: cell("description"),
			Size:        cell("size"),
			Condition:   cell("condition"),
		})
	}
	return records, nil
}

func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for key, aliases := range columnAliases {
			if _, taken := cols[key]; taken {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					cols[key] = i
					break
				}
			}
		}
	}
	return cols
}
