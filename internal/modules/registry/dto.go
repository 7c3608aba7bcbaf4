package registry

// RawRecord is one row of a bulk equipment export, as read from the
// tabular import file.
type RawRecord struct {
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Condition   string `json:"condition"`
}

type ImportSummary struct {
	PersonsTouched int `json:"persons_touched"`
	ItemsImported  int `json:"items_imported"`
	ItemsSkipped   int `json:"items_skipped"`
}

type RosterEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
	ItemCount int64  `json:"item_count"`
}
