package inspection

// SubmitRequest is one person's monthly check: a condition result for
// every item they currently own.
type SubmitRequest struct {
	PersonID string          `json:"person_id" validate:"required"`
	Month    string          `json:"month" validate:"required"`
	Results  []ResultRequest `json:"results" validate:"required,min=1,dive"`
}

type ResultRequest struct {
	Barcode   string `json:"barcode" validate:"required"`
	Condition string `json:"condition" validate:"required,oneof=good defect"`
	Notes     string `json:"notes,omitempty"`
	PhotoRef  string `json:"photo_ref,omitempty"`
}

// DefectReport is the payload handed to the notifier when a submission
// contains defect results. Delivery is fire-and-forget: the submission
// itself is the durable record.
type DefectReport struct {
	PersonName string       `json:"person_name"`
	Month      string       `json:"month"`
	Items      []DefectItem `json:"items"`
}

type DefectItem struct {
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
	PhotoRef    string `json:"photo_ref,omitempty"`
}
