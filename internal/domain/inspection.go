package domain

import "time"

type Condition string

const (
	ConditionGood   Condition = "good"
	ConditionDefect Condition = "defect"
)

// InspectionCycle is one person's completed monthly check. The
// (person_id, month) pair is unique at the storage layer; a cycle is
// created exactly once and never updated or deleted afterwards.
type InspectionCycle struct {
	ID          int64        `gorm:"column:id;primaryKey" json:"id"`
	PersonID    string       `gorm:"column:person_id;uniqueIndex:idx_cycle_person_month" json:"person_id"`
	Month       string       `gorm:"column:month;uniqueIndex:idx_cycle_person_month" json:"month"`
	CompletedAt time.Time    `gorm:"column:completed_at" json:"completed_at"`
	Results     []ItemResult `gorm:"foreignKey:CycleID" json:"results,omitempty"`
}

func (InspectionCycle) TableName() string { return "inspection_cycles" }

// ItemResult records the condition of one equipment item inside one
// cycle. Notes and PhotoRef only carry meaning for defect results;
// a good result stores them empty.
type ItemResult struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	CycleID    int64     `gorm:"column:cycle_id;uniqueIndex:idx_result_cycle_barcode" json:"cycle_id"`
	Barcode    string    `gorm:"column:barcode;uniqueIndex:idx_result_cycle_barcode;index" json:"barcode"`
	Condition  Condition `gorm:"column:condition" json:"condition"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	PhotoRef   string    `gorm:"column:photo_ref" json:"photo_ref,omitempty"`
	RecordedAt time.Time `gorm:"column:recorded_at" json:"recorded_at"`
}

func (ItemResult) TableName() string { return "item_results" }
