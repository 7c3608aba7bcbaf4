package domain

import "time"

type Category string

const (
	CategoryFireTunic  Category = "fire_tunic"
	CategoryRTCTunic   Category = "rtc_tunic"
	CategoryTrousers   Category = "trousers"
	CategoryFireGloves Category = "fire_gloves"
	CategoryRTCGloves  Category = "rtc_gloves"
	CategoryBoots      Category = "boots"
	CategoryHood       Category = "hood"
	CategoryHelmet     Category = "helmet"
	CategoryHalfMask   Category = "half_mask"
	CategoryBAMask     Category = "ba_mask"
	CategoryOther      Category = "other"
)

// EquipmentItem is one barcoded garment or piece of kit. The barcode is
// the primary key: re-importing the same barcode replaces the row
// (last-write-wins), it never duplicates it. Historical item results
// keep referencing the barcode even if ownership later changes.
type EquipmentItem struct {
	Barcode     string    `gorm:"column:barcode;primaryKey" json:"barcode"`
	Category    Category  `gorm:"column:category;index" json:"category"`
	Description string    `gorm:"column:description" json:"description"`
	Size        string    `gorm:"column:size" json:"size,omitempty"`
	PersonID    string    `gorm:"column:person_id;index" json:"person_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (EquipmentItem) TableName() string { return "equipment_items" }
