package upload

import "time"

// Upload is one inspection photo stored on the local filesystem. The
// core treats photos as opaque: item results reference them by URL only.
type Upload struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Barcode      string    `gorm:"column:barcode;index" json:"barcode,omitempty"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	FilePath     string    `gorm:"column:file_path" json:"-"`
	FileURL      string    `gorm:"column:file_url" json:"url"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Upload) TableName() string { return "uploads" }
