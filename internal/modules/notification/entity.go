package notification

import (
	"encoding/json"
	"time"
)

type Type string

const (
	TypeDefectsReported Type = "defects_reported"
	TypeCycleCompleted  Type = "cycle_completed"
)

// Notification is one stored event. The system is open-access, so
// notifications are a shared feed rather than per-user inboxes; Data
// carries the structured payload (the defect report) as JSON.
type Notification struct {
	ID        int64           `gorm:"column:id;primaryKey" json:"id"`
	Type      Type            `gorm:"column:type" json:"type"`
	Title     string          `gorm:"column:title" json:"title"`
	Body      string          `gorm:"column:body;type:text" json:"body,omitempty"`
	Data      json.RawMessage `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool            `gorm:"column:is_read;index" json:"is_read"`
	CreatedAt time.Time       `gorm:"column:created_at;index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
