package domain

import "time"

// AuditSignoff attests that a quarter's completeness grid was reviewed.
// One signoff per quarter, first writer wins; there is no update or
// reopen operation. The quarter is referenced by label only.
type AuditSignoff struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Quarter    string    `gorm:"column:quarter;uniqueIndex" json:"quarter"`
	SignerName string    `gorm:"column:signer_name" json:"signer_name"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	SignedAt   time.Time `gorm:"column:signed_at" json:"signed_at"`
}

func (AuditSignoff) TableName() string { return "audit_signoffs" }
