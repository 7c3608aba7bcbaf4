package audit

import (
	"ppetrack/internal/domain"
	"ppetrack/internal/modules/report"
)

type SignOffRequest struct {
	Quarter    string `json:"quarter" validate:"required"`
	SignerName string `json:"signer_name" validate:"required"`
	Notes      string `json:"notes,omitempty"`
}

// QuarterStatus pairs the signoff (if any) with the completeness grid
// the signer is asked to judge. Signing is never blocked on
// completeness; the grid is presented, not enforced.
type QuarterStatus struct {
	Quarter      string                        `json:"quarter"`
	Signed       bool                          `json:"signed"`
	Signoff      *domain.AuditSignoff          `json:"signoff,omitempty"`
	Completeness *report.QuarterlyCompleteness `json:"completeness"`
}
