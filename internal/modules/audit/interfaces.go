package audit

import (
	"context"

	"ppetrack/internal/domain"
	"ppetrack/internal/modules/report"
)

type SignoffRepository interface {
	Create(ctx context.Context, s *domain.AuditSignoff) error
	GetByQuarter(ctx context.Context, quarter string) (*domain.AuditSignoff, error)
}

// CompletenessReader is the read-only view onto the aggregator.
type CompletenessReader interface {
	QuarterlyCompleteness(ctx context.Context, quarter string) (*report.QuarterlyCompleteness, error)
}
