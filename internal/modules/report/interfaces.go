package report

import (
	"context"

	"ppetrack/internal/domain"
)

type PersonDirectory interface {
	List(ctx context.Context) ([]domain.Person, error)
}

// CycleReader is the read-only slice of the inspection ledger the
// aggregations need.
type CycleReader interface {
	ListByMonths(ctx context.Context, months []string) ([]domain.InspectionCycle, error)
	DefectCounts(ctx context.Context) (map[string]int64, error)
}
