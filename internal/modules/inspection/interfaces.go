package inspection

import (
	"context"

	"ppetrack/internal/domain"
)

// CycleRepository defines the ledger storage operations.
type CycleRepository interface {
	CreateWithResults(ctx context.Context, c *domain.InspectionCycle) error
	GetByPersonMonth(ctx context.Context, personID, month string) (*domain.InspectionCycle, error)
}

type PersonDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Person, error)
}

type EquipmentReader interface {
	ListByPerson(ctx context.Context, personID string) ([]domain.EquipmentItem, error)
}

// NotificationSender receives defect reports and completion events.
// Implementations must not be load-bearing: delivery failure never
// affects the submission that produced the event.
type NotificationSender interface {
	DefectsReported(ctx context.Context, report DefectReport) error
	CycleCompleted(ctx context.Context, personName, month string, defectCount int) error
}
