package registry

import (
	"context"

	"ppetrack/internal/domain"
)

// PersonRepository defines the roster storage operations the import
// pipeline and roster queries need.
type PersonRepository interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	GetByReference(ctx context.Context, ref string) (*domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
}

// EquipmentRepository defines the item storage operations.
type EquipmentRepository interface {
	Upsert(ctx context.Context, item *domain.EquipmentItem) error
	ListByPerson(ctx context.Context, personID string) ([]domain.EquipmentItem, error)
	CountsByPerson(ctx context.Context) (map[string]int64, error)
}
