package repository

import (
	"context"

	"ppetrack/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Upsert writes an item keyed by barcode: an existing row with the same
// barcode is replaced wholesale (category, description, size, owner).
func (r *EquipmentRepository) Upsert(ctx context.Context, item *domain.EquipmentItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barcode"}},
			UpdateAll: true,
		}).
		Create(item).Error
}

func (r *EquipmentRepository) ListByPerson(ctx context.Context, personID string) ([]domain.EquipmentItem, error) {
	var items []domain.EquipmentItem
	tx := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("category, barcode").
		Find(&items)
	return items, tx.Error
}

// CountsByPerson returns the number of owned items per person id.
func (r *EquipmentRepository) CountsByPerson(ctx context.Context) (map[string]int64, error) {
	type row struct {
		PersonID string `gorm:"column:person_id"`
		Cnt      int64  `gorm:"column:cnt"`
	}

	var rows []row
	q := `
SELECT person_id, COUNT(1) AS cnt
FROM equipment_items
GROUP BY person_id
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PersonID] = r.Cnt
	}
	return counts, nil
}
