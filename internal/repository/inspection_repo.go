package repository

import (
	"context"
	"errors"
	"time"

	"ppetrack/internal/domain"

	"gorm.io/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

type cycleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	PersonID    string    `gorm:"column:person_id"`
	Month       string    `gorm:"column:month"`
	CompletedAt time.Time `gorm:"column:completed_at"`
}

func (cycleModel) TableName() string { return "inspection_cycles" }

type itemResultModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	CycleID    int64     `gorm:"column:cycle_id"`
	Barcode    string    `gorm:"column:barcode"`
	Condition  string    `gorm:"column:condition"`
	Notes      string    `gorm:"column:notes"`
	PhotoRef   string    `gorm:"column:photo_ref"`
	RecordedAt time.Time `gorm:"column:recorded_at"`
}

func (itemResultModel) TableName() string { return "item_results" }

func toDomainCycle(m cycleModel, results []itemResultModel) *domain.InspectionCycle {
	c := &domain.InspectionCycle{
		ID:          m.ID,
		PersonID:    m.PersonID,
		Month:       m.Month,
		CompletedAt: m.CompletedAt,
	}
	for _, r := range results {
		c.Results = append(c.Results, domain.ItemResult{
			ID:         r.ID,
			CycleID:    r.CycleID,
			Barcode:    r.Barcode,
			Condition:  domain.Condition(r.Condition),
			Notes:      r.Notes,
			PhotoRef:   r.PhotoRef,
			RecordedAt: r.RecordedAt,
		})
	}
	return c
}

// CreateWithResults inserts the cycle and all of its item results in one
// transaction. A concurrent submission for the same (person, month)
// loses to the unique index and gets ErrDuplicate; nothing is left
// half-written in either case.
func (r *InspectionRepository) CreateWithResults(ctx context.Context, c *domain.InspectionCycle) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := cycleModel{
			PersonID:    c.PersonID,
			Month:       c.Month,
			CompletedAt: c.CompletedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		c.ID = m.ID

		for i := range c.Results {
			rm := itemResultModel{
				CycleID:    m.ID,
				Barcode:    c.Results[i].Barcode,
				Condition:  string(c.Results[i].Condition),
				Notes:      c.Results[i].Notes,
				PhotoRef:   c.Results[i].PhotoRef,
				RecordedAt: c.Results[i].RecordedAt,
			}
			if err := tx.Create(&rm).Error; err != nil {
				return err
			}
			c.Results[i].ID = rm.ID
			c.Results[i].CycleID = m.ID
		}
		return nil
	})

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetByPersonMonth returns (nil, nil) when no cycle exists for the pair.
func (r *InspectionRepository) GetByPersonMonth(ctx context.Context, personID, month string) (*domain.InspectionCycle, error) {
	var m cycleModel
	tx := r.db.WithContext(ctx).
		Where("person_id = ? AND month = ?", personID, month).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}

	var results []itemResultModel
	tx = r.db.WithContext(ctx).
		Where("cycle_id = ?", m.ID).
		Order("barcode").
		Find(&results)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return toDomainCycle(m, results), nil
}

// ListByMonths returns all cycles (without results) for the given month
// labels, for the completeness aggregations.
func (r *InspectionRepository) ListByMonths(ctx context.Context, months []string) ([]domain.InspectionCycle, error) {
	var rows []cycleModel
	tx := r.db.WithContext(ctx).
		Where("month IN ?", months).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.InspectionCycle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCycle(m, nil))
	}
	return out, nil
}

// DefectCounts returns, per person id, the lifetime count of defect
// results ever recorded. Defects are never closed by this system, so
// the count is over all history rather than a single month.
func (r *InspectionRepository) DefectCounts(ctx context.Context) (map[string]int64, error) {
	type row struct {
		PersonID string `gorm:"column:person_id"`
		Cnt      int64  `gorm:"column:cnt"`
	}

	var rows []row
	q := `
SELECT ic.person_id, COUNT(1) AS cnt
FROM item_results ir
JOIN inspection_cycles ic ON ic.id = ir.cycle_id
WHERE ir.condition = ?
GROUP BY ic.person_id
`
	tx := r.db.WithContext(ctx).Raw(q, string(domain.ConditionDefect)).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.PersonID] = r.Cnt
	}
	return counts, nil
}
