package repository

import (
	"context"
	"errors"

	"ppetrack/internal/domain"

	"gorm.io/gorm"
)

type SignoffRepository struct {
	db *gorm.DB
}

func NewSignoffRepository(db *gorm.DB) *SignoffRepository {
	return &SignoffRepository{db: db}
}

// Create inserts the signoff. The unique index on quarter makes the
// first writer win; a concurrent or repeated attempt gets ErrDuplicate.
func (r *SignoffRepository) Create(ctx context.Context, s *domain.AuditSignoff) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetByQuarter returns (nil, nil) when the quarter has no signoff.
func (r *SignoffRepository) GetByQuarter(ctx context.Context, quarter string) (*domain.AuditSignoff, error) {
	var s domain.AuditSignoff
	tx := r.db.WithContext(ctx).Where("quarter = ?", quarter).First(&s)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
