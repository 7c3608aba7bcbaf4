package upload

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, u *Upload) error
	ListByBarcode(ctx context.Context, barcode string) ([]Upload, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) ListByBarcode(ctx context.Context, barcode string) ([]Upload, error) {
	var uploads []Upload
	err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}
