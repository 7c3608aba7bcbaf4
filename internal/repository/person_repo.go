package repository

import (
	"context"
	"errors"

	"ppetrack/internal/domain"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID returns (nil, nil) when no person exists with that id.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	var p domain.Person
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&p)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// GetByReference matches a person by employee reference number, the key
// that gives identity continuity across re-imports.
func (r *PersonRepository) GetByReference(ctx context.Context, ref string) (*domain.Person, error) {
	var p domain.Person
	tx := r.db.WithContext(ctx).Where("reference = ?", ref).First(&p)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PersonRepository) List(ctx context.Context) ([]domain.Person, error) {
	var persons []domain.Person
	tx := r.db.WithContext(ctx).Order("name").Find(&persons)
	return persons, tx.Error
}
