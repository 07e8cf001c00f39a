package repository

import (
	"errors"

	"vedacare/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) *DefaultTreatmentRepository {
	return &DefaultTreatmentRepository{db: db}
}

// FindAll returns treatments in store order, no ordering guarantee.
func (t *DefaultTreatmentRepository) FindAll() ([]*entity.Treatment, error) {
	var treatments []*entity.Treatment
	err := t.db.Find(&treatments).Error
	return treatments, err
}

func (t *DefaultTreatmentRepository) FindByID(id int) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := t.db.First(&treatment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &treatment, err
}

func (t *DefaultTreatmentRepository) Save(treatment *entity.Treatment) error {
	return t.db.Save(treatment).Error
}
