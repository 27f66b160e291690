package repository

import (
	"clinicdesk/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
)

type DefaultRecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *DefaultRecordRepository {
	return &DefaultRecordRepository{db: db}
}

func (r *DefaultRecordRepository) FindAll() ([]*entity.PatientRecord, error) {
	var records []*entity.PatientRecord
	err := r.db.Order("id asc").Find(&records).Error
	return records, err
}

func (r *DefaultRecordRepository) FindByID(id string) (*entity.PatientRecord, error) {
	var record entity.PatientRecord
	err := r.db.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *DefaultRecordRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.PatientRecord{}).Count(&count).Error
	return count, err
}

func (r *DefaultRecordRepository) Save(record *entity.PatientRecord) error {
	return r.db.Save(record).Error
}
