package memory

import (
	"clinicdesk/cmd/internal/domain/entity"
	"sync"
)

type RecordRepository struct {
	mu      sync.RWMutex
	records []*entity.PatientRecord
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

func (r *RecordRepository) FindAll() ([]*entity.PatientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.PatientRecord, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Clone()
	}
	return out, nil
}

func (r *RecordRepository) FindByID(id string) (*entity.PatientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return nil, nil
}

func (r *RecordRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

func (r *RecordRepository) Save(record *entity.PatientRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == record.ID {
			r.records[i] = record.Clone()
			return nil
		}
	}
	r.records = append(r.records, record.Clone())
	return nil
}
