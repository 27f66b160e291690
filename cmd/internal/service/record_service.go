package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"clinicdesk/cmd/internal/utils/apierror"
	"fmt"
	"github.com/labstack/gommon/log"
	"sync"
)

type RecordRepository interface {
	FindAll() ([]*entity.PatientRecord, error)
	FindByID(id string) (*entity.PatientRecord, error)
	Count() (int64, error)
	Save(record *entity.PatientRecord) error
}

type RecordRequest struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	BloodType string   `json:"bloodType"`
	Contact   string   `json:"contact"`
	Address   string   `json:"address"`
	LastVisit string   `json:"lastVisit"`
	Allergies []string `json:"allergies"`
}

type RecordResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	BloodType string   `json:"bloodType"`
	Contact   string   `json:"contact"`
	Address   string   `json:"address"`
	LastVisit string   `json:"lastVisit"`
	Allergies []string `json:"allergies"`
	History   []string `json:"history"`
}

type DefaultRecordService struct {
	RecordRepo RecordRepository

	mu sync.Mutex
}

func NewRecordService(recordRepo RecordRepository) *DefaultRecordService {
	return &DefaultRecordService{RecordRepo: recordRepo}
}

func (r *DefaultRecordService) GetRecords() ([]*RecordResponse, apierror.ErrorResponse) {
	records, err := r.RecordRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch records: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*RecordResponse, len(records))
	for i, rec := range records {
		resp[i] = toRecordResponse(rec)
	}
	return resp, nil
}

func (r *DefaultRecordService) GetRecord(id string) (*RecordResponse, apierror.ErrorResponse) {
	rec, err := r.RecordRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch record %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if rec == nil {
		return nil, apierror.NotFoundError
	}
	return toRecordResponse(rec), nil
}

// CreateRecord assigns the next p### id from the current record count.
// Allergies keep their order and duplicates; history always starts empty.
func (r *DefaultRecordService) CreateRecord(req *RecordRequest) (*RecordResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)

	r.mu.Lock()
	defer r.mu.Unlock()

	count, err := r.RecordRepo.Count()
	if err != nil {
		log.Errorf("failed to count records: %v", err)
		return nil, apierror.InternalServerError
	}

	allergies := req.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	record := &entity.PatientRecord{
		ID:        fmt.Sprintf("p%03d", count+1),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		BloodType: req.BloodType,
		Contact:   req.Contact,
		Address:   req.Address,
		LastVisit: req.LastVisit,
		Allergies: allergies,
		History:   []string{},
	}

	if err := r.RecordRepo.Save(record); err != nil {
		log.Errorf("failed to save record: %v", err)
		return nil, apierror.InternalServerError
	}
	return toRecordResponse(record), nil
}

func toRecordResponse(rec *entity.PatientRecord) *RecordResponse {
	allergies := []string(rec.Allergies)
	if allergies == nil {
		allergies = []string{}
	}
	history := []string(rec.History)
	if history == nil {
		history = []string{}
	}
	return &RecordResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Age:       rec.Age,
		Gender:    rec.Gender,
		BloodType: rec.BloodType,
		Contact:   rec.Contact,
		Address:   rec.Address,
		LastVisit: rec.LastVisit,
		Allergies: allergies,
		History:   history,
	}
}
