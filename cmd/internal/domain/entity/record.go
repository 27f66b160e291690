package entity

import "gorm.io/datatypes"

type PatientRecord struct {
	ID        string `gorm:"primaryKey"` // p001, p002, ...
	Name      string
	Age       int
	Gender    string
	BloodType string
	Contact   string
	Address   string
	LastVisit string                      // "YYYY-MM-DD"
	Allergies datatypes.JSONSlice[string] `gorm:"type:json"`
	History   datatypes.JSONSlice[string] `gorm:"type:json"`
}

func (r *PatientRecord) Clone() *PatientRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Allergies = append(datatypes.JSONSlice[string]{}, r.Allergies...)
	c.History = append(datatypes.JSONSlice[string]{}, r.History...)
	return &c
}
