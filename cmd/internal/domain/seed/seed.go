// Package seed loads the demo clinic the front end expects on a fresh start.
package seed

import (
	"clinicdesk/cmd/internal/domain/entity"
	"fmt"
	"golang.org/x/crypto/bcrypt"
)

type appointmentSaver interface {
	Save(appointment *entity.Appointment) error
}

type recordSaver interface {
	Save(record *entity.PatientRecord) error
}

type userSaver interface {
	Save(user *entity.User) error
}

func Appointments() []*entity.Appointment {
	return []*entity.Appointment{
		{ID: 1, Patient: "Alice", Doctor: "Dr. Brown", Department: "Cardiology", Time: "2025-11-01 10:00", Status: entity.StatusBooked, Duration: 30, Notes: "Routine heart check-up"},
		{ID: 2, Patient: "Bob", Doctor: "Dr. Smith", Department: "Dentistry", Time: "2025-11-01 11:00", Status: entity.StatusBooked, Duration: 45, Notes: "Tooth cleaning appointment"},
		{ID: 3, Patient: "Mike", Doctor: "Dr. Taylor", Department: "Dermatology", Time: "2025-11-02 15:00", Status: entity.StatusBooked, Duration: 30, Notes: "Skin rash follow-up"},
		{ID: 4, Patient: "Lisa", Doctor: "Dr. Carter", Department: "Pediatrics", Time: "2025-11-03 11:00", Status: entity.StatusBooked, Duration: 15, Notes: "Child health check"},
		{ID: 5, Patient: "John", Doctor: "Dr. Adams", Department: "Orthopedics", Time: "2025-11-03 14:00", Status: entity.StatusBooked, Duration: 60, Notes: "Knee pain evaluation"},
		{ID: 6, Patient: "Emma", Doctor: "Dr. Wilson", Department: "Allergy & Immunology", Time: "2025-11-04 09:30", Status: entity.StatusBooked, Duration: 30, Notes: "Allergy shot appointment"},
		{ID: 7, Patient: "Chris", Doctor: "Dr. Evans", Department: "General Medicine", Time: "2025-11-04 10:30", Status: entity.StatusBooked, Duration: 45, Notes: "Annual check-up"},
		{ID: 8, Patient: "Sophia", Doctor: "Dr. Patel", Department: "Ophthalmology", Time: "2025-11-04 15:00", Status: entity.StatusBooked, Duration: 30, Notes: "Eye test and lens fitting"},
		{ID: 9, Patient: "Daniel", Doctor: "Dr. Brown", Department: "Cardiology", Time: "2025-10-28 09:00", Status: entity.StatusCompleted, Duration: 60, Notes: "Post-surgery review"},
		{ID: 10, Patient: "Olivia", Doctor: "Dr. Smith", Department: "Dentistry", Time: "2025-10-28 10:30", Status: entity.StatusCompleted, Duration: 30, Notes: "Dental filling completed"},
	}
}

func Records() []*entity.PatientRecord {
	return []*entity.PatientRecord{
		{ID: "p001", Name: "Alice", Age: 28, Gender: "Female", BloodType: "A+", Contact: "alice@gmail.com", Address: "Toronto, ON", Allergies: []string{"Penicillin"}, History: []string{"Flu 2023", "Heart check 2024"}, LastVisit: "2025-11-01"},
		{ID: "p002", Name: "Bob", Age: 35, Gender: "Male", BloodType: "O+", Contact: "bob@gmail.com", Address: "Mississauga, ON", Allergies: []string{}, History: []string{"Annual dental check 2024"}, LastVisit: "2025-11-01"},
		{ID: "p003", Name: "Mike", Age: 40, Gender: "Male", BloodType: "B+", Contact: "mike@gmail.com", Address: "Markham, ON", Allergies: []string{"Beef"}, History: []string{"Flu 2024", "Skin rash treatment 2025"}, LastVisit: "2025-11-02"},
		{ID: "p004", Name: "Lisa", Age: 7, Gender: "Female", BloodType: "O-", Contact: "lisa_parent@gmail.com", Address: "Brampton, ON", Allergies: []string{"Fish"}, History: []string{"Flu 2023", "Child health check 2025"}, LastVisit: "2025-11-03"},
		{ID: "p005", Name: "John", Age: 50, Gender: "Male", BloodType: "A-", Contact: "john@gmail.com", Address: "Toronto, ON", Allergies: []string{"Peanuts"}, History: []string{"Knee pain 2023", "Orthopedic exam 2025"}, LastVisit: "2025-11-03"},
		{ID: "p006", Name: "Emma", Age: 25, Gender: "Female", BloodType: "B+", Contact: "emma@gmail.com", Address: "Vaughan, ON", Allergies: []string{"Dust"}, History: []string{"Asthma 2021", "Allergy shots 2023"}, LastVisit: "2025-11-04"},
		{ID: "p007", Name: "Chris", Age: 32, Gender: "Male", BloodType: "AB+", Contact: "chris@gmail.com", Address: "Richmond Hill, ON", Allergies: []string{}, History: []string{"Covid-19 2022", "Annual check 2025"}, LastVisit: "2025-11-04"},
		{ID: "p008", Name: "Sophia", Age: 29, Gender: "Female", BloodType: "A+", Contact: "sophia@gmail.com", Address: "Toronto, ON", Allergies: []string{"Shellfish", "Latex"}, History: []string{"Allergy treatment 2020", "Eye check 2025"}, LastVisit: "2025-11-04"},
		{ID: "p009", Name: "Daniel", Age: 45, Gender: "Male", BloodType: "O+", Contact: "daniel@gmail.com", Address: "Scarborough, ON", Allergies: []string{"Bee stings"}, History: []string{"Heart surgery 2024", "Post-surgery follow-up 2025"}, LastVisit: "2025-10-28"},
		{ID: "p010", Name: "Olivia", Age: 30, Gender: "Female", BloodType: "AB-", Contact: "olivia@gmail.com", Address: "Toronto, ON", Allergies: []string{"Pollen"}, History: []string{"Seasonal allergy 2023", "Dental filling 2025"}, LastVisit: "2025-10-28"},
	}
}

type demoUser struct {
	username, password, name, role string
}

var demoUsers = []demoUser{
	{"admin", "admin123", "Administrator", "admin"},
	{"staff", "staff123", "Clinic Staff", "staff"},
}

// Load writes the demo data into the given repositories.
func Load(appts appointmentSaver, records recordSaver, users userSaver) error {
	for _, appt := range Appointments() {
		if err := appts.Save(appt); err != nil {
			return fmt.Errorf("seed appointment %d: %w", appt.ID, err)
		}
	}

	for _, rec := range Records() {
		if err := records.Save(rec); err != nil {
			return fmt.Errorf("seed record %s: %w", rec.ID, err)
		}
	}

	for i, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		user := &entity.User{ID: i + 1, Username: u.username, PasswordHash: string(hash), Name: u.name, Role: u.role}
		if err := users.Save(user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}
	return nil
}
