package service

import "clinicdesk/cmd/internal/domain/entity"

// HasConflict reports whether any appointment other than excludeID, and not
// canceled, already sits at candidateTime. Times are compared as plain
// strings: "2025-11-01 10:00" and "2025-11-01T10:00" do not collide.
func HasConflict(appts []*entity.Appointment, candidateTime string, excludeID int) bool {
	for _, appt := range appts {
		if appt.ID == excludeID || appt.Status == entity.StatusCanceled {
			continue
		}
		if appt.Time == candidateTime {
			return true
		}
	}
	return false
}
