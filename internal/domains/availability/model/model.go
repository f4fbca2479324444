package model

import (
	"time"

	"talent/shared/model"
)

const (
	TableName  = "availability_slots"
	EntityName = "availability_slot"

	FieldID            = "id"
	FieldCandidateID   = "candidate_id"
	FieldSlotDate      = "slot_date"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldInterviewType = "interview_type"
	FieldStatus        = "status"
	FieldBlockedBy     = "blocked_by"
)

// AvailabilitySlot is one bookable window on a candidate's schedule. Times are
// wall-clock in the application timezone; SlotDate carries the calendar day
// and StartTime/EndTime the time of day on it.
//
// BlockedBy back-references the booking that shadowed this slot through the
// cross-format buffer, so cancelling that booking can release exactly the
// slots it blocked and nothing else.
type AvailabilitySlot struct {
	ID            string    `db:"id"`
	CandidateID   string    `db:"candidate_id"`
	SlotDate      time.Time `db:"slot_date"`
	StartTime     time.Time `db:"start_time"`
	EndTime       time.Time `db:"end_time"`
	InterviewType string    `db:"interview_type"`
	Status        string    `db:"status"`
	BlockedBy     *string   `db:"blocked_by"`
	model.Metadata
}

// StartAt anchors the slot's start on its calendar day.
func (s *AvailabilitySlot) StartAt() time.Time {
	return combine(s.SlotDate, s.StartTime)
}

// EndAt anchors the slot's end on its calendar day.
func (s *AvailabilitySlot) EndAt() time.Time {
	return combine(s.SlotDate, s.EndTime)
}

// Overlaps reports whether the slot's window intersects [from, until).
// Touching endpoints do not count as overlap.
func (s *AvailabilitySlot) Overlaps(from, until time.Time) bool {
	return s.StartAt().Before(until) && from.Before(s.EndAt())
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}
