package model

import (
	"time"

	"talent/shared/model"
)

const (
	TableName  = "interview_bookings"
	EntityName = "interview_booking"

	FieldID            = "id"
	FieldSlotID        = "slot_id"
	FieldCandidateID   = "candidate_id"
	FieldInterviewType = "interview_type"
	FieldCancelledAt   = "cancelled_at"
	FieldCancelReason  = "cancel_reason"
)

// Booking records an applicant claiming a slot. Rows are never deleted;
// cancellation sets CancelledAt and the slot is released, keeping the booking
// as audit trail.
type Booking struct {
	ID             string     `db:"id"`
	SlotID         string     `db:"slot_id"`
	CandidateID    string     `db:"candidate_id"`
	InterviewType  string     `db:"interview_type"`
	ApplicantName  string     `db:"applicant_name"`
	ApplicantEmail string     `db:"applicant_email"`
	ApplicantPhone string     `db:"applicant_phone"`
	Notes          string     `db:"notes"`
	CancelledAt    *time.Time `db:"cancelled_at"`
	CancelReason   string     `db:"cancel_reason"`
	model.Metadata
}

func (b *Booking) Cancelled() bool {
	return b.CancelledAt != nil
}
