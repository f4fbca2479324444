package dto

import (
	"talent/internal/domains/booking/model"
	"talent/shared/constant"
	"talent/shared/timezone"

	"github.com/google/uuid"
)

type BookRequest struct {
	SlotID         string `json:"slotId" validate:"required,uuid"`
	InterviewType  string `json:"interviewType" validate:"required,oneof=online onsite both"`
	ApplicantName  string `json:"applicantName" validate:"required,max=120"`
	ApplicantEmail string `json:"applicantEmail" validate:"required,email"`
	ApplicantPhone string `json:"applicantPhone" validate:"omitempty,max=32"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *BookRequest) ToModel(candidateID string) model.Booking {
	booking := model.Booking{
		ID:             uuid.New().String(),
		SlotID:         r.SlotID,
		CandidateID:    candidateID,
		InterviewType:  r.InterviewType,
		ApplicantName:  r.ApplicantName,
		ApplicantEmail: r.ApplicantEmail,
		ApplicantPhone: r.ApplicantPhone,
		Notes:          r.Notes,
	}

	now := timezone.Now()
	booking.CreatedAt = now
	booking.CreatedBy = r.ApplicantEmail
	booking.ModifiedAt = now
	booking.ModifiedBy = r.ApplicantEmail

	return booking
}

type CancelRequest struct {
	ApplicantEmail string `json:"applicantEmail" validate:"required,email"`
	Reason         string `json:"reason" validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	SlotID         string `json:"slotId"`
	InterviewType  string `json:"interviewType"`
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	CancelledAt    string `json:"cancelledAt,omitempty"`
}

// NewBookingResponse renders the booking together with its slot's window.
func NewBookingResponse(booking model.Booking, date, start, end string) BookingResponse {
	res := BookingResponse{
		ID:             booking.ID,
		SlotID:         booking.SlotID,
		InterviewType:  booking.InterviewType,
		ApplicantName:  booking.ApplicantName,
		ApplicantEmail: booking.ApplicantEmail,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
	}

	if booking.CancelledAt != nil {
		res.CancelledAt = timezone.Format(*booking.CancelledAt, constant.DateFormat+" "+constant.TimeFormat)
	}

	return res
}
