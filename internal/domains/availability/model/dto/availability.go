package dto

import (
	"fmt"
	"talent/internal/domains/availability/merge"
	"talent/internal/domains/availability/model"
	"talent/shared/constant"
	"talent/shared/timezone"

	"github.com/google/uuid"
)

type SlotInput struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	InterviewType string `json:"interviewType" validate:"required,oneof=online onsite"`
}

type CreateSlotsRequest struct {
	CandidateID string      `json:"candidateId" validate:"required,uuid"`
	Slots       []SlotInput `json:"slots" validate:"required,min=1,max=200,dive"`
}

// ToModels parses and validates the declared windows. Slots in the past or
// with a non-positive duration are rejected as a whole; the bulk insert is
// all-or-nothing.
func (r *CreateSlotsRequest) ToModels(userID string) ([]model.AvailabilitySlot, error) {
	today := timezone.Today()
	now := timezone.Now()
	slots := make([]model.AvailabilitySlot, 0, len(r.Slots))

	for i, input := range r.Slots {
		day, err := timezone.Parse(constant.DateFormat, input.Date)
		if err != nil {
			return nil, fmt.Errorf("slot %d: invalid date %q", i, input.Date)
		}

		if day.Before(today) {
			return nil, fmt.Errorf("slot %d: date %s is in the past", i, input.Date)
		}

		start, err := timezone.Parse(constant.TimeFormat, input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: invalid start time %q", i, input.StartTime)
		}

		end, err := timezone.Parse(constant.TimeFormat, input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: invalid end time %q", i, input.EndTime)
		}

		if !end.After(start) {
			return nil, fmt.Errorf("slot %d: end time must be after start time", i)
		}

		slot := model.AvailabilitySlot{
			ID:            uuid.New().String(),
			CandidateID:   r.CandidateID,
			SlotDate:      day,
			StartTime:     start,
			EndTime:       end,
			InterviewType: input.InterviewType,
			Status:        constant.SlotStatusAvailable,
		}
		slot.CreatedAt = now
		slot.CreatedBy = userID
		slot.ModifiedAt = now
		slot.ModifiedBy = userID

		slots = append(slots, slot)
	}

	return slots, nil
}

type SlotResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	InterviewType string `json:"interviewType"`
	Status        string `json:"status"`
}

func NewSlotResponse(slot model.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:            slot.ID,
		Date:          slot.SlotDate.Format(constant.DateFormat),
		StartTime:     slot.StartTime.Format(constant.TimeFormat),
		EndTime:       slot.EndTime.Format(constant.TimeFormat),
		InterviewType: slot.InterviewType,
		Status:        slot.Status,
	}
}

func NewSlotResponses(slots []model.AvailabilitySlot) []SlotResponse {
	responses := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, NewSlotResponse(slot))
	}

	return responses
}

// MergedRangeResponse is one display range on the public schedule. SlotIDs
// lists the stored slots backing the range; booking always targets one of
// those ids, never the display range itself.
type MergedRangeResponse struct {
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	InterviewType string   `json:"interviewType"`
	SlotIDs       []string `json:"slotIds"`
}

type ScheduleResponse struct {
	CandidateName      string                `json:"candidateName"`
	OnsiteBlockMinutes int                   `json:"onsiteBlockMinutes"`
	OnlineBlockMinutes int                   `json:"onlineBlockMinutes"`
	Slots              []MergedRangeResponse `json:"slots"`
}

func NewMergedRangeResponses(ranges []merge.Merged) []MergedRangeResponse {
	responses := make([]MergedRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		responses = append(responses, MergedRangeResponse{
			Date:          r.SlotDate.Format(constant.DateFormat),
			StartTime:     r.StartTime.Format(constant.TimeFormat),
			EndTime:       r.EndTime.Format(constant.TimeFormat),
			InterviewType: r.InterviewType,
			SlotIDs:       r.SlotIDs,
		})
	}

	return responses
}
