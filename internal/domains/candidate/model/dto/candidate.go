package dto

import (
	"talent/internal/domains/candidate/model"
	"talent/shared/timezone"

	"github.com/google/uuid"
)

type CandidateRequest struct {
	FullName           string `json:"fullName" validate:"required,max=120"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"omitempty,max=32"`
	OnsiteBlockMinutes *int   `json:"onsiteBlockMinutes" validate:"omitempty,min=0,max=1440"`
	OnlineBlockMinutes *int   `json:"onlineBlockMinutes" validate:"omitempty,min=0,max=1440"`
}

func (r *CandidateRequest) ToModel(defaultOnsite, defaultOnline int, userID string) model.Candidate {
	candidate := model.Candidate{
		ID:                 uuid.New().String(),
		FullName:           r.FullName,
		Email:              r.Email,
		Phone:              r.Phone,
		ScheduleToken:      uuid.New().String(),
		OnsiteBlockMinutes: defaultOnsite,
		OnlineBlockMinutes: defaultOnline,
	}
	if r.OnsiteBlockMinutes != nil {
		candidate.OnsiteBlockMinutes = *r.OnsiteBlockMinutes
	}
	if r.OnlineBlockMinutes != nil {
		candidate.OnlineBlockMinutes = *r.OnlineBlockMinutes
	}

	now := timezone.Now()
	candidate.CreatedAt = now
	candidate.CreatedBy = userID
	candidate.ModifiedAt = now
	candidate.ModifiedBy = userID

	return candidate
}

type BufferConfigRequest struct {
	OnsiteBlockMinutes int `json:"onsiteBlockMinutes" validate:"min=0,max=1440"`
	OnlineBlockMinutes int `json:"onlineBlockMinutes" validate:"min=0,max=1440"`
}

type CandidateResponse struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	ScheduleToken      string `json:"scheduleToken"`
	OnsiteBlockMinutes int    `json:"onsiteBlockMinutes"`
	OnlineBlockMinutes int    `json:"onlineBlockMinutes"`
}

func NewCandidateResponse(candidate model.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:                 candidate.ID,
		FullName:           candidate.FullName,
		Email:              candidate.Email,
		Phone:              candidate.Phone,
		ScheduleToken:      candidate.ScheduleToken,
		OnsiteBlockMinutes: candidate.OnsiteBlockMinutes,
		OnlineBlockMinutes: candidate.OnlineBlockMinutes,
	}
}

func NewCandidateResponses(candidates []model.Candidate) []CandidateResponse {
	responses := make([]CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		responses = append(responses, NewCandidateResponse(candidate))
	}

	return responses
}
