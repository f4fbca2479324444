package model

import (
	"talent/shared/constant"
	"talent/shared/model"
)

const (
	TableName  = "candidates"
	EntityName = "candidate"

	FieldID                 = "id"
	FieldFullName           = "full_name"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldScheduleToken      = "schedule_token"
	FieldOnsiteBlockMinutes = "onsite_block_minutes"
	FieldOnlineBlockMinutes = "online_block_minutes"
)

// Candidate owns a public scheduling page. The schedule token is the
// unguessable handle applicants use to reach it; the block minutes pad the
// cross-format conflict window around that candidate's booked interviews.
type Candidate struct {
	ID                 string `db:"id"`
	FullName           string `db:"full_name"`
	Email              string `db:"email"`
	Phone              string `db:"phone"`
	ScheduleToken      string `db:"schedule_token"`
	OnsiteBlockMinutes int    `db:"onsite_block_minutes"`
	OnlineBlockMinutes int    `db:"online_block_minutes"`
	model.Metadata
}

// BufferMinutes returns the block minutes applied around a booking of the
// given interview type. A negotiated "both" interview takes the larger of
// the two buffers.
func (c *Candidate) BufferMinutes(interviewType string) int {
	switch interviewType {
	case constant.InterviewTypeOnsite:
		return c.OnsiteBlockMinutes
	case constant.InterviewTypeOnline:
		return c.OnlineBlockMinutes
	default:
		return max(c.OnsiteBlockMinutes, c.OnlineBlockMinutes)
	}
}
