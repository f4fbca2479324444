package merge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talent/internal/domains/availability/merge"
	"talent/internal/domains/availability/model"
	"talent/shared/constant"
)

func slot(id, candidateID, date, start, end, interviewType string) model.AvailabilitySlot {
	day, _ := time.Parse(constant.DateFormat, date)
	from, _ := time.Parse(constant.TimeFormat, start)
	until, _ := time.Parse(constant.TimeFormat, end)

	return model.AvailabilitySlot{
		ID:            id,
		CandidateID:   candidateID,
		SlotDate:      day,
		StartTime:     from,
		EndTime:       until,
		InterviewType: interviewType,
		Status:        constant.SlotStatusAvailable,
	}
}

func TestAdjacent_MergesTouchingSlots(t *testing.T) {
	slots := []model.AvailabilitySlot{
		slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
		slot("b", "cand-1", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnline),
	}

	merged, err := merge.Adjacent(slots)

	assert.NoError(t, err)
	assert.Len(t, merged, 1)
	assert.Equal(t, "09:00", merged[0].StartTime.Format(constant.TimeFormat))
	assert.Equal(t, "10:00", merged[0].EndTime.Format(constant.TimeFormat))
	assert.Equal(t, []string{"a", "b"}, merged[0].SlotIDs)
}

func TestAdjacent_GapKeepsRangesSeparate(t *testing.T) {
	slots := []model.AvailabilitySlot{
		slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
		slot("b", "cand-1", "2026-09-01", "09:45", "10:15", constant.InterviewTypeOnline),
	}

	merged, err := merge.Adjacent(slots)

	assert.NoError(t, err)
	assert.Len(t, merged, 2)
}

func TestAdjacent_DifferentTypeOrDateNeverMerges(t *testing.T) {
	tests := []struct {
		name  string
		slots []model.AvailabilitySlot
	}{
		{
			name: "different interview type",
			slots: []model.AvailabilitySlot{
				slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
				slot("b", "cand-1", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnsite),
			},
		},
		{
			name: "different day",
			slots: []model.AvailabilitySlot{
				slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
				slot("b", "cand-1", "2026-09-02", "09:30", "10:00", constant.InterviewTypeOnline),
			},
		},
		{
			name: "different candidate",
			slots: []model.AvailabilitySlot{
				slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
				slot("b", "cand-2", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnline),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := merge.Adjacent(tt.slots)

			assert.NoError(t, err)
			assert.Len(t, merged, 2)
		})
	}
}

func TestAdjacent_OverlapIsAnError(t *testing.T) {
	slots := []model.AvailabilitySlot{
		slot("a", "cand-1", "2026-09-01", "09:00", "09:45", constant.InterviewTypeOnline),
		slot("b", "cand-1", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnline),
	}

	merged, err := merge.Adjacent(slots)

	assert.Error(t, err)
	assert.Nil(t, merged)
	assert.Contains(t, err.Error(), "overlap")
}

func TestAdjacent_Idempotent(t *testing.T) {
	slots := []model.AvailabilitySlot{
		slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
		slot("b", "cand-1", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnline),
		slot("c", "cand-1", "2026-09-01", "11:00", "12:00", constant.InterviewTypeOnline),
	}

	once, err := merge.Adjacent(slots)
	assert.NoError(t, err)
	assert.Len(t, once, 2)

	// feed the merged ranges back in as slots; a second pass must not change them
	again := []model.AvailabilitySlot{}
	for _, m := range once {
		again = append(again, model.AvailabilitySlot{
			ID:            m.SlotIDs[0],
			CandidateID:   m.CandidateID,
			SlotDate:      m.SlotDate,
			StartTime:     m.StartTime,
			EndTime:       m.EndTime,
			InterviewType: m.InterviewType,
			Status:        constant.SlotStatusAvailable,
		})
	}

	twice, err := merge.Adjacent(again)
	assert.NoError(t, err)
	assert.Len(t, twice, len(once))

	for i := range once {
		assert.Equal(t, once[i].StartTime, twice[i].StartTime)
		assert.Equal(t, once[i].EndTime, twice[i].EndTime)
	}
}

func TestAdjacent_UnsortedInput(t *testing.T) {
	slots := []model.AvailabilitySlot{
		slot("c", "cand-1", "2026-09-01", "10:00", "10:30", constant.InterviewTypeOnline),
		slot("a", "cand-1", "2026-09-01", "09:00", "09:30", constant.InterviewTypeOnline),
		slot("b", "cand-1", "2026-09-01", "09:30", "10:00", constant.InterviewTypeOnline),
	}

	merged, err := merge.Adjacent(slots)

	assert.NoError(t, err)
	assert.Len(t, merged, 1)
	assert.Equal(t, []string{"a", "b", "c"}, merged[0].SlotIDs)
}
