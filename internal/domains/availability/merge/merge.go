// Package merge implements coalescing of adjacent availability slots.
//
// The same algorithm backs two consumers: the public schedule listing merges
// transiently for display, and the cancellation flow merges persistently
// after a blocked window is released. Keeping one implementation guarantees
// the two views can never disagree.
package merge

import (
	"fmt"
	"sort"
	"time"

	"talent/internal/domains/availability/model"
)

// Merged is one coalesced availability range together with the stored slots
// it absorbed, in chronological order. A range built from a single slot has
// exactly one SlotID.
type Merged struct {
	CandidateID   string
	SlotDate      time.Time
	StartTime     time.Time
	EndTime       time.Time
	InterviewType string
	SlotIDs       []string
}

type groupKey struct {
	candidateID   string
	date          string
	interviewType string
}

// Adjacent coalesces slots whose windows touch exactly (one's end equals the
// next's start). Slots merge only within the same candidate, calendar day and
// interview type; gaps keep ranges separate. Overlapping windows indicate
// corrupted data and return an error rather than being silently absorbed.
//
// Callers pass available slots only; the input is not mutated.
func Adjacent(slots []model.AvailabilitySlot) ([]Merged, error) {
	grouped := map[groupKey][]model.AvailabilitySlot{}
	order := []groupKey{}

	for _, slot := range slots {
		key := groupKey{
			candidateID:   slot.CandidateID,
			date:          slot.SlotDate.Format("2006-01-02"),
			interviewType: slot.InterviewType,
		}

		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}

		grouped[key] = append(grouped[key], slot)
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].date != order[j].date {
			return order[i].date < order[j].date
		}
		if order[i].candidateID != order[j].candidateID {
			return order[i].candidateID < order[j].candidateID
		}

		return order[i].interviewType < order[j].interviewType
	})

	merged := []Merged{}

	for _, key := range order {
		group := grouped[key]

		sort.Slice(group, func(i, j int) bool {
			return group[i].StartAt().Before(group[j].StartAt())
		})

		ranges, err := mergeGroup(group)
		if err != nil {
			return nil, err
		}

		merged = append(merged, ranges...)
	}

	return merged, nil
}

func mergeGroup(group []model.AvailabilitySlot) ([]Merged, error) {
	ranges := []Merged{}

	var current *Merged

	for _, slot := range group {
		if current == nil {
			current = newRange(slot)

			continue
		}

		start := slot.StartAt()
		end := current.endAt()

		switch {
		case start.Before(end):
			return nil, fmt.Errorf(
				"availability slots overlap: %s conflicts with range ending %s on %s",
				slot.ID, current.EndTime.Format("15:04"), current.SlotDate.Format("2006-01-02"),
			)
		case start.Equal(end):
			current.EndTime = slot.EndTime
			current.SlotIDs = append(current.SlotIDs, slot.ID)
		default:
			ranges = append(ranges, *current)
			current = newRange(slot)
		}
	}

	if current != nil {
		ranges = append(ranges, *current)
	}

	return ranges, nil
}

func newRange(slot model.AvailabilitySlot) *Merged {
	return &Merged{
		CandidateID:   slot.CandidateID,
		SlotDate:      slot.SlotDate,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		InterviewType: slot.InterviewType,
		SlotIDs:       []string{slot.ID},
	}
}

func (m *Merged) endAt() time.Time {
	return time.Date(
		m.SlotDate.Year(), m.SlotDate.Month(), m.SlotDate.Day(),
		m.EndTime.Hour(), m.EndTime.Minute(), 0, 0,
		m.SlotDate.Location(),
	)
}
