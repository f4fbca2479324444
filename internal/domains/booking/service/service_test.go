package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talent/infras/otel/mocks"
	transactorMocks "talent/infras/postgres/mocks"
	availabilityMocks "talent/internal/domains/availability/mocks"
	availabilityModel "talent/internal/domains/availability/model"
	bookingMocks "talent/internal/domains/booking/mocks"
	"talent/internal/domains/booking/model"
	"talent/internal/domains/booking/model/dto"
	"talent/internal/domains/booking/service"
	candidateModel "talent/internal/domains/candidate/model"
	eventMocks "talent/internal/events/mocks"
	"talent/shared/constant"
	"talent/shared/failure"
	"talent/shared/timezone"
)

type fixtures struct {
	repo         *bookingMocks.MockBooking
	slotRepo     *availabilityMocks.MockAvailability
	availability *availabilityMocks.MockAvailabilityService
	publisher    *eventMocks.MockPublisher
	svc          service.Booking
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixtures{
		repo:         bookingMocks.NewMockBooking(ctrl),
		slotRepo:     availabilityMocks.NewMockAvailability(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
	}

	// post-commit notifications run on a goroutine; tolerate either timing
	f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()
	f.publisher.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).AnyTimes()
	f.availability.EXPECT().InvalidateSchedule(gomock.Any(), gomock.Any()).AnyTimes()

	f.svc = service.New(f.repo, f.slotRepo, f.availability, transactorMocks.NewTransactor(), f.publisher, mocks.NewOtel())

	return f
}

var testCandidate = candidateModel.Candidate{
	ID:                 "cand-1",
	FullName:           "Jordan Smith",
	ScheduleToken:      "tok-1",
	OnsiteBlockMinutes: 120,
	OnlineBlockMinutes: 30,
}

func makeSlot(id, interviewType, status, start, end string, daysAhead int) availabilityModel.AvailabilitySlot {
	day := timezone.Today().AddDate(0, 0, daysAhead)
	from, _ := time.Parse(constant.TimeFormat, start)
	until, _ := time.Parse(constant.TimeFormat, end)

	return availabilityModel.AvailabilitySlot{
		ID:            id,
		CandidateID:   "cand-1",
		SlotDate:      day,
		StartTime:     from,
		EndTime:       until,
		InterviewType: interviewType,
		Status:        status,
	}
}

func validBookRequest(slotID, interviewType string) dto.BookRequest {
	return dto.BookRequest{
		SlotID:         slotID,
		InterviewType:  interviewType,
		ApplicantName:  "Alex Doe",
		ApplicantEmail: "alex@example.com",
	}
}

func TestBookingService_Book_BlocksOppositeFormatWithinBuffer(t *testing.T) {
	f := newFixtures(t)

	// onsite 10:00-11:00 booked with a 120 minute onsite buffer blocks
	// online slots overlapping 08:00-13:00
	booked := makeSlot("slot-onsite", constant.InterviewTypeOnsite, constant.SlotStatusAvailable, "10:00", "11:00", 1)
	inside := makeSlot("online-inside", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "08:30", "09:00", 1)
	edge := makeSlot("online-edge", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "12:30", "13:00", 1)
	outside := makeSlot("online-outside", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "13:00", "13:30", 1)

	f.slotRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booked, nil)
	f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
			assert.Equal(t, constant.SlotStatusBooked, fields[availabilityModel.FieldStatus])

			return nil
		})
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.slotRepo.EXPECT().
		ListAroundDateTx(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), constant.InterviewTypeOnline, constant.SlotStatusAvailable).
		Return([]availabilityModel.AvailabilitySlot{inside, edge, outside}, nil)
	f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, fields map[string]any, filter any) error {
			assert.Equal(t, constant.SlotStatusBlocked, fields[availabilityModel.FieldStatus])
			assert.Equal(t, "slot-onsite", fields[availabilityModel.FieldBlockedBy])

			return nil
		})

	res, err := f.svc.Book(context.Background(), testCandidate, validBookRequest("slot-onsite", constant.InterviewTypeOnsite))

	assert.NoError(t, err)
	assert.Equal(t, "slot-onsite", res.SlotID)
	assert.Equal(t, "10:00", res.StartTime)
}

func TestBookingService_Book_OnlineBufferIsNarrower(t *testing.T) {
	f := newFixtures(t)

	// online 10:00-11:00 with a 30 minute online buffer blocks onsite slots
	// overlapping 09:30-11:30 only
	booked := makeSlot("slot-online", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "10:00", "11:00", 1)
	near := makeSlot("onsite-near", constant.InterviewTypeOnsite, constant.SlotStatusAvailable, "09:00", "09:45", 1)
	far := makeSlot("onsite-far", constant.InterviewTypeOnsite, constant.SlotStatusAvailable, "08:30", "09:30", 1)

	f.slotRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booked, nil)
	f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.slotRepo.EXPECT().
		ListAroundDateTx(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), constant.InterviewTypeOnsite, constant.SlotStatusAvailable).
		Return([]availabilityModel.AvailabilitySlot{near, far}, nil)

	blockedIDs := []string{}

	f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
			blockedIDs = append(blockedIDs, fields[availabilityModel.FieldBlockedBy].(string))

			return nil
		})

	_, err := f.svc.Book(context.Background(), testCandidate, validBookRequest("slot-online", constant.InterviewTypeOnline))

	assert.NoError(t, err)
	// only one block pass ran; the far slot touches 09:30 exactly and stays free
	assert.Equal(t, []string{"slot-online"}, blockedIDs)
}

func TestBookingService_Book_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		slot     availabilityModel.AvailabilitySlot
		req      dto.BookRequest
		wantCode int
	}{
		{
			name:     "already booked slot",
			slot:     makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusBooked, "10:00", "11:00", 1),
			req:      validBookRequest("slot-1", constant.InterviewTypeOnline),
			wantCode: 409,
		},
		{
			name:     "blocked slot",
			slot:     makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusBlocked, "10:00", "11:00", 1),
			req:      validBookRequest("slot-1", constant.InterviewTypeOnline),
			wantCode: 409,
		},
		{
			name:     "past date",
			slot:     makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "10:00", "11:00", -1),
			req:      validBookRequest("slot-1", constant.InterviewTypeOnline),
			wantCode: 409,
		},
		{
			name:     "interview type mismatch",
			slot:     makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "10:00", "11:00", 1),
			req:      validBookRequest("slot-1", constant.InterviewTypeOnsite),
			wantCode: 400,
		},
		{
			name:     "unknown slot",
			slot:     availabilityModel.AvailabilitySlot{},
			req:      validBookRequest("slot-missing", constant.InterviewTypeOnline),
			wantCode: 404,
		},
		{
			name: "slot belongs to another candidate",
			slot: func() availabilityModel.AvailabilitySlot {
				s := makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "10:00", "11:00", 1)
				s.CandidateID = "cand-other"

				return s
			}(),
			req:      validBookRequest("slot-1", constant.InterviewTypeOnline),
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtures(t)

			f.slotRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.slot, nil)

			_, err := f.svc.Book(context.Background(), testCandidate, tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_Book_InsertFailureAbortsTransaction(t *testing.T) {
	f := newFixtures(t)

	booked := makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "10:00", "11:00", 1)

	f.slotRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booked, nil)
	f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	_, err := f.svc.Book(context.Background(), testCandidate, validBookRequest("slot-1", constant.InterviewTypeOnline))

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func activeBooking(id, slotID string) model.Booking {
	return model.Booking{
		ID:             id,
		SlotID:         slotID,
		CandidateID:    "cand-1",
		InterviewType:  constant.InterviewTypeOnsite,
		ApplicantName:  "Alex Doe",
		ApplicantEmail: "alex@example.com",
	}
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("releases slot, lifts blocked back-refs and merges", func(t *testing.T) {
		f := newFixtures(t)

		booking := activeBooking("book-1", "slot-1")
		slot := makeSlot("slot-1", constant.InterviewTypeOnsite, constant.SlotStatusBooked, "10:00", "11:00", 1)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.NotNil(t, fields[model.FieldCancelledAt])
				assert.Equal(t, "changed plans", fields[model.FieldCancelReason])

				return nil
			})
		f.slotRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(slot, nil)

		// slot release, then blocked_by lift
		f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, constant.SlotStatusAvailable, fields[availabilityModel.FieldStatus])

				return nil
			}).Times(2)

		// persistent merge pass per format; no adjacency here
		f.slotRepo.EXPECT().
			ListAroundDateTx(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), gomock.Any(), constant.SlotStatusAvailable).
			Return(nil, nil).Times(2)

		res, err := f.svc.Cancel(context.Background(), testCandidate, "book-1", dto.CancelRequest{
			ApplicantEmail: "alex@example.com",
			Reason:         "changed plans",
		})

		assert.NoError(t, err)
		assert.Equal(t, "book-1", res.ID)
		assert.NotEmpty(t, res.CancelledAt)
	})

	t.Run("persistent merge widens the first slot and removes the rest", func(t *testing.T) {
		f := newFixtures(t)

		booking := activeBooking("book-1", "slot-1")
		slot := makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusBooked, "09:00", "09:30", 1)
		neighbor := makeSlot("slot-2", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "09:30", "10:00", 1)
		released := makeSlot("slot-1", constant.InterviewTypeOnline, constant.SlotStatusAvailable, "09:00", "09:30", 1)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slotRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(slot, nil)
		f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		f.slotRepo.EXPECT().
			ListAroundDateTx(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), constant.InterviewTypeOnline, constant.SlotStatusAvailable).
			Return([]availabilityModel.AvailabilitySlot{released, neighbor}, nil)
		f.slotRepo.EXPECT().
			ListAroundDateTx(gomock.Any(), gomock.Any(), "cand-1", gomock.Any(), constant.InterviewTypeOnsite, constant.SlotStatusAvailable).
			Return(nil, nil)

		// widen slot-1 to 09:00-10:00
		f.slotRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				end := fields[availabilityModel.FieldEndTime].(time.Time)
				assert.Equal(t, "10:00", end.Format(constant.TimeFormat))

				return nil
			})
		f.slotRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Cancel(context.Background(), testCandidate, "book-1", dto.CancelRequest{ApplicantEmail: "alex@example.com"})

		assert.NoError(t, err)
	})

	t.Run("error cases", func(t *testing.T) {
		cancelled := activeBooking("book-1", "slot-1")
		now := timezone.Now()
		cancelled.CancelledAt = &now

		foreign := activeBooking("book-1", "slot-1")
		foreign.CandidateID = "cand-other"

		tests := []struct {
			name     string
			booking  model.Booking
			req      dto.CancelRequest
			wantCode int
		}{
			{
				name:     "unknown booking",
				booking:  model.Booking{},
				req:      dto.CancelRequest{ApplicantEmail: "alex@example.com"},
				wantCode: 404,
			},
			{
				name:     "booking owned by another candidate's token",
				booking:  foreign,
				req:      dto.CancelRequest{ApplicantEmail: "alex@example.com"},
				wantCode: 403,
			},
			{
				name:     "wrong applicant email",
				booking:  activeBooking("book-1", "slot-1"),
				req:      dto.CancelRequest{ApplicantEmail: "stranger@example.com"},
				wantCode: 403,
			},
			{
				name:     "already cancelled",
				booking:  cancelled,
				req:      dto.CancelRequest{ApplicantEmail: "alex@example.com"},
				wantCode: 409,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixtures(t)

				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.booking, nil)

				_, err := f.svc.Cancel(context.Background(), testCandidate, "book-1", tt.req)

				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			})
		}
	})
}
