package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talent/config"
	"talent/infras/otel/mocks"
	availabilityMocks "talent/internal/domains/availability/mocks"
	"talent/internal/domains/availability/model"
	"talent/internal/domains/availability/model/dto"
	"talent/internal/domains/availability/service"
	candidateMocks "talent/internal/domains/candidate/mocks"
	candidateModel "talent/internal/domains/candidate/model"
	cacheMocks "talent/shared/cache/mocks"
	"talent/shared/constant"
	"talent/shared/failure"
	"talent/shared/timezone"
)

func newFixtures(t *testing.T) (*availabilityMocks.MockAvailability, *candidateMocks.MockCandidate, *cacheMocks.MockRedisCache, service.Availability) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockCandidateRepo := candidateMocks.NewMockCandidate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, mockCandidateRepo, cfg, mockCache, mocks.NewOtel())

	return mockRepo, mockCandidateRepo, mockCache, svc
}

func futureDate(days int) string {
	return timezone.Now().AddDate(0, 0, days).Format(constant.DateFormat)
}

func TestAvailabilityService_CreateSlots(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateSlotsRequest
		setupMock func(repo *availabilityMocks.MockAvailability, candidates *candidateMocks.MockCandidate, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "valid slots are stored unmerged",
			req: dto.CreateSlotsRequest{
				CandidateID: "cand-1",
				Slots: []dto.SlotInput{
					{Date: futureDate(1), StartTime: "09:00", EndTime: "09:30", InterviewType: constant.InterviewTypeOnline},
					{Date: futureDate(1), StartTime: "09:30", EndTime: "10:00", InterviewType: constant.InterviewTypeOnline},
				},
			},
			setupMock: func(repo *availabilityMocks.MockAvailability, candidates *candidateMocks.MockCandidate, cache *cacheMocks.MockRedisCache) {
				candidates.EXPECT().Get(gomock.Any(), gomock.Any()).Return(candidateModel.Candidate{ID: "cand-1", ScheduleToken: "tok-1"}, nil)
				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, slots []model.AvailabilitySlot) error {
						assert.Len(t, slots, 2)
						assert.Equal(t, constant.SlotStatusAvailable, slots[0].Status)

						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "unknown candidate",
			req: dto.CreateSlotsRequest{
				CandidateID: "missing",
				Slots:       []dto.SlotInput{{Date: futureDate(1), StartTime: "09:00", EndTime: "09:30", InterviewType: constant.InterviewTypeOnline}},
			},
			setupMock: func(_ *availabilityMocks.MockAvailability, candidates *candidateMocks.MockCandidate, _ *cacheMocks.MockRedisCache) {
				candidates.EXPECT().Get(gomock.Any(), gomock.Any()).Return(candidateModel.Candidate{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "past date rejected",
			req: dto.CreateSlotsRequest{
				CandidateID: "cand-1",
				Slots:       []dto.SlotInput{{Date: "2020-01-01", StartTime: "09:00", EndTime: "09:30", InterviewType: constant.InterviewTypeOnline}},
			},
			setupMock: func(_ *availabilityMocks.MockAvailability, candidates *candidateMocks.MockCandidate, _ *cacheMocks.MockRedisCache) {
				candidates.EXPECT().Get(gomock.Any(), gomock.Any()).Return(candidateModel.Candidate{ID: "cand-1"}, nil)
			},
			wantCode: 400,
		},
		{
			name: "end before start rejected",
			req: dto.CreateSlotsRequest{
				CandidateID: "cand-1",
				Slots:       []dto.SlotInput{{Date: futureDate(1), StartTime: "10:00", EndTime: "09:30", InterviewType: constant.InterviewTypeOnline}},
			},
			setupMock: func(_ *availabilityMocks.MockAvailability, candidates *candidateMocks.MockCandidate, _ *cacheMocks.MockRedisCache) {
				candidates.EXPECT().Get(gomock.Any(), gomock.Any()).Return(candidateModel.Candidate{ID: "cand-1"}, nil)
			},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockCandidateRepo, mockCache, svc := newFixtures(t)
			tt.setupMock(mockRepo, mockCandidateRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "recruiter-1")
			res, err := svc.CreateSlots(ctx, tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, len(tt.req.Slots))
		})
	}
}

func TestAvailabilityService_ListSchedule(t *testing.T) {
	candidate := candidateModel.Candidate{
		ID:                 "cand-1",
		FullName:           "Jordan Smith",
		ScheduleToken:      "tok-1",
		OnsiteBlockMinutes: 120,
		OnlineBlockMinutes: 30,
	}

	day, _ := timezone.Parse(constant.DateFormat, futureDate(2))
	nine, _ := time.Parse(constant.TimeFormat, "09:00")
	nineThirty, _ := time.Parse(constant.TimeFormat, "09:30")
	ten, _ := time.Parse(constant.TimeFormat, "10:00")

	t.Run("adjacent slots collapse into one range", func(t *testing.T) {
		mockRepo, _, mockCache, svc := newFixtures(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().
			ListFutureAvailable(gomock.Any(), "cand-1", gomock.Any()).
			Return([]model.AvailabilitySlot{
				{ID: "a", CandidateID: "cand-1", SlotDate: day, StartTime: nine, EndTime: nineThirty, InterviewType: constant.InterviewTypeOnline, Status: constant.SlotStatusAvailable},
				{ID: "b", CandidateID: "cand-1", SlotDate: day, StartTime: nineThirty, EndTime: ten, InterviewType: constant.InterviewTypeOnline, Status: constant.SlotStatusAvailable},
			}, nil)

		res, err := svc.ListSchedule(context.Background(), candidate)

		assert.NoError(t, err)
		assert.Equal(t, "Jordan Smith", res.CandidateName)
		assert.Equal(t, 120, res.OnsiteBlockMinutes)
		assert.Len(t, res.Slots, 1)
		assert.Equal(t, "09:00", res.Slots[0].StartTime)
		assert.Equal(t, "10:00", res.Slots[0].EndTime)
		assert.Equal(t, []string{"a", "b"}, res.Slots[0].SlotIDs)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo, _, mockCache, svc := newFixtures(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListFutureAvailable(gomock.Any(), "cand-1", gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.ListSchedule(context.Background(), candidate)

		assert.Error(t, err)
	})
}
