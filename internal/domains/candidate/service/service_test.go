package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"talent/config"
	"talent/infras/otel/mocks"
	candidateMocks "talent/internal/domains/candidate/mocks"
	"talent/internal/domains/candidate/model"
	"talent/internal/domains/candidate/model/dto"
	"talent/internal/domains/candidate/service"
	cacheMocks "talent/shared/cache/mocks"
	"talent/shared/constant"
	"talent/shared/failure"
	gModel "talent/shared/model"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Scheduling.DefaultOnsiteBlockMinutes = 120
	cfg.App.Scheduling.DefaultOnlineBlockMinutes = 30

	return cfg
}

func TestCandidateService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := candidateMocks.NewMockCandidate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CandidateRequest
		setupMock func()
		check     func(t *testing.T, res dto.CandidateResponse, err error)
	}{
		{
			name: "successful creation with default buffers",
			req: dto.CandidateRequest{
				FullName: "Jordan Smith",
				Email:    "jordan@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.CandidateResponse, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.NotEmpty(t, res.ScheduleToken)
				assert.Equal(t, 120, res.OnsiteBlockMinutes)
				assert.Equal(t, 30, res.OnlineBlockMinutes)
			},
		},
		{
			name: "explicit buffers override defaults",
			req: dto.CandidateRequest{
				FullName:           "Jordan Smith",
				Email:              "jordan@example.com",
				OnsiteBlockMinutes: intPtr(90),
				OnlineBlockMinutes: intPtr(15),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.CandidateResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 90, res.OnsiteBlockMinutes)
				assert.Equal(t, 15, res.OnlineBlockMinutes)
			},
		},
		{
			name: "repository error",
			req: dto.CandidateRequest{
				FullName: "Jordan Smith",
				Email:    "jordan@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			check: func(t *testing.T, _ dto.CandidateResponse, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			tt.check(t, res, err)
		})
	}
}

func TestCandidateService_GetByScheduleToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := candidateMocks.NewMockCandidate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		token     string
		setupMock func()
		wantErr   error
	}{
		{
			name:  "token resolves to candidate",
			token: "tok-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Candidate{ID: "cand-1", ScheduleToken: "tok-1"}, nil)
			},
		},
		{
			name:  "unknown token is not found",
			token: "tok-unknown",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Candidate{}, nil)
			},
			wantErr: failure.NotFound("schedule not found"),
		},
		{
			name:      "empty token is not found without hitting the repository",
			token:     "",
			setupMock: func() {},
			wantErr:   failure.NotFound("schedule not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			candidate, err := svc.GetByScheduleToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, failure.GetCode(tt.wantErr), failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.token, candidate.ScheduleToken)
		})
	}
}

func TestCandidateService_UpdateBufferConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := candidateMocks.NewMockCandidate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	t.Run("updates both buffers", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 60, fields[model.FieldOnsiteBlockMinutes])
				assert.Equal(t, 10, fields[model.FieldOnlineBlockMinutes])

				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "recruiter-1")
		err := svc.UpdateBufferConfig(ctx, "cand-1", dto.BufferConfigRequest{
			OnsiteBlockMinutes: 60,
			OnlineBlockMinutes: 10,
		})

		assert.NoError(t, err)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.UpdateBufferConfig(context.Background(), "missing", dto.BufferConfigRequest{})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCandidate_BufferMinutes(t *testing.T) {
	candidate := model.Candidate{
		OnsiteBlockMinutes: 120,
		OnlineBlockMinutes: 30,
		Metadata:           gModel.Metadata{},
	}

	assert.Equal(t, 120, candidate.BufferMinutes(constant.InterviewTypeOnsite))
	assert.Equal(t, 30, candidate.BufferMinutes(constant.InterviewTypeOnline))
	assert.Equal(t, 120, candidate.BufferMinutes(constant.InterviewTypeBoth))
}

func intPtr(v int) *int {
	return &v
}
