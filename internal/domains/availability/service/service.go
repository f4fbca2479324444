package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"talent/config"
	"talent/infras/otel"
	"talent/internal/domains/availability/merge"
	"talent/internal/domains/availability/model"
	"talent/internal/domains/availability/model/dto"
	"talent/internal/domains/availability/repository"
	candidateModel "talent/internal/domains/candidate/model"
	candidateRepo "talent/internal/domains/candidate/repository"
	"talent/shared"
	"talent/shared/cache"
	"talent/shared/constant"
	gDto "talent/shared/dto"
	"talent/shared/failure"
	"talent/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSchedule = "schedule:get"
)

type Availability interface {
	CreateSlots(ctx context.Context, req dto.CreateSlotsRequest) ([]dto.SlotResponse, error)
	ListSchedule(ctx context.Context, candidate candidateModel.Candidate) (dto.ScheduleResponse, error)
	ListOwn(ctx context.Context, candidateID string) ([]dto.SlotResponse, error)
	InvalidateSchedule(ctx context.Context, scheduleToken string)
}

type serviceImpl struct {
	repo          repository.Availability
	candidateRepo candidateRepo.Candidate
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Availability, candidateRepo candidateRepo.Candidate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:          repo,
		candidateRepo: candidateRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// CreateSlots stores the declared windows at their original granularity.
// Nothing is coalesced at insert time; merging happens on read and after
// cancellations only.
func (s *serviceImpl) CreateSlots(ctx context.Context, req dto.CreateSlotsRequest) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	candidate, err := s.candidateRepo.Get(ctx, shared.FilterByID(req.CandidateID, candidateModel.FieldID, candidateModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate for slot creation")

		return res, fmt.Errorf("failed to get candidate for slot creation: %w", err)
	}

	if candidate.ID == constant.Empty {
		return res, failure.NotFound("candidate not found") // nolint:wrapcheck
	}

	slots, err := req.ToModels(user)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.repo.InsertBulk(ctx, slots); err != nil {
		log.Error().Err(err).Msg("failed to create availability slots")

		return res, fmt.Errorf("failed to create availability slots: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheSchedule, candidate.ScheduleToken))
	}()

	return dto.NewSlotResponses(slots), nil
}

// ListSchedule builds the public view: one snapshot read of the candidate's
// future available slots, coalesced for display. Stored rows are untouched.
func (s *serviceImpl) ListSchedule(ctx context.Context, candidate candidateModel.Candidate) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSchedule, candidate.ScheduleToken)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	slots, err := s.repo.ListFutureAvailable(ctx, candidate.ID, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to list future available slots")

		return res, fmt.Errorf("failed to list future available slots: %w", err)
	}

	ranges, err := merge.Adjacent(slots)
	if err != nil {
		log.Error().Err(err).Str("candidateID", candidate.ID).Msg("failed to merge availability slots")

		return res, fmt.Errorf("failed to merge availability slots: %w", err)
	}

	res = dto.ScheduleResponse{
		CandidateName:      candidate.FullName,
		OnsiteBlockMinutes: candidate.OnsiteBlockMinutes,
		OnlineBlockMinutes: candidate.OnlineBlockMinutes,
		Slots:              dto.NewMergedRangeResponses(ranges),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

// ListOwn returns the candidate's future slots at stored granularity, all
// statuses included. This is the recruiter's raw view.
func (s *serviceImpl) ListOwn(ctx context.Context, candidateID string) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCandidateID, Value: candidateID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldSlotDate, Value: timezone.Today(), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldSlotDate + ", " + model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	slots, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list own slots")

		return res, fmt.Errorf("failed to list own slots: %w", err)
	}

	return dto.NewSlotResponses(slots), nil
}

// InvalidateSchedule drops the cached public view after a mutation. Booking
// and cancellation call this from their post-commit path.
func (s *serviceImpl) InvalidateSchedule(ctx context.Context, scheduleToken string) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvalidateSchedule")
	defer scope.End()

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheSchedule, scheduleToken))
}
