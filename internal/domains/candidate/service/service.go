package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"talent/config"
	"talent/infras/otel"
	"talent/internal/domains/candidate/model"
	"talent/internal/domains/candidate/model/dto"
	"talent/internal/domains/candidate/repository"
	"talent/shared"
	"talent/shared/cache"
	"talent/shared/constant"
	gDto "talent/shared/dto"
	"talent/shared/failure"
	"talent/shared/timezone"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCandidate     = "candidate:get"
	cacheGetAllCandidates = "candidate:gets"
	cacheCountCandidates  = "candidate:count"
)

type Candidate interface {
	Create(ctx context.Context, req dto.CandidateRequest) (dto.CandidateResponse, error)
	Get(ctx context.Context, id string) (dto.CandidateResponse, error)
	GetByScheduleToken(ctx context.Context, token string) (model.Candidate, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.CandidateResponse, error)
	UpdateBufferConfig(ctx context.Context, id string, req dto.BufferConfigRequest) error
}

type serviceImpl struct {
	repo  repository.Candidate
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Candidate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Candidate {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CandidateRequest) (res dto.CandidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	candidate := req.ToModel(
		s.cfg.App.Scheduling.DefaultOnsiteBlockMinutes,
		s.cfg.App.Scheduling.DefaultOnlineBlockMinutes,
		user,
	)

	if err = s.repo.Insert(ctx, candidate); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("a candidate with this email already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create candidate")

		return res, fmt.Errorf("failed to create candidate: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCandidates)
		shared.InvalidateCaches(c, s.cache, cacheCountCandidates)
	}()

	return dto.NewCandidateResponse(candidate), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CandidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCandidate, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for candidate")

		return res, nil
	}

	candidate, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate")

		return res, fmt.Errorf("failed to get candidate: %w", err)
	}

	if candidate.ID == constant.Empty {
		return res, failure.NotFound("candidate not found") // nolint:wrapcheck
	}

	res = dto.NewCandidateResponse(candidate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save candidate to cache")
		}
	}()

	return res, nil
}

// GetByScheduleToken resolves the public, unguessable schedule token to its
// owning candidate. Callers on the public surface get the full model because
// they need the buffer configuration, not just display fields.
func (s *serviceImpl) GetByScheduleToken(ctx context.Context, token string) (candidate model.Candidate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByScheduleToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == constant.Empty {
		return candidate, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	candidate, err = s.repo.Get(ctx, shared.FilterByID(token, model.FieldScheduleToken, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate by schedule token")

		return candidate, fmt.Errorf("failed to get candidate by schedule token: %w", err)
	}

	if candidate.ID == constant.Empty {
		return candidate, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	return candidate, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.CandidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCandidates, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for candidates")

		return res, nil
	}

	candidates, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidates")

		return res, fmt.Errorf("failed to get candidates: %w", err)
	}

	res = dto.NewCandidateResponses(candidates)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save candidates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateBufferConfig(ctx context.Context, id string, req dto.BufferConfigRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBufferConfig")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if candidate exists")

		return fmt.Errorf("failed to check if candidate exists: %w", err)
	}

	if !exist {
		return failure.NotFound("candidate not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldOnsiteBlockMinutes: req.OnsiteBlockMinutes,
		model.FieldOnlineBlockMinutes: req.OnlineBlockMinutes,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update candidate buffer config")

		return fmt.Errorf("failed to update candidate buffer config: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCandidate, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete candidate from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCandidates)
	}()

	return nil
}
