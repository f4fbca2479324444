package candidate

import (
	"net/http"
	"talent/infras/otel"
	"talent/internal/domains/candidate/model"
	"talent/internal/domains/candidate/model/dto"
	"talent/internal/domains/candidate/service"
	"talent/shared/constant"
	gDto "talent/shared/dto"
	"talent/shared/validator"
	"talent/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Candidate
	otel    otel.Otel
}

func New(service service.Candidate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/candidates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCandidate)
		routerGroup.Get("/", handler.GetCandidates)
		routerGroup.Get("/{id}", handler.GetCandidateByID)
		routerGroup.Patch("/{id}/buffers", handler.UpdateBufferConfig)
	})
}

// CreateCandidate registers a new candidate and issues their schedule token.
// @Summary Create a new candidate
// @Description Register a candidate with optional per-candidate buffer overrides.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param request body dto.CandidateRequest true "Create Candidate Request"
// @Success 201 {object} response.Data[dto.CandidateResponse] "Candidate created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/candidates [post]
// @Security BearerAuth
func (handler *Handler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCandidate")
	defer scope.End()

	req := dto.CandidateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	candidate, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create candidate")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Candidate created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, candidate)
}

// GetCandidates retrieves all candidates based on query parameters.
// @Summary Get all candidates
// @Description Retrieve all candidates with optional filtering and pagination.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.CandidateResponse] "List of candidates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/candidates [get]
// @Security BearerAuth
func (handler *Handler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCandidates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	email := r.URL.Query().Get(model.FieldEmail)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	candidates, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get candidates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Candidates retrieved successfully")

	response.WithJSON(w, http.StatusOK, candidates)
}

// GetCandidateByID retrieves a candidate by its ID.
// @Summary Get a candidate by ID
// @Description Retrieve a candidate by its unique identifier.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} response.Data[dto.CandidateResponse] "Candidate details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/candidates/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCandidateByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCandidateByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	candidate, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get candidate by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Candidate retrieved successfully")

	response.WithJSON(w, http.StatusOK, candidate)
}

// UpdateBufferConfig updates a candidate's blocking buffer configuration.
// @Summary Update a candidate's buffer configuration
// @Description Update the onsite and online blocking buffers for a candidate. Existing blocks are not recalculated.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body dto.BufferConfigRequest true "Buffer Config Request"
// @Success 200 {object} response.Message "Buffer configuration updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/candidates/{id}/buffers [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBufferConfig(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBufferConfig")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.BufferConfigRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateBufferConfig(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update buffer configuration")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Buffer configuration updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Buffer configuration updated successfully")
}
