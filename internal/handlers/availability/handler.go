package availability

import (
	"net/http"
	"talent/infras/otel"
	"talent/internal/domains/availability/model/dto"
	"talent/internal/domains/availability/service"
	"talent/shared/constant"
	"talent/shared/validator"
	"talent/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSlots)
		routerGroup.Get("/{id}", handler.GetCandidateSlots)
	})
}

// CreateSlots records new availability slots for a candidate.
// @Summary Create availability slots
// @Description Record a batch of availability slots for a candidate. Adjacent slots are kept as stored and merged on read.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotsRequest true "Create Slots Request"
// @Success 201 {object} response.Data[dto.SlotResponse] "Slots created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [post]
// @Security BearerAuth
func (handler *Handler) CreateSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlots")
	defer scope.End()

	req := dto.CreateSlotsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.CreateSlots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability slots")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability slots created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, slots)
}

// GetCandidateSlots retrieves a candidate's future slots in every status.
// @Summary Get a candidate's slots
// @Description Retrieve all future slots for a candidate, including booked and blocked ones, unmerged.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} response.Data[dto.SlotResponse] "List of slots"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCandidateSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCandidateSlots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	slots, err := handler.service.ListOwn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get candidate slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Candidate slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
