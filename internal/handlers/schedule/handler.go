package schedule

import (
	"net/http"
	"talent/infras/otel"
	availabilityService "talent/internal/domains/availability/service"
	bookingDto "talent/internal/domains/booking/model/dto"
	bookingService "talent/internal/domains/booking/service"
	candidateService "talent/internal/domains/candidate/service"
	"talent/shared/constant"
	"talent/shared/ratelimit"
	"talent/shared/validator"
	"talent/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler serves the public, token-addressed scheduling surface used by
// applicants. None of its routes require authentication; possession of a
// candidate's schedule token is the only credential.
type Handler struct {
	candidateService    candidateService.Candidate
	availabilityService availabilityService.Availability
	bookingService      bookingService.Booking
	otel                otel.Otel
}

func New(
	candidateService candidateService.Candidate,
	availabilityService availabilityService.Availability,
	bookingService bookingService.Booking,
	otel otel.Otel,
) Handler {
	return Handler{
		candidateService:    candidateService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		otel:                otel,
	}
}

// Router registers the public routes. Each route carries its own rate limit
// preset since browsing a schedule and writing bookings tolerate very
// different request volumes.
func (handler *Handler) Router(router chi.Router, limit func(action string) func(http.Handler) http.Handler) {
	router.Route("/schedule/{token}", func(routerGroup chi.Router) {
		routerGroup.With(limit(ratelimit.ActionPublicScheduleView)).Get("/", handler.GetSchedule)
		routerGroup.With(limit(ratelimit.ActionPublicBooking)).Post("/book", handler.CreateBooking)
		routerGroup.With(limit(ratelimit.ActionPublicBooking)).Post("/bookings/{bookingID}/cancel", handler.CancelBooking)
	})
}

// GetSchedule retrieves a candidate's public schedule by token.
// @Summary Get a schedule by token
// @Description Retrieve a candidate's buffer configuration and merged future availability.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param token path string true "Schedule Token"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{token} [get]
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	candidate, err := handler.candidateService.GetByScheduleToken(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve schedule token")

		response.WithError(w, err)

		return
	}

	schedule, err := handler.availabilityService.ListSchedule(ctx, candidate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// CreateBooking books a slot on a candidate's schedule.
// @Summary Book a slot
// @Description Book an available slot by its stored slot ID, blocking overlapping slots of the other format.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param token path string true "Schedule Token"
// @Param request body dto.BookRequest true "Book Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{token}/book [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	req := bookingDto.BookRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	candidate, err := handler.candidateService.GetByScheduleToken(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve schedule token")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookingService.Book(ctx, candidate, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// CancelBooking cancels a booking on a candidate's schedule.
// @Summary Cancel a booking
// @Description Cancel a booking by ID, releasing the booked slot, lifting its blocks, and re-merging adjacent slots.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param token path string true "Schedule Token"
// @Param bookingID path string true "Booking ID"
// @Param request body dto.CancelRequest true "Cancel Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking cancelled successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{token}/bookings/{bookingID}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	req := bookingDto.CancelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	candidate, err := handler.candidateService.GetByScheduleToken(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve schedule token")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookingService.Cancel(ctx, candidate, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithJSON(w, http.StatusOK, booking)
}
