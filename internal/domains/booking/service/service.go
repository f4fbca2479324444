package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"talent/infras/otel"
	"talent/infras/postgres"
	"talent/internal/domains/availability/merge"
	availabilityModel "talent/internal/domains/availability/model"
	availabilityRepo "talent/internal/domains/availability/repository"
	availabilitySvc "talent/internal/domains/availability/service"
	"talent/internal/domains/booking/model"
	"talent/internal/domains/booking/model/dto"
	"talent/internal/domains/booking/repository"
	candidateModel "talent/internal/domains/candidate/model"
	"talent/internal/events"
	"talent/shared"
	"talent/shared/constant"
	gDto "talent/shared/dto"
	"talent/shared/failure"
	"talent/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Book(ctx context.Context, candidate candidateModel.Candidate, req dto.BookRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, candidate candidateModel.Candidate, bookingID string, req dto.CancelRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	slotRepo     availabilityRepo.Availability
	availability availabilitySvc.Availability
	transactor   postgres.Transactor
	publisher    events.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	slotRepo availabilityRepo.Availability,
	availability availabilitySvc.Availability,
	transactor postgres.Transactor,
	publisher events.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		slotRepo:     slotRepo,
		availability: availability,
		transactor:   transactor,
		publisher:    publisher,
		otel:         otel,
	}
}

// Book claims a slot for an applicant. The whole operation runs in one
// transaction: the slot row is locked, checked, marked booked, the booking
// inserted and the cross-format buffer applied. Two applicants racing for
// the same slot serialize on the row lock; the loser sees status != available
// and gets a conflict. Nothing partial ever commits.
func (s *serviceImpl) Book(ctx context.Context, candidate candidateModel.Candidate, req dto.BookRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel(candidate.ID)

	var slot availabilityModel.AvailabilitySlot

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		slot, err = s.slotRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.SlotID, availabilityModel.FieldID, availabilityModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to lock slot for booking")

			return fmt.Errorf("failed to lock slot for booking: %w", err)
		}

		if slot.ID == constant.Empty || slot.CandidateID != candidate.ID {
			return failure.NotFound("slot not found") // nolint:wrapcheck
		}

		if slot.Status != constant.SlotStatusAvailable {
			return failure.SlotUnavailableError // nolint:wrapcheck
		}

		if slot.SlotDate.Before(timezone.Today()) {
			return failure.SlotUnavailableError // nolint:wrapcheck
		}

		if req.InterviewType != constant.InterviewTypeBoth && req.InterviewType != slot.InterviewType {
			return failure.BadRequestFromString("interview type does not match the slot") // nolint:wrapcheck
		}

		slotUpdate := map[string]any{
			availabilityModel.FieldStatus: constant.SlotStatusBooked,
			constant.FieldModifiedAt:      timezone.Now(),
			constant.FieldModifiedBy:      req.ApplicantEmail,
		}
		if err := s.slotRepo.UpdateTx(ctx, tx, slotUpdate, shared.FilterByID(slot.ID, availabilityModel.FieldID, availabilityModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to mark slot booked")

			return fmt.Errorf("failed to mark slot booked: %w", err)
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to insert booking")

			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.applyBuffer(ctx, tx, candidate, slot, booking)
	})
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.BookingCreated(c, events.BookingEvent{
			BookingID:      booking.ID,
			SlotID:         slot.ID,
			CandidateID:    candidate.ID,
			InterviewType:  booking.InterviewType,
			ApplicantEmail: booking.ApplicantEmail,
		})
		s.availability.InvalidateSchedule(c, candidate.ScheduleToken)
	}()

	return dto.NewBookingResponse(
		booking,
		slot.SlotDate.Format(constant.DateFormat),
		slot.StartTime.Format(constant.TimeFormat),
		slot.EndTime.Format(constant.TimeFormat),
	), nil
}

// applyBuffer blocks the candidate's available slots of the other format
// that fall inside the buffer window around the booked slot. Buffer minutes
// are keyed by the booked format; a "both" interview blocks both formats
// using the larger buffer. Blocked rows carry the booked slot's id so
// cancellation can release exactly them.
func (s *serviceImpl) applyBuffer(ctx context.Context, tx *sqlx.Tx, candidate candidateModel.Candidate, slot availabilityModel.AvailabilitySlot, booking model.Booking) error {
	buffer := time.Duration(candidate.BufferMinutes(booking.InterviewType)) * time.Minute
	windowStart := slot.StartAt().Add(-buffer)
	windowEnd := slot.EndAt().Add(buffer)

	for _, interviewType := range blockedTypes(booking.InterviewType) {
		slots, err := s.slotRepo.ListAroundDateTx(ctx, tx, candidate.ID, slot.SlotDate, interviewType, constant.SlotStatusAvailable)
		if err != nil {
			log.Error().Err(err).Msg("failed to list slots for buffer blocking")

			return fmt.Errorf("failed to list slots for buffer blocking: %w", err)
		}

		ids := []string{}

		for _, other := range slots {
			if other.ID == slot.ID {
				continue
			}

			if other.Overlaps(windowStart, windowEnd) {
				ids = append(ids, other.ID)
			}
		}

		if len(ids) == 0 {
			continue
		}

		update := map[string]any{
			availabilityModel.FieldStatus:    constant.SlotStatusBlocked,
			availabilityModel.FieldBlockedBy: slot.ID,
			constant.FieldModifiedAt:         timezone.Now(),
			constant.FieldModifiedBy:         booking.ApplicantEmail,
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: availabilityModel.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: availabilityModel.TableName},
			},
		}

		if err := s.slotRepo.UpdateTx(ctx, tx, update, filter); err != nil {
			log.Error().Err(err).Msg("failed to block buffered slots")

			return fmt.Errorf("failed to block buffered slots: %w", err)
		}
	}

	return nil
}

// Cancel releases a booking: the booking is marked cancelled (never
// deleted), its slot returns to available, the slots its buffer blocked are
// lifted, and adjacent available windows are re-coalesced. All inside one
// transaction.
func (s *serviceImpl) Cancel(ctx context.Context, candidate candidateModel.Candidate, bookingID string, req dto.CancelRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		booking model.Booking
		slot    availabilityModel.AvailabilitySlot
	)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to lock booking for cancellation")

			return fmt.Errorf("failed to lock booking for cancellation: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.CandidateID != candidate.ID {
			return failure.ResourceRestrictedError // nolint:wrapcheck
		}

		if booking.ApplicantEmail != req.ApplicantEmail {
			return failure.Forbidden("booking can only be cancelled by the applicant who made it") // nolint:wrapcheck
		}

		if booking.Cancelled() {
			return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
		}

		now := timezone.Now()
		booking.CancelledAt = &now
		booking.CancelReason = req.Reason

		bookingUpdate := map[string]any{
			model.FieldCancelledAt:   now,
			model.FieldCancelReason:  req.Reason,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: req.ApplicantEmail,
		}
		if err := s.repo.UpdateTx(ctx, tx, bookingUpdate, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to mark booking cancelled")

			return fmt.Errorf("failed to mark booking cancelled: %w", err)
		}

		slot, err = s.slotRepo.GetTx(ctx, tx, shared.FilterByID(booking.SlotID, availabilityModel.FieldID, availabilityModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booked slot")

			return fmt.Errorf("failed to get booked slot: %w", err)
		}

		slotUpdate := map[string]any{
			availabilityModel.FieldStatus: constant.SlotStatusAvailable,
			constant.FieldModifiedAt:      now,
			constant.FieldModifiedBy:      req.ApplicantEmail,
		}
		if err := s.slotRepo.UpdateTx(ctx, tx, slotUpdate, shared.FilterByID(slot.ID, availabilityModel.FieldID, availabilityModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to release booked slot")

			return fmt.Errorf("failed to release booked slot: %w", err)
		}

		if err := s.liftBlocked(ctx, tx, slot, req.ApplicantEmail); err != nil {
			return err
		}

		return s.mergePersistent(ctx, tx, candidate.ID, slot.SlotDate)
	})
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.BookingCancelled(c, events.BookingEvent{
			BookingID:      booking.ID,
			SlotID:         slot.ID,
			CandidateID:    candidate.ID,
			InterviewType:  booking.InterviewType,
			ApplicantEmail: booking.ApplicantEmail,
		})
		s.availability.InvalidateSchedule(c, candidate.ScheduleToken)
	}()

	return dto.NewBookingResponse(
		booking,
		slot.SlotDate.Format(constant.DateFormat),
		slot.StartTime.Format(constant.TimeFormat),
		slot.EndTime.Format(constant.TimeFormat),
	), nil
}

// liftBlocked releases only the slots this booking's buffer blocked, via the
// blocked_by back-reference. Slots blocked by other bookings stay blocked.
func (s *serviceImpl) liftBlocked(ctx context.Context, tx *sqlx.Tx, slot availabilityModel.AvailabilitySlot, actor string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: availabilityModel.FieldBlockedBy, Value: slot.ID, Operator: gDto.FilterOperatorEq, Table: availabilityModel.TableName},
			gDto.Filter{Field: availabilityModel.FieldStatus, Value: constant.SlotStatusBlocked, Operator: gDto.FilterOperatorEq, Table: availabilityModel.TableName},
		},
	}

	update := map[string]any{
		availabilityModel.FieldStatus:    constant.SlotStatusAvailable,
		availabilityModel.FieldBlockedBy: nil,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         actor,
	}

	if err := s.slotRepo.UpdateTx(ctx, tx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to lift blocked slots")

		return fmt.Errorf("failed to lift blocked slots: %w", err)
	}

	return nil
}

// mergePersistent re-coalesces the candidate's available slots around the
// affected day, for both formats. Ranges that absorbed neighbors keep the
// first slot's row widened to the full window; absorbed rows are removed.
func (s *serviceImpl) mergePersistent(ctx context.Context, tx *sqlx.Tx, candidateID string, date time.Time) error {
	for _, interviewType := range []string{constant.InterviewTypeOnline, constant.InterviewTypeOnsite} {
		slots, err := s.slotRepo.ListAroundDateTx(ctx, tx, candidateID, date, interviewType, constant.SlotStatusAvailable)
		if err != nil {
			log.Error().Err(err).Msg("failed to list slots for persistent merge")

			return fmt.Errorf("failed to list slots for persistent merge: %w", err)
		}

		ranges, err := merge.Adjacent(slots)
		if err != nil {
			log.Error().Err(err).Str("candidateID", candidateID).Msg("failed to merge slots after cancellation")

			return fmt.Errorf("failed to merge slots after cancellation: %w", err)
		}

		for _, r := range ranges {
			if len(r.SlotIDs) < 2 {
				continue
			}

			update := map[string]any{
				availabilityModel.FieldStartTime: r.StartTime,
				availabilityModel.FieldEndTime:   r.EndTime,
				constant.FieldModifiedAt:         timezone.Now(),
			}
			if err := s.slotRepo.UpdateTx(ctx, tx, update, shared.FilterByID(r.SlotIDs[0], availabilityModel.FieldID, availabilityModel.TableName)); err != nil {
				log.Error().Err(err).Msg("failed to widen merged slot")

				return fmt.Errorf("failed to widen merged slot: %w", err)
			}

			absorbed := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{Field: availabilityModel.FieldID, Value: r.SlotIDs[1:], Operator: gDto.FilterOperatorIn, Table: availabilityModel.TableName},
				},
			}
			if err := s.slotRepo.DeleteTx(ctx, tx, absorbed); err != nil {
				log.Error().Err(err).Msg("failed to remove absorbed slots")

				return fmt.Errorf("failed to remove absorbed slots: %w", err)
			}
		}
	}

	return nil
}

func blockedTypes(interviewType string) []string {
	switch interviewType {
	case constant.InterviewTypeOnsite:
		return []string{constant.InterviewTypeOnline}
	case constant.InterviewTypeOnline:
		return []string{constant.InterviewTypeOnsite}
	default:
		return []string{constant.InterviewTypeOnline, constant.InterviewTypeOnsite}
	}
}
