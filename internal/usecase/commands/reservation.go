package commands

import (
	"context"
	"errors"
	"log/slog"

	"flightdesk/internal/domain/flight"
	"flightdesk/internal/domain/reservation"
	"flightdesk/internal/infra"
	"flightdesk/internal/infra/events"
	"flightdesk/internal/pkg/clock"
	"flightdesk/internal/pkg/errs"
	"flightdesk/internal/pkg/metrics"
	"flightdesk/internal/pkg/random"
	"flightdesk/internal/usecase/queries"
	"flightdesk/internal/usecase/shared"
)

var (
	ErrFlightNotFound          = errs.New("flight not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDuplicateReservation    = errs.New("duplicate reservation")
	ErrSeatOutOfRange          = errs.New("seat number out of range")
	ErrSeatTaken               = errs.New("seat already taken")
	ErrNotSeatHolder           = errs.New("seat not held by this reservation")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrCodeExhausted           = errs.New("could not allocate a unique reservation code")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// maxCodeAttempts bounds regeneration when a generated reservation code
// collides with an existing one.
const maxCodeAttempts = 3

type CheckInResult struct {
	Code     string
	FlightID int64
	Seat     int
}

type SwapSeatResult struct {
	Code     string
	FlightID int64
	From     int
	To       int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, flightID int64, document string) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, code string, seat int) (*CheckInResult, error)
	SwapSeat(ctx context.Context, code string, from, to int) (*SwapSeatResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// ReservationCacheInvalidator drops the cached reservation list of a flight
// after a successful mutation.
type ReservationCacheInvalidator interface {
	InvalidateFlight(ctx context.Context, flightID int64) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	codes     random.Source
	clock     clock.Clock
	cache     ReservationCacheInvalidator
	publisher EventPublisher
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	codes random.Source,
	clk clock.Clock,
	cache ReservationCacheInvalidator,
	publisher EventPublisher,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		codes:     codes,
		clock:     clk,
		cache:     cache,
		publisher: publisher,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, flightID int64, document string) (*queries.ReservationView, error) {
	res, err := reservation.New(flightID, document, c.codes, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var view *queries.ReservationView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Locking the flight row serializes the duplicate check against
		// concurrent bookings on the same flight.
		if _, err := tx.Flights().FindForUpdate(ctx, tx.DB(), flightID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFlightNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		exists, err := tx.Reservations().ExistsForFlightAndDocument(ctx, tx.DB(), flightID, document)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateReservation
		}

		id, err := c.insertWithUniqueCode(ctx, tx, res)
		if err != nil {
			return err
		}

		view = &queries.ReservationView{
			ID:        id,
			FlightID:  res.FlightID(),
			Document:  res.Document(),
			Code:      res.Code().String(),
			CreatedAt: res.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		metrics.IncSeatOperation("create", outcomeLabel(err))
		return nil, err
	}

	metrics.IncSeatOperation("create", "success")
	c.afterMutation(ctx, flightID, events.ReservationEvent{
		Type:     events.TypeReservationCreated,
		Code:     view.Code,
		FlightID: view.FlightID,
		Document: view.Document,
	})
	return view, nil
}

// insertWithUniqueCode retries the insert with a fresh code when the code's
// unique constraint trips. A duplicate-booking violation is surfaced as a
// conflict instead of retried; it means another transaction won the race
// despite the flight lock.
func (c *reservationCommandsImpl) insertWithUniqueCode(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (int64, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err == nil {
			return id, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if infra.ConstraintName(err) != "" && infra.ConstraintName(err) != infra.ConstraintUniqueCode {
			return 0, ErrDuplicateReservation
		}

		slog.Warn("reservation code collision, regenerating",
			"flight_id", res.FlightID(),
			"attempt", attempt+1)
		res.RerollCode(c.codes)
	}
	return 0, ErrCodeExhausted
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, rawCode string, seat int) (*CheckInResult, error) {
	code, err := reservation.ParseCode(rawCode)
	if err != nil {
		// A malformed code cannot match any reservation.
		return nil, errs.Mark(err, ErrReservationNotFound)
	}

	var result *CheckInResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.resolveReservation(ctx, tx, code)
		if err != nil {
			return err
		}

		fl, err := c.lockFlight(ctx, tx, snap.FlightID)
		if err != nil {
			return err
		}

		if err := fl.Occupy(seat, snap.Document); err != nil {
			return mapSeatError(err)
		}
		if err := tx.Flights().OccupySeat(ctx, tx.DB(), snap.FlightID, seat, snap.Document); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CheckInResult{Code: code.String(), FlightID: snap.FlightID, Seat: seat}
		return nil
	})
	if err != nil {
		metrics.IncSeatOperation("checkin", outcomeLabel(err))
		return nil, err
	}

	metrics.IncSeatOperation("checkin", "success")
	c.afterMutation(ctx, result.FlightID, events.ReservationEvent{
		Type:     events.TypeCheckedIn,
		Code:     result.Code,
		FlightID: result.FlightID,
		Seat:     result.Seat,
	})
	return result, nil
}

func (c *reservationCommandsImpl) SwapSeat(ctx context.Context, rawCode string, from, to int) (*SwapSeatResult, error) {
	code, err := reservation.ParseCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationNotFound)
	}

	var result *SwapSeatResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.resolveReservation(ctx, tx, code)
		if err != nil {
			return err
		}

		fl, err := c.lockFlight(ctx, tx, snap.FlightID)
		if err != nil {
			return err
		}

		if err := fl.Swap(from, to, snap.Document); err != nil {
			return mapSeatError(err)
		}
		// Both mutations run in the same transaction, so the swap is atomic
		// to every other workflow.
		if err := tx.Flights().ClearSeat(ctx, tx.DB(), snap.FlightID, from); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Flights().OccupySeat(ctx, tx.DB(), snap.FlightID, to, snap.Document); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &SwapSeatResult{Code: code.String(), FlightID: snap.FlightID, From: from, To: to}
		return nil
	})
	if err != nil {
		metrics.IncSeatOperation("swap", outcomeLabel(err))
		return nil, err
	}

	metrics.IncSeatOperation("swap", "success")
	c.afterMutation(ctx, result.FlightID, events.ReservationEvent{
		Type:     events.TypeSeatSwapped,
		Code:     result.Code,
		FlightID: result.FlightID,
		FromSeat: result.From,
		ToSeat:   result.To,
	})
	return result, nil
}

func (c *reservationCommandsImpl) resolveReservation(ctx context.Context, tx shared.Tx, code reservation.Code) (*shared.ReservationSnapshot, error) {
	snap, err := tx.Reservations().FindByCode(ctx, tx.DB(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *reservationCommandsImpl) lockFlight(ctx context.Context, tx shared.Tx, flightID int64) (*flight.Flight, error) {
	fl, err := tx.Flights().FindForUpdate(ctx, tx.DB(), flightID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return fl, nil
}

// afterMutation runs post-commit side effects. Neither cache invalidation
// nor event publication may fail the already-committed request.
func (c *reservationCommandsImpl) afterMutation(ctx context.Context, flightID int64, event events.ReservationEvent) {
	if c.cache != nil {
		if err := c.cache.InvalidateFlight(ctx, flightID); err != nil {
			slog.Warn("failed to invalidate reservation cache", "flight_id", flightID, "error", err.Error())
		}
	}
	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, event); err != nil {
			slog.Warn("failed to publish reservation event",
				"type", event.Type,
				"flight_id", flightID,
				"error", err.Error())
		}
	}
}

func mapSeatError(err error) error {
	switch {
	case errors.Is(err, flight.ErrSeatOutOfRange):
		return errs.Mark(err, ErrSeatOutOfRange)
	case errors.Is(err, flight.ErrSeatTaken):
		return errs.Mark(err, ErrSeatTaken)
	case errors.Is(err, flight.ErrNotSeatHolder):
		return errs.Mark(err, ErrNotSeatHolder)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrDatabaseOperationFailed), errors.Is(err, ErrCodeExhausted):
		return "error"
	default:
		return "rejected"
	}
}
