//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"flightdesk/internal/infra"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/pkg/clock"
	"flightdesk/internal/pkg/random"
	"flightdesk/internal/usecase/commands"
	"flightdesk/internal/usecase/shared"
	"flightdesk/tests/common/builder"
	commandsmock "flightdesk/tests/mock/commands"
	sharedmock "flightdesk/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeUoW runs the workflow body directly against mocked repositories,
// without a database transaction.
type fakeUoW struct {
	tx shared.Tx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	flights      shared.FlightRepository
	reservations shared.ReservationRepository
}

func (f *fakeTx) Flights() shared.FlightRepository           { return f.flights }
func (f *fakeTx) Reservations() shared.ReservationRepository { return f.reservations }
func (f *fakeTx) DB() db.DBTX                                { return nil }

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFlights      *sharedmock.MockFlightRepository
	mockReservations *sharedmock.MockReservationRepository
	mockCache        *commandsmock.MockReservationCacheInvalidator
	mockPublisher    *commandsmock.MockEventPublisher
	clock            *clock.MockClock
	codes            *random.SequenceSource
	commands         commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockFlights = sharedmock.NewMockFlightRepository(s.ctrl)
	s.mockReservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.mockCache = commandsmock.NewMockReservationCacheInvalidator(s.ctrl)
	s.mockPublisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	s.codes = random.NewSequenceSource(123, 456, 789, 12, 345, 678)

	uow := &fakeUoW{tx: &fakeTx{flights: s.mockFlights, reservations: s.mockReservations}}
	s.commands = commands.NewReservationCommands(uow, s.codes, s.clock, s.mockCache, s.mockPublisher)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (s *ReservationCommandsTestSuite) duplicateErr(constraint string) error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

// ================================================================================
// CreateReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()

	s.Run("success: creates reservation with generated code", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(false, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(10), nil)
		s.mockCache.EXPECT().InvalidateFlight(gomock.Any(), int64(1)).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.Require().NoError(err)
		s.Equal(int64(10), view.ID)
		s.Equal(int64(1), view.FlightID)
		s.Equal("doc-a", view.Document)
		s.Equal("123456", view.Code, "code comes from the injected source")
		s.Equal(s.clock.Now(), view.CreatedAt)
	})

	s.Run("unknown flight", func() {
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(99)).Return(nil, s.notFoundErr())

		_, err := s.commands.CreateReservation(ctx, 99, "doc-a")

		s.ErrorIs(err, commands.ErrFlightNotFound)
	})

	s.Run("duplicate document on flight", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(true, nil)

		_, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.ErrorIs(err, commands.ErrDuplicateReservation)
	})

	s.Run("validation failures never reach the store", func() {
		_, err := s.commands.CreateReservation(ctx, 0, "doc-a")
		s.ErrorIs(err, commands.ErrDomainValidation)

		_, err = s.commands.CreateReservation(ctx, 1, "")
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("code collision: rerolls and retries the insert", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(false, nil)
		gomock.InOrder(
			s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(0), s.duplicateErr(infra.ConstraintUniqueCode)),
			s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(11), nil),
		)
		s.mockCache.EXPECT().InvalidateFlight(gomock.Any(), int64(1)).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.Require().NoError(err)
		s.Equal("789012", view.Code, "second draw from the source after the collision")
	})

	s.Run("code collision: gives up after bounded attempts", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(false, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), s.duplicateErr(infra.ConstraintUniqueCode)).Times(3)

		_, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.ErrorIs(err, commands.ErrCodeExhausted)
	})

	s.Run("duplicate-booking constraint at insert is a conflict, not a retry", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(false, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), s.duplicateErr(infra.ConstraintUniqueBooking))

		_, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.ErrorIs(err, commands.ErrDuplicateReservation)
	})

	s.Run("side-effect failures do not fail the committed request", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(fl, nil)
		s.mockReservations.EXPECT().ExistsForFlightAndDocument(gomock.Any(), gomock.Any(), int64(1), "doc-a").Return(false, nil)
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12), nil)
		s.mockCache.EXPECT().InvalidateFlight(gomock.Any(), int64(1)).Return(context.DeadlineExceeded)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

		view, err := s.commands.CreateReservation(ctx, 1, "doc-a")

		s.Require().NoError(err)
		s.Equal(int64(12), view.ID)
	})
}

// ================================================================================
// CheckIn
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCheckIn() {
	ctx := context.Background()
	snap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Code = "123456"
		b.Document = "doc-a"
	}).BuildSnapshot()

	s.Run("success: occupies a free seat", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)
		s.mockFlights.EXPECT().OccupySeat(gomock.Any(), gomock.Any(), snap.FlightID, 3, "doc-a").Return(nil)
		s.mockCache.EXPECT().InvalidateFlight(gomock.Any(), snap.FlightID).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.CheckIn(ctx, "123456", 3)

		s.Require().NoError(err)
		s.Equal("123456", result.Code)
		s.Equal(snap.FlightID, result.FlightID)
		s.Equal(3, result.Seat)
	})

	s.Run("unknown code", func() {
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, s.notFoundErr())

		_, err := s.commands.CheckIn(ctx, "999999", 3)

		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("malformed code is not found, without touching the store", func() {
		for _, raw := range []string{"", "12345", "1234567", "12a456"} {
			_, err := s.commands.CheckIn(ctx, raw, 3)
			s.ErrorIs(err, commands.ErrReservationNotFound, "code %q", raw)
		}
	})

	s.Run("seat out of range", func() {
		fl := builder.NewFlightBuilder().BuildDomain()
		for _, seat := range []int{0, 10, -1} {
			s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
			s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)

			_, err := s.commands.CheckIn(ctx, "123456", seat)
			s.ErrorIs(err, commands.ErrSeatOutOfRange, "seat %d", seat)
		}
	})

	s.Run("seat taken", func() {
		fl := builder.NewFlightBuilder().WithSeat(3, "doc-b").BuildDomain()
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)

		_, err := s.commands.CheckIn(ctx, "123456", 3)

		s.ErrorIs(err, commands.ErrSeatTaken)
	})
}

// ================================================================================
// SwapSeat
// ================================================================================

func (s *ReservationCommandsTestSuite) TestSwapSeat() {
	ctx := context.Background()
	snap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Code = "123456"
		b.Document = "doc-a"
	}).BuildSnapshot()

	s.Run("success: clears old seat and occupies new one in order", func() {
		fl := builder.NewFlightBuilder().WithSeat(2, "doc-a").BuildDomain()
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)
		gomock.InOrder(
			s.mockFlights.EXPECT().ClearSeat(gomock.Any(), gomock.Any(), snap.FlightID, 2).Return(nil),
			s.mockFlights.EXPECT().OccupySeat(gomock.Any(), gomock.Any(), snap.FlightID, 7, "doc-a").Return(nil),
		)
		s.mockCache.EXPECT().InvalidateFlight(gomock.Any(), snap.FlightID).Return(nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.SwapSeat(ctx, "123456", 2, 7)

		s.Require().NoError(err)
		s.Equal(2, result.From)
		s.Equal(7, result.To)
	})

	s.Run("not holder of the source seat", func() {
		fl := builder.NewFlightBuilder().WithSeat(2, "doc-b").BuildDomain()
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)

		_, err := s.commands.SwapSeat(ctx, "123456", 2, 7)

		s.ErrorIs(err, commands.ErrNotSeatHolder)
	})

	s.Run("destination taken", func() {
		fl := builder.NewFlightBuilder().WithSeat(2, "doc-a").WithSeat(7, "doc-b").BuildDomain()
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
		s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)

		_, err := s.commands.SwapSeat(ctx, "123456", 2, 7)

		s.ErrorIs(err, commands.ErrSeatTaken)
	})

	s.Run("either seat out of range fails before any write", func() {
		fl := builder.NewFlightBuilder().WithSeat(2, "doc-a").BuildDomain()
		for _, pair := range [][2]int{{0, 7}, {2, 10}, {0, 10}} {
			s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
			s.mockFlights.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.FlightID).Return(fl, nil)

			_, err := s.commands.SwapSeat(ctx, "123456", pair[0], pair[1])
			s.ErrorIs(err, commands.ErrSeatOutOfRange, "pair %v", pair)
		}
	})

	s.Run("unknown code", func() {
		s.mockReservations.EXPECT().FindByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, s.notFoundErr())

		_, err := s.commands.SwapSeat(ctx, "999999", 2, 7)

		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}
