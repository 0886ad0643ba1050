package reservation

import (
	"errors"
	"time"

	"flightdesk/internal/pkg/random"
)

var (
	ErrEmptyDocument   = errors.New("passenger document is required")
	ErrInvalidFlightID = errors.New("invalid flight id")
)

type Reservation struct {
	id        int64
	flightID  int64
	document  string
	code      Code
	createdAt time.Time
}

// New builds an unpersisted reservation with a freshly generated code. The
// id is assigned by the store on insert.
func New(flightID int64, document string, src random.Source, now time.Time) (*Reservation, error) {
	if flightID <= 0 {
		return nil, ErrInvalidFlightID
	}
	if document == "" {
		return nil, ErrEmptyDocument
	}
	return &Reservation{
		flightID:  flightID,
		document:  document,
		code:      GenerateCode(src),
		createdAt: now,
	}, nil
}

func Reconstruct(id, flightID int64, document string, code Code, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		flightID:  flightID,
		document:  document,
		code:      code,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) FlightID() int64      { return r.flightID }
func (r *Reservation) Document() string     { return r.document }
func (r *Reservation) Code() Code           { return r.code }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// RerollCode replaces the code after a uniqueness conflict at insert time.
func (r *Reservation) RerollCode(src random.Source) {
	r.code = GenerateCode(src)
}
