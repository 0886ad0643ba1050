package flight

import (
	"errors"
	"time"
)

// SeatCount is the number of seat slots on every flight. Seat numbers are
// 1-based: valid numbers are 1..SeatCount.
const SeatCount = 9

var (
	ErrSeatOutOfRange = errors.New("seat number out of range")
	ErrSeatTaken      = errors.New("seat already taken")
	ErrNotSeatHolder  = errors.New("seat not held by this document")
)

// SeatMap is the ordered seat-holder state of a flight. Index i holds the
// passenger document occupying seat i+1, or "" when the slot is unoccupied.
type SeatMap [SeatCount]string

func (m SeatMap) Holder(seat int) (string, error) {
	if !validSeat(seat) {
		return "", ErrSeatOutOfRange
	}
	return m[seat-1], nil
}

func (m SeatMap) Occupied(seat int) bool {
	return validSeat(seat) && m[seat-1] != ""
}

type Flight struct {
	id          int64
	origin      string
	destination string
	departure   time.Time
	seats       SeatMap
	createdAt   time.Time
	updatedAt   time.Time
}

func Reconstruct(id int64, origin, destination string, departure time.Time, seats SeatMap, createdAt, updatedAt time.Time) *Flight {
	return &Flight{
		id:          id,
		origin:      origin,
		destination: destination,
		departure:   departure,
		seats:       seats,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (f *Flight) ID() int64            { return f.id }
func (f *Flight) Origin() string       { return f.origin }
func (f *Flight) Destination() string  { return f.destination }
func (f *Flight) Departure() time.Time { return f.departure }
func (f *Flight) Seats() SeatMap       { return f.seats }
func (f *Flight) CreatedAt() time.Time { return f.createdAt }
func (f *Flight) UpdatedAt() time.Time { return f.updatedAt }

// Occupy claims an unoccupied seat for document. Validation order matches the
// check-in workflow: range first, then availability.
func (f *Flight) Occupy(seat int, document string) error {
	if !validSeat(seat) {
		return ErrSeatOutOfRange
	}
	if f.seats[seat-1] != "" {
		return ErrSeatTaken
	}
	f.seats[seat-1] = document
	return nil
}

// Release clears a seat currently held by document. Only the holder's own
// document can trigger the transition out of a held slot.
func (f *Flight) Release(seat int, document string) error {
	if !validSeat(seat) {
		return ErrSeatOutOfRange
	}
	if f.seats[seat-1] != document {
		return ErrNotSeatHolder
	}
	f.seats[seat-1] = ""
	return nil
}

// Swap moves document from seat `from` to seat `to`. Both seat numbers are
// range-checked together before any state is touched, so either one being
// invalid yields the same error and leaves the map unchanged.
func (f *Flight) Swap(from, to int, document string) error {
	if !validSeat(from) || !validSeat(to) {
		return ErrSeatOutOfRange
	}
	if f.seats[from-1] != document {
		return ErrNotSeatHolder
	}
	if f.seats[to-1] != "" {
		return ErrSeatTaken
	}
	f.seats[from-1] = ""
	f.seats[to-1] = document
	return nil
}

func validSeat(seat int) bool {
	return seat >= 1 && seat <= SeatCount
}
