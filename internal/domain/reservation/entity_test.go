//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"flightdesk/internal/domain/reservation"
	"flightdesk/internal/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		src := random.NewSequenceSource(42, 7)

		actual, err := reservation.New(1, "12345678900", src, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(0), actual.ID(), "id is assigned on insert")
		assert.Equal(t, int64(1), actual.FlightID())
		assert.Equal(t, "12345678900", actual.Document())
		assert.Equal(t, reservation.Code("042007"), actual.Code())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			flightID int64
			document string
			errIs    error
		}{
			{name: "zero flight id", flightID: 0, document: "doc", errIs: reservation.ErrInvalidFlightID},
			{name: "negative flight id", flightID: -1, document: "doc", errIs: reservation.ErrInvalidFlightID},
			{name: "empty document", flightID: 1, document: "", errIs: reservation.ErrEmptyDocument},
			{name: "valid", flightID: 1, document: "doc"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.New(tc.flightID, tc.document, random.NewSource(), now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestRerollCode(t *testing.T) {
	now := time.Now()
	src := random.NewSequenceSource(1, 2, 3, 4)

	res, err := reservation.New(1, "doc", src, now)
	require.NoError(t, err)
	require.Equal(t, reservation.Code("001002"), res.Code())

	res.RerollCode(src)

	assert.Equal(t, reservation.Code("003004"), res.Code())
}
