package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"skychart/pkg/ephemeris"
	mockephemeris "skychart/pkg/ephemeris/mock"
	"skychart/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestComputeEntries_KeepsOrder(t *testing.T) {
	client := mockephemeris.NewMockClient(gomock.NewController(t))

	instants := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	client.EXPECT().Positions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ephemeris.Query) (ephemeris.Batch, ephemeris.RateLimitStatus, error) {
			if q.Frame != ephemeris.Heliocentric {
				return ephemeris.Batch{}, ephemeris.RateLimitStatus{}, errors.New("unexpected frame")
			}
			// the longitude encodes the year so entries can be matched to instants
			return ephemeris.Batch{Positions: []ephemeris.Position{{
				Body: ephemeris.Sun, Name: "Sun", Longitude: float64(q.At.Year() - 2000), LongitudeSpeed: 1,
			}}}, ephemeris.RateLimitStatus{}, nil
		}).Times(len(instants))

	entries, err := computeEntries(context.Background(), client, ephemeris.Heliocentric, instants, 2)
	require.NoError(t, err)
	require.Len(t, entries, len(instants))
	for i, e := range entries {
		require.Equal(t, instants[i], e.At)
		require.Equal(t, "heliocentric", e.Frame)
		require.Len(t, e.Result.Placements, 1)
		require.InDelta(t, float64(instants[i].Year()-2000), e.Result.Placements[0].Longitude, 1e-9)
	}
}

func TestComputeEntries_Error(t *testing.T) {
	client := mockephemeris.NewMockClient(gomock.NewController(t))

	upstream := serrors.With(serrors.ErrUnavailable, "ephemeris down")
	client.EXPECT().Positions(gomock.Any(), gomock.Any()).
		Return(ephemeris.Batch{}, ephemeris.RateLimitStatus{}, upstream).
		MinTimes(1)

	_, err := computeEntries(context.Background(), client, ephemeris.Geocentric,
		[]time.Time{time.Now(), time.Now().Add(time.Hour)}, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}
