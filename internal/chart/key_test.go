package chart_test

import (
	"testing"
	"time"

	"skychart/internal/chart"
	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		at    time.Time
		frame ephemeris.Frame
		want  string
	}{
		{
			name:  "utc instant",
			at:    time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			frame: ephemeris.Geocentric,
			want:  "2000-01-01T12:00:00Z/geocentric",
		},
		{
			name:  "offset is converted to utc",
			at:    time.Date(2000, 1, 1, 14, 0, 0, 0, time.FixedZone("EET", 2*3600)),
			frame: ephemeris.Geocentric,
			want:  "2000-01-01T12:00:00Z/geocentric",
		},
		{
			name:  "sub-second precision is dropped",
			at:    time.Date(1999, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
			frame: ephemeris.Heliocentric,
			want:  "1999-12-31T23:59:59Z/heliocentric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := chart.Key(tt.at, tt.frame)
			require.Equal(t, tt.want, key)

			at, frame, err := chart.ParseKey(key)
			require.NoError(t, err)
			require.Equal(t, tt.frame, frame)
			require.Equal(t, key, chart.Key(at, frame), "round trip")
		})
	}
}

func TestParseKey_Malformed(t *testing.T) {
	for _, key := range []string{
		"",
		"2000-01-01T12:00:00Z",
		"yesterday/geocentric",
		"2000-01-01T12:00:00Z/topocentric",
		"2000-01-01T12:00:00Z/",
	} {
		_, _, err := chart.ParseKey(key)
		require.ErrorIs(t, err, serrors.ErrBadRequest, key)
	}
}

func TestParseInstant(t *testing.T) {
	at, err := chart.ParseInstant("2000-01-01T12:00:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), at)

	at, err = chart.ParseInstant("2024-03-20T03:06:00.5+01:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 20, 2, 6, 0, 500_000_000, time.UTC), at)

	at, err = chart.ParseInstant("1987-06-05")
	require.NoError(t, err)
	require.Equal(t, time.Date(1987, 6, 5, 0, 0, 0, 0, time.UTC), at)

	_, err = chart.ParseInstant("05/06/1987")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
