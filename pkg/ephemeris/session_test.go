package ephemeris_test

import (
	"context"
	"errors"
	"skychart/pkg/ephemeris"
	mockephemeris "skychart/pkg/ephemeris/mock"
	"skychart/pkg/serrors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSession_ForwardsUntilClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockephemeris.NewMockClient(ctrl)
	s := ephemeris.Open(client)

	q := ephemeris.Query{At: time.Unix(0, 0).UTC(), Bodies: []ephemeris.Body{ephemeris.Sun}}
	want := ephemeris.Batch{Positions: []ephemeris.Position{{Body: ephemeris.Sun, Longitude: 280}}}
	client.EXPECT().Positions(gomock.Any(), q).Return(want, ephemeris.RateLimitStatus{}, nil)
	client.EXPECT().Close().Return(nil).Times(1)

	got, _, err := s.Positions(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, s.Close())

	_, _, err = s.Positions(context.Background(), q)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestSession_ClosesUnderlyingClientOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockephemeris.NewMockClient(ctrl)
	s := ephemeris.Open(client)

	closeErr := errors.New("close failed")
	client.EXPECT().Close().Return(closeErr).Times(1)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.ErrorIs(t, s.Close(), closeErr)
		}()
	}
	wg.Wait()
	require.ErrorIs(t, s.Close(), closeErr, "later calls observe the first result")
}
