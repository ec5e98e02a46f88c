package serrors_test

import (
	"errors"
	"fmt"
	"skychart/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type upstreamError struct{ msg string }

func (e upstreamError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrDomain,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("data file missing")

	require.Equal(t, "body 3 unsupported", serrors.With(serrors.ErrNotFound, "body %d unsupported", 3).Error())
	require.Equal(t, "fetching positions: data file missing",
		serrors.Wrap(serrors.ErrUnavailable, cause, "fetching positions").Error())
	require.Equal(t, "DOMAIN", serrors.KindOnly(serrors.ErrDomain).Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	cause := upstreamError{"throttled"}
	err := serrors.Wrap(serrors.ErrRateLimited, cause, "positions")

	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	wrapped := fmt.Errorf("could not compute chart: %w", err)
	require.ErrorIs(t, wrapped, serrors.ErrRateLimited)
}

func TestAsMatchesKindAndCause(t *testing.T) {
	cause := &upstreamError{"bad body"}
	err := serrors.Wrap(serrors.ErrNotFound, cause, "positions")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ue *upstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, cause, ue)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrDomain,
		serrors.KindOf(fmt.Errorf("classify: %w", serrors.With(serrors.ErrDomain, "NaN"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "no token")
	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "no token", err.Message())
	require.Equal(t, cause, err.Cause())
}
