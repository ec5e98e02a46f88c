package zodiac_test

import (
	"math"
	"math/rand"
	"skychart/pkg/serrors"
	"skychart/pkg/zodiac"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// sampleLongitudes mixes hand-picked edges with seeded random values over a
// range wide enough to exercise multiple turns in both directions.
func sampleLongitudes() []float64 {
	out := []float64{
		0, -0.0, 15, 29.999999, 30, 185, 359.999999, 360, 720.5, -30, -359.999999, -720,
		math.Nextafter(30, 0), math.Nextafter(360, 0), math.Nextafter(0, -1), 1e-300, -1e-300,
	}
	rnd := rand.New(rand.NewSource(42)) //nolint: gosec
	for range 2000 {
		out = append(out, (rnd.Float64()-0.5)*4000)
	}

	return out
}

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 15, want: 15},
		{in: 360, want: 0},
		{in: 370, want: 10},
		{in: -30, want: 330},
		{in: -360, want: 0},
		{in: -390, want: 330},
		{in: 1080.25, want: 0.25},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, zodiac.NormalizeLongitude(tc.in), 1e-12, "normalize(%v)", tc.in)
	}

	require.True(t, math.IsNaN(zodiac.NormalizeLongitude(math.NaN())))
	require.True(t, math.IsNaN(zodiac.NormalizeLongitude(math.Inf(1))))
	require.False(t, math.Signbit(zodiac.NormalizeLongitude(-0.0)), "negative zero must normalize to +0")
}

func TestNormalizeLongitude_RangeAndCongruence(t *testing.T) {
	for _, l := range sampleLongitudes() {
		n := zodiac.NormalizeLongitude(l)
		require.GreaterOrEqual(t, n, 0.0, "normalize(%v)", l)
		require.Less(t, n, 360.0, "normalize(%v)", l)

		turns := (l - n) / 360
		require.InDelta(t, math.Round(turns), turns, 1e-9, "normalize(%v)=%v is not congruent", l, n)
	}
}

func TestNormalizeLongitude_KeepsNormalizedValues(t *testing.T) {
	for _, l := range sampleLongitudes() {
		n := zodiac.NormalizeLongitude(l)
		require.Equal(t, n, zodiac.NormalizeLongitude(n), "normalize is not idempotent for %v", l)
	}
}

func TestSignIndex_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int
	}{
		{name: "zero is first sign", in: 0, want: 0},
		{name: "just below 30 stays in first sign", in: 29.999999, want: 0},
		{name: "30 starts the second sign", in: 30, want: 1},
		{name: "just below 360 is the last sign", in: 359.999999, want: 11},
		{name: "360 wraps to the first sign", in: 360, want: 0},
		{name: "-30 wraps to the last sign", in: -30, want: 11},
		{name: "largest float below 30", in: math.Nextafter(30, 0), want: 0},
		{name: "largest float below 360", in: math.Nextafter(360, 0), want: 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := zodiac.SignIndex(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			house, err := zodiac.HouseOf(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, house.Index())
		})
	}
}

func TestSignAndHouseSharePartition(t *testing.T) {
	for _, l := range sampleLongitudes() {
		sign, err := zodiac.SignOf(l)
		require.NoError(t, err)
		house, err := zodiac.HouseOf(l)
		require.NoError(t, err)
		idx, err := zodiac.SignIndex(l)
		require.NoError(t, err)

		require.Equal(t, idx, sign.Index(), "sign index mismatch for %v", l)
		require.Equal(t, idx, house.Index(), "house index mismatch for %v", l)
		require.Equal(t, int(math.Floor(zodiac.NormalizeLongitude(l)/30)), idx, "bin mismatch for %v", l)
	}
}

func TestDegreeWithinSign_ExactReconstruction(t *testing.T) {
	for _, l := range sampleLongitudes() {
		deg, err := zodiac.DegreeWithinSign(l)
		require.NoError(t, err)
		idx, err := zodiac.SignIndex(l)
		require.NoError(t, err)

		require.GreaterOrEqual(t, deg, 0.0, "degree for %v", l)
		require.Less(t, deg, 30.0, "degree for %v", l)
		require.Equal(t, zodiac.NormalizeLongitude(l), deg+float64(idx)*30, "reconstruction for %v", l)
	}
}

func TestNonFiniteLongitudeIsDomainError(t *testing.T) {
	for _, l := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := zodiac.SignIndex(l)
		require.ErrorIs(t, err, zodiac.ErrDomain)
		require.ErrorIs(t, err, serrors.ErrDomain)

		_, err = zodiac.SignOf(l)
		require.ErrorIs(t, err, zodiac.ErrDomain)
		_, err = zodiac.HouseOf(l)
		require.ErrorIs(t, err, zodiac.ErrDomain)
		_, err = zodiac.DegreeWithinSign(l)
		require.ErrorIs(t, err, zodiac.ErrDomain)
		_, err = zodiac.Classify(l, 1)
		require.ErrorIs(t, err, zodiac.ErrDomain)
	}
}

func TestIsRetrograde(t *testing.T) {
	require.True(t, zodiac.IsRetrograde(-0.5))
	require.False(t, zodiac.IsRetrograde(0.5))
	// a body exactly at its station is reported as direct
	require.False(t, zodiac.IsRetrograde(0.0))
	require.False(t, zodiac.IsRetrograde(math.Copysign(0, -1)))
	require.False(t, zodiac.IsRetrograde(math.NaN()))
}

func TestClassify_Examples(t *testing.T) {
	cases := []struct {
		name      string
		longitude float64
		speed     float64
		want      zodiac.Classification
		element   zodiac.Element
		quality   zodiac.Quality
	}{
		{
			name:      "mid Aries",
			longitude: 15,
			speed:     0.98,
			want: zodiac.Classification{
				Longitude: 15, Sign: zodiac.Aries, DegreeWithinSign: 15, House: zodiac.First,
			},
			element: zodiac.Fire,
			quality: zodiac.Cardinal,
		},
		{
			name:      "early Libra retrograde",
			longitude: 185,
			speed:     -0.2,
			want: zodiac.Classification{
				Longitude: 185, Sign: zodiac.Libra, DegreeWithinSign: 5, House: zodiac.Seventh, Retrograde: true,
			},
			element: zodiac.Air,
			quality: zodiac.Cardinal,
		},
		{
			name:      "negative longitude wraps into Pisces",
			longitude: -15,
			speed:     0,
			want: zodiac.Classification{
				Longitude: 345, Sign: zodiac.Pisces, DegreeWithinSign: 15, House: zodiac.Twelfth,
			},
			element: zodiac.Water,
			quality: zodiac.Mutable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := zodiac.Classify(tc.longitude, tc.speed)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Classify(%v) mismatch (-want +got):\n%s", tc.longitude, diff)
			}
			require.Equal(t, tc.element, got.Element())
			require.Equal(t, tc.quality, got.Quality())
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, l := range sampleLongitudes() {
		first, err := zodiac.Classify(l, -1)
		require.NoError(t, err)
		second, err := zodiac.Classify(first.Longitude, -1)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestClassify_Concurrent(t *testing.T) {
	want, err := zodiac.Classify(185, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := zodiac.Classify(185, 1)
			if err != nil || got != want {
				errs <- "unexpected classification"
			}
		}()
	}
	wg.Wait()
	close(errs)
	require.Empty(t, errs)
}
