package zodiac

import (
	"math"
	"strconv"

	"skychart/pkg/serrors"
)

// ErrDomain is returned for longitudes that cannot be classified (NaN, ±Inf).
var ErrDomain = serrors.ErrDomain

// Classification is the zodiac metadata derived from one longitude and speed.
type Classification struct {
	// Longitude is the normalized longitude in [0, 360).
	Longitude float64
	// Sign is the sign bin of Longitude.
	Sign Sign
	// DegreeWithinSign is Longitude minus the start of its sign, in [0, 30).
	DegreeWithinSign float64
	// House is the bin of Longitude mapped to a house label; House.Index() == Sign.Index().
	House House
	// Retrograde is true when the longitude speed is negative.
	Retrograde bool
}

// Element is a shorthand for c.Sign.Element().
func (c Classification) Element() Element { return c.Sign.Element() }

// Quality is a shorthand for c.Sign.Quality().
func (c Classification) Quality() Quality { return c.Sign.Quality() }

// Emoji is a shorthand for c.Sign.Emoji().
func (c Classification) Emoji() string { return c.Sign.Emoji() }

// NormalizeLongitude maps raw into [0, 360), the result being congruent to raw
// modulo 360. Non-finite input returns NaN.
func NormalizeLongitude(raw float64) float64 {
	l := math.Mod(raw, 360)
	if l < 0 {
		l += 360
	}
	// tiny negatives round up to exactly 360 above; -0 becomes +0
	if l >= 360 || l == 0 {
		l = 0
	}

	return l
}

// bin returns the normalized longitude and its 30° bin. It is the only place
// the circle is partitioned.
func bin(longitude float64) (float64, int, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return 0, 0, serrors.With(ErrDomain, "longitude %v is not finite", longitude)
	}

	l := NormalizeLongitude(longitude)
	idx := int(math.Floor(l / SignWidth))
	// guard against rounding in the division at bin edges
	if idx > 0 && float64(idx)*SignWidth > l {
		idx--
	}
	if idx < SignCount-1 && l-float64(idx)*SignWidth >= SignWidth {
		idx++
	}

	return l, idx, nil
}

// SignIndex returns floor(normalized/30), 0 through 11.
func SignIndex(longitude float64) (int, error) {
	_, idx, err := bin(longitude)

	return idx, err
}

// SignOf returns the sign containing longitude.
func SignOf(longitude float64) (Sign, error) {
	_, idx, err := bin(longitude)

	return Sign(idx), err
}

// HouseOf returns the house bin containing longitude. It always agrees with SignOf.
func HouseOf(longitude float64) (House, error) {
	_, idx, err := bin(longitude)

	return House(idx), err
}

// DegreeWithinSign returns the offset of longitude from the start of its sign,
// in [0, 30). DegreeWithinSign(l) + SignIndex(l)*30 == NormalizeLongitude(l) exactly.
func DegreeWithinSign(longitude float64) (float64, error) {
	l, idx, err := bin(longitude)
	if err != nil {
		return 0, err
	}

	return l - float64(idx)*SignWidth, nil
}

// IsRetrograde reports apparent backward motion from the longitude speed
// (degrees/day) returned by the ephemeris. A stationary body (speed == 0) is not
// retrograde.
func IsRetrograde(longitudeSpeed float64) bool {
	return longitudeSpeed < 0
}

// Classify derives the full classification of a body from its raw longitude and
// longitude speed.
func Classify(longitude, longitudeSpeed float64) (Classification, error) {
	l, idx, err := bin(longitude)
	if err != nil {
		return Classification{}, err
	}

	return Classification{
		Longitude:        l,
		Sign:             Sign(idx),
		DegreeWithinSign: l - float64(idx)*SignWidth,
		House:            House(idx),
		Retrograde:       IsRetrograde(longitudeSpeed),
	}, nil
}

func itoa(i int) string { return strconv.Itoa(i) }
