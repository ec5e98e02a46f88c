package ephemeris

import (
	"strconv"
	"strings"

	"skychart/pkg/serrors"
)

// Body identifies a celestial body using the numbering of the Swiss Ephemeris.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	MeanNode
	TrueNode
	MeanApogee
	OsculatingApogee
	Earth
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
	"Mean Node", "True Node", "Mean Apogee", "Osculating Apogee", "Earth",
}

// DefaultBodies returns every supported body, Sun through Earth.
func DefaultBodies() []Body {
	out := make([]Body, len(bodyNames))
	for i := range out {
		out[i] = Body(i)
	}

	return out
}

// Valid reports whether b is a supported body.
func (b Body) Valid() bool { return b >= Sun && int(b) < len(bodyNames) }

// String returns the display name, e.g. "Mean Node".
func (b Body) String() string {
	if !b.Valid() {
		return "Body(" + strconv.Itoa(int(b)) + ")"
	}

	return bodyNames[b]
}

// ParseBody accepts a numeric identifier or a display name (case-insensitive,
// spaces optional).
func ParseBody(s string) (Body, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		b := Body(n)
		if !b.Valid() {
			return 0, serrors.With(serrors.ErrNotFound, "unsupported body %d", n)
		}

		return b, nil
	}

	compact := func(v string) string { return strings.ToLower(strings.ReplaceAll(v, " ", "")) }
	for i, name := range bodyNames {
		if compact(name) == compact(s) {
			return Body(i), nil
		}
	}

	return 0, serrors.With(serrors.ErrNotFound, "unsupported body %q", s)
}

// Frame is the coordinate origin positions are computed for.
type Frame string

const (
	// Geocentric positions are seen from the center of the Earth.
	Geocentric Frame = "geocentric"
	// Heliocentric positions are seen from the center of the Sun.
	Heliocentric Frame = "heliocentric"
)

// ParseFrame resolves a frame name case-insensitively. An empty name is geocentric.
func ParseFrame(s string) (Frame, error) {
	switch f := Frame(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Geocentric, nil
	case Geocentric, Heliocentric:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown frame %q", s)
	}
}
