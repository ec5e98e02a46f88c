// Package zodiac classifies ecliptic longitudes into zodiac metadata.
//
// The circle is split into twelve 30° bins starting at 0° (the reference
// equinox). The bin index selects both the sign and the house, so the two can
// never disagree. Everything here is a pure lookup over read-only tables and is
// safe for concurrent use.
package zodiac

import "skychart/pkg/serrors"

// Element is the classical element assigned to a sign.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Quality is the modality assigned to a sign.
type Quality string

const (
	Cardinal Quality = "Cardinal"
	Fixed    Quality = "Fixed"
	Mutable  Quality = "Mutable"
)

// Sign is one of the twelve zodiac signs. Its value is the canonical index,
// Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of signs and houses.
const SignCount = 12

// SignWidth is the angular width of a sign in degrees.
const SignWidth = 30.0

var (
	signNames = [SignCount]string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
	signAbbreviations = [SignCount]string{
		"Ari", "Tau", "Gem", "Can", "Leo", "Vir", "Lib", "Sco", "Sag", "Cap", "Aqu", "Pis",
	}
	signEmojis = [SignCount]string{
		"♈️", "♉️", "♊️", "♋️", "♌️", "♍️", "♎️", "♏️", "♐️", "♑️", "♒️", "♓️",
	}
	elementCycle = [...]Element{Fire, Earth, Air, Water}
	qualityCycle = [...]Quality{Cardinal, Fixed, Mutable}
)

// Signs returns all signs in canonical order.
func Signs() []Sign {
	out := make([]Sign, SignCount)
	for i := range out {
		out[i] = Sign(i)
	}

	return out
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool { return s >= Aries && s <= Pisces }

// Index returns the canonical position of s, 0 through 11.
func (s Sign) Index() int { return int(s) }

// String returns the canonical name, e.g. "Aries".
func (s Sign) String() string {
	if !s.Valid() {
		return "Sign(" + itoa(int(s)) + ")"
	}

	return signNames[s]
}

// Abbreviation returns the three-letter form, e.g. "Ari".
func (s Sign) Abbreviation() string { return signAbbreviations[s.wrap()] }

// Emoji returns the sign glyph.
func (s Sign) Emoji() string { return signEmojis[s.wrap()] }

// Element cycles Fire, Earth, Air, Water by index.
func (s Sign) Element() Element { return elementCycle[s.wrap()%len(elementCycle)] }

// Quality cycles Cardinal, Fixed, Mutable by index.
func (s Sign) Quality() Quality { return qualityCycle[s.wrap()%len(qualityCycle)] }

// wrap keeps lookups total for out-of-range values built by hand.
func (s Sign) wrap() int {
	return ((int(s) % SignCount) + SignCount) % SignCount
}

// ElementOf returns the element of sign.
func ElementOf(sign Sign) Element { return sign.Element() }

// QualityOf returns the quality of sign.
func QualityOf(sign Sign) Quality { return sign.Quality() }

// EmojiOf returns the glyph of sign.
func EmojiOf(sign Sign) string { return sign.Emoji() }

// SignByName resolves a sign from its canonical capitalized name. Matching is
// exact: "aries" and "Ari" are not found.
func SignByName(name string) (Sign, error) {
	for i, n := range signNames {
		if n == name {
			return Sign(i), nil
		}
	}

	return 0, serrors.With(serrors.ErrNotFound, "unknown sign %q", name)
}
