package zodiac

// House is the 30° bin a longitude falls into, First = 0 through Twelfth = 11.
// It shares its partition with Sign; it is not an astrological house system.
type House int

const (
	First House = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Eighth
	Ninth
	Tenth
	Eleventh
	Twelfth
)

var houseNames = [SignCount]string{
	"First", "Second", "Third", "Fourth", "Fifth", "Sixth",
	"Seventh", "Eighth", "Ninth", "Tenth", "Eleventh", "Twelfth",
}

// Index returns the bin index, 0 through 11.
func (h House) Index() int { return int(h) }

// String returns the ordinal name, e.g. "Seventh".
func (h House) String() string {
	if h < First || h > Twelfth {
		return "House(" + itoa(int(h)) + ")"
	}

	return houseNames[h]
}

// Label returns the display form used in reports, e.g. "Seventh House".
func (h House) Label() string { return h.String() + " House" }
