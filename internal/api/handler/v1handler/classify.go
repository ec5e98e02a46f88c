package v1handler

import (
	"net/http"
	"strconv"

	"skychart/pkg/serrors"

	"github.com/go-faster/jx"
)

// Classify places a single ecliptic longitude in the zodiac. The optional
// speed decides retrograde motion.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	longitude, err := parseFloatParam(q.Get("longitude"), "longitude", true)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	speed, err := parseFloatParam(q.Get("speed"), "speed", false)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Charts.Classify(longitude, speed)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("longitude", func(e *jx.Encoder) { e.Float64(c.Longitude) })
			e.Field("sign", func(e *jx.Encoder) { e.Str(c.Sign.String()) })
			e.Field("signIndex", func(e *jx.Encoder) { e.Int(c.Sign.Index()) })
			e.Field("signAbbreviation", func(e *jx.Encoder) { e.Str(c.Sign.Abbreviation()) })
			e.Field("emoji", func(e *jx.Encoder) { e.Str(c.Emoji()) })
			e.Field("element", func(e *jx.Encoder) { e.Str(string(c.Element())) })
			e.Field("quality", func(e *jx.Encoder) { e.Str(string(c.Quality())) })
			e.Field("degreeWithinSign", func(e *jx.Encoder) { e.Float64(c.DegreeWithinSign) })
			e.Field("house", func(e *jx.Encoder) { e.Str(c.House.Label()) })
			e.Field("retrograde", func(e *jx.Encoder) { e.Bool(c.Retrograde) })
		})
	})
}

func parseFloatParam(v, name string, required bool) (float64, error) {
	if v == "" {
		if required {
			return 0, serrors.With(serrors.ErrBadRequest, "%s is required", name)
		}

		return 0, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return f, nil
}
