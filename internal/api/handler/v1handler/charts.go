package v1handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"skychart/internal/chart"
	"skychart/pkg/domain"
	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size used when the limit query parameter is absent.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100

	maxBodyBytes = 1 << 16
)

// CreateChartRequest is the body of POST /v1/charts.
type CreateChartRequest struct {
	At    string
	Frame string
}

func (r *CreateChartRequest) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "at":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode at")
			}
			r.At = v
		case "frame":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode frame")
			}
			r.Frame = v
		default:
			return d.Skip()
		}

		return nil
	})
}

func (h *Handler) CreateChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	var req CreateChartRequest
	if err := req.Decode(jx.DecodeBytes(body)); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}
	if req.At == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid payload: missing at"))

		return
	}

	at, err := chart.ParseInstant(req.At)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	// an empty frame is resolved by the service
	var frame ephemeris.Frame
	if req.Frame != "" {
		if frame, err = ephemeris.ParseFrame(req.Frame); err != nil {
			h.writeError(w, r, err)

			return
		}
	}

	res, err := h.deps.Charts.Enqueue(ctx, GetUserIDFromContext(ctx), at, frame)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Location", "/v1/charts/"+res.ID.String())
	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { encodeChart(e, res) })
}

func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = uint(n)
	}

	charts, next, err := h.deps.Charts.UserCharts(ctx,
		GetUserIDFromContext(ctx),
		domain.ChartStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("charts", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range charts {
						encodeChart(e, &charts[i])
					}
				})
			})
			if next != "" {
				e.Field("nextCursor", func(e *jx.Encoder) { e.Str(next) })
			}
		})
	})
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := chartIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Charts.Result(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeChart(e, res) })
}

func (h *Handler) DeleteChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := chartIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Charts.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func chartIDFromPath(r *http.Request) (domain.ChartID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ChartID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid chart id")
	}

	return domain.ChartID(id), nil
}

func encodeChart(e *jx.Encoder, c *domain.Chart) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(c.ID.String()) })
		e.Field("at", func(e *jx.Encoder) { e.Str(c.At.UTC().Format(time.RFC3339)) })
		e.Field("frame", func(e *jx.Encoder) { e.Str(c.Frame) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(c.Status)) })
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(c.Attempts) })
		if c.Status == domain.ChartStatusFailed && c.LastError != "" {
			e.Field("error", func(e *jx.Encoder) { e.Str(c.LastError) })
		}
		if c.Status == domain.ChartStatusCompleted {
			e.Field("result", func(e *jx.Encoder) { encodeResult(e, c.Result) })
		}
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(c.CreatedAt.UTC().Format(time.RFC3339Nano)) })
		if !c.UpdatedAt.IsZero() {
			e.Field("updatedAt", func(e *jx.Encoder) { e.Str(c.UpdatedAt.UTC().Format(time.RFC3339Nano)) })
		}
	})
}

func encodeResult(e *jx.Encoder, res domain.ChartResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("placements", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range res.Placements {
					encodePlacement(e, p)
				}
			})
		})
		e.Field("skipped", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range res.Skipped {
					e.Obj(func(e *jx.Encoder) {
						e.Field("body", func(e *jx.Encoder) { e.Int(s.Body) })
						e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
						e.Field("reason", func(e *jx.Encoder) { e.Str(s.Reason) })
					})
				}
			})
		})
	})
}

func encodePlacement(e *jx.Encoder, p domain.Placement) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("body", func(e *jx.Encoder) { e.Int(p.Body) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("longitude", func(e *jx.Encoder) { e.Float64(p.Longitude) })
		e.Field("latitude", func(e *jx.Encoder) { e.Float64(p.Latitude) })
		e.Field("distance", func(e *jx.Encoder) { e.Float64(p.Distance) })
		e.Field("longitudeSpeed", func(e *jx.Encoder) { e.Float64(p.LongitudeSpeed) })
		e.Field("sign", func(e *jx.Encoder) { e.Str(p.Sign) })
		e.Field("signIndex", func(e *jx.Encoder) { e.Int(p.SignIndex) })
		e.Field("signAbbreviation", func(e *jx.Encoder) { e.Str(p.SignAbbreviation) })
		e.Field("emoji", func(e *jx.Encoder) { e.Str(p.Emoji) })
		e.Field("element", func(e *jx.Encoder) { e.Str(p.Element) })
		e.Field("quality", func(e *jx.Encoder) { e.Str(p.Quality) })
		e.Field("degreeWithinSign", func(e *jx.Encoder) { e.Float64(p.DegreeWithinSign) })
		e.Field("house", func(e *jx.Encoder) { e.Str(p.House) })
		e.Field("retrograde", func(e *jx.Encoder) { e.Bool(p.Retrograde) })
	})
}
