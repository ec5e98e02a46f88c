package v1handler

import (
	"context"
	"errors"
	"net/http"

	"skychart/internal/chart"
	"skychart/pkg/logger"
	"skychart/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Charts chart.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes. Every route requires an authenticated user,
// see SecHandler.Middleware.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/classify", h.Classify)
	mux.HandleFunc("POST /v1/charts", h.CreateChart)
	mux.HandleFunc("GET /v1/charts", h.ListCharts)
	mux.HandleFunc("GET /v1/charts/{id}", h.GetChart)
	mux.HandleFunc("DELETE /v1/charts/{id}", h.DeleteChart)

	return mux
}

// ErrorResponse is the body of every non-2xx v1 response.
type ErrorResponse struct {
	Code    string
	Message string
}

func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(r.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(r.Message) })
	})
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrDomain:       {http.StatusUnprocessableEntity, "value out of domain"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "rate limited"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Semantic errors keep their message; any
// other error is logged and reported as an opaque internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := ks.message
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		msg = sErr.Message()
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
