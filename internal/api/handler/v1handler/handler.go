// Package v1handler implements the version 1 HTTP API: password exposure
// checks, monitored email management, scan triggering and breach findings.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"breachwatch/internal/monitor"
	"breachwatch/internal/password"
	"breachwatch/internal/scan"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"

	"go.uber.org/zap"
)

// Deps bundles the services the v1 handlers delegate to.
type Deps struct {
	Monitor  monitor.Monitor
	Password password.Checker
	Scans    scan.Scans
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns a mux with all v1 endpoints registered. Paths are relative
// to the /v1 mount point.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /password-checks", h.CheckPassword)
	mux.HandleFunc("GET /monitored-emails", h.ListMonitoredEmails)
	mux.HandleFunc("PUT /monitored-emails", h.SetMonitoredEmail)
	mux.HandleFunc("POST /scans", h.TriggerScans)
	mux.HandleFunc("GET /breaches", h.ListBreaches)
	mux.HandleFunc("POST /breaches/{id}/resolve", h.ResolveBreach)
	mux.HandleFunc("GET /dashboard", h.GetDashboard)

	return mux
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusForKind maps semantic error kinds to HTTP statuses. The quota error
// intentionally maps to 402: it signals "upgrade required", not a broken
// request or server.
var statusForKind = map[error]int{
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrLimitReached: http.StatusPaymentRequired,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	message := "internal error"

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		if s, ok := statusForKind[serr.Kind()]; ok {
			status = s
			code = serr.Kind().Error()
			message = serr.Message()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// decodeJSON parses the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
