package v1handler

import (
	"net/http"

	"breachwatch/pkg/domain"
)

type emailList struct {
	Items []domain.MonitoredEmail `json:"items"`
}

// ListMonitoredEmails returns the caller's monitored emails, active first.
func (h *Handler) ListMonitoredEmails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	emails, err := h.deps.Monitor.MonitoredEmails(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if emails == nil {
		emails = []domain.MonitoredEmail{}
	}

	writeJSON(ctx, w, http.StatusOK, emailList{Items: emails})
}

type setMonitoredEmailRequest struct {
	Email           string `json:"email"`
	ReplaceExisting bool   `json:"replaceExisting"`
}

// SetMonitoredEmail adds an email to the caller's monitored set. Free-tier
// callers with an active email get a limit-reached error unless
// replaceExisting is set, which swaps the active email for the new one.
func (h *Handler) SetMonitoredEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req setMonitoredEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	email, err := h.deps.Monitor.SetMonitoredEmail(ctx,
		GetUserIDFromContext(ctx), req.Email, req.ReplaceExisting)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, email)
}
