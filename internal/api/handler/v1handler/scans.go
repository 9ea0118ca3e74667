package v1handler

import "net/http"

// TriggerScans enqueues one breach scan job per active monitored email of the
// caller. Scans already queued for an email are not duplicated.
func (h *Handler) TriggerScans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	receipt, err := h.deps.Scans.EnqueueUserScans(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, receipt)
}
