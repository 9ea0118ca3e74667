package v1handler

import (
	"net/http"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"

	"github.com/google/uuid"
)

type breachList struct {
	Items []domain.BreachFinding `json:"items"`
}

// ListBreaches returns the caller's breach findings, open before resolved.
func (h *Handler) ListBreaches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	findings, err := h.deps.Monitor.Breaches(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if findings == nil {
		findings = []domain.BreachFinding{}
	}

	writeJSON(ctx, w, http.StatusOK, breachList{Items: findings})
}

// ResolveBreach marks one of the caller's findings resolved. Later rescans
// that rediscover the breach keep the resolved status.
func (h *Handler) ResolveBreach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid breach id"))

		return
	}

	resolved, err := h.deps.Monitor.ResolveBreach(ctx, GetUserIDFromContext(ctx), domain.BreachID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, resolved)
}

// GetDashboard aggregates the caller's plan, breach counts and exposure score.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboard, err := h.deps.Monitor.Dashboard(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, dashboard)
}
