package v1handler

import "net/http"

type checkPasswordRequest struct {
	Password string `json:"password"`
}

type checkPasswordResponse struct {
	// Count is how many times the password appears in the breach corpus.
	Count int64 `json:"count"`
	// Exposed is a convenience flag for Count > 0.
	Exposed bool `json:"exposed"`
}

// CheckPassword runs the k-anonymity exposure check for the submitted
// password. The password itself never leaves the process.
func (h *Handler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	count, err := h.deps.Password.ExposureCount(ctx, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, checkPasswordResponse{
		Count:   count,
		Exposed: count > 0,
	})
}
