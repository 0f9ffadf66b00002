package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
)

// ActivityHandler handles GET /catalog/activity.
type ActivityHandler struct {
	svc *appsvcs.Services
}

// NewActivityHandler returns an ActivityHandler backed by the given services.
func NewActivityHandler(svc *appsvcs.Services) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Execute lists recent catalog mutations, newest first.
//
//	@Summary		Recent activity
//	@Description	Lists the most recent add, update and delete events
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries to return"
//	@Success		200		{array}		ActivityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/catalog/activity [get]
func (h *ActivityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	recent := h.svc.Activity.Recent(limit)
	out := make([]ActivityResponse, len(recent))
	for i, a := range recent {
		out[i] = toActivityResponse(a)
	}
	httpx.JSON(w, http.StatusOK, out)
}
