package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
)

// ListViewHandler handles GET /catalog/items.
type ListViewHandler struct {
	svc *appsvcs.Services
}

// NewListViewHandler returns a ListViewHandler backed by the given services.
func NewListViewHandler(svc *appsvcs.Services) *ListViewHandler {
	return &ListViewHandler{svc: svc}
}

// Execute returns the current view.
//
//	@Summary		Current view
//	@Description	Returns the catalog as currently filtered and sorted
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	ViewResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/catalog/items [get]
func (h *ListViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Catalog.View(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toViewResponse(view))
}

// ListAllHandler handles GET /catalog/items/all.
type ListAllHandler struct {
	svc *appsvcs.Services
}

// NewListAllHandler returns a ListAllHandler backed by the given services.
func NewListAllHandler(svc *appsvcs.Services) *ListAllHandler {
	return &ListAllHandler{svc: svc}
}

// Execute returns the full catalog, ignoring the view.
//
//	@Summary		Full catalog
//	@Description	Returns every item in insertion order
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	ItemsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/catalog/items/all [get]
func (h *ListAllHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.Items(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ItemsResponse{Items: toItemResponses(items), Count: len(items)})
}
