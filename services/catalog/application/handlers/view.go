package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// FilterViewHandler handles POST /catalog/view/filter.
type FilterViewHandler struct {
	svc *appsvcs.Services
}

// NewFilterViewHandler returns a FilterViewHandler backed by the given services.
func NewFilterViewHandler(svc *appsvcs.Services) *FilterViewHandler {
	return &FilterViewHandler{svc: svc}
}

// Execute filters the catalog by category.
//
//	@Summary		Filter by category
//	@Description	Shows only items whose category matches ignoring case; clears any sort. An empty category shows everything.
//	@Tags			view
//	@Accept			json
//	@Produce		json
//	@Param			request	body		FilterRequest	true	"Category"
//	@Success		200		{object}	ViewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/catalog/view/filter [post]
func (h *FilterViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[FilterRequest](w, r)
	if !ok {
		return
	}
	items, err := h.svc.Catalog.FilterByCategory(r.Context(), req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toViewResponse(models.View{Items: items, Category: req.Category}))
}

// SortViewHandler handles POST /catalog/view/sort.
type SortViewHandler struct {
	svc *appsvcs.Services
}

// NewSortViewHandler returns a SortViewHandler backed by the given services.
func NewSortViewHandler(svc *appsvcs.Services) *SortViewHandler {
	return &SortViewHandler{svc: svc}
}

// Execute sorts the view by price.
//
//	@Summary		Sort by price
//	@Description	Orders the view by price; equal prices keep their order
//	@Tags			view
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SortRequest	true	"Direction: asc or desc"
//	@Success		200		{object}	ViewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/catalog/view/sort [post]
func (h *SortViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SortRequest](w, r)
	if !ok {
		return
	}
	dir, err := models.ParseSortDirection(req.Direction)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidSortDirection, err))
		return
	}
	view, err := h.svc.Catalog.SortView(r.Context(), dir)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toViewResponse(view))
}

// ResetViewHandler handles DELETE /catalog/view.
type ResetViewHandler struct {
	svc *appsvcs.Services
}

// NewResetViewHandler returns a ResetViewHandler backed by the given services.
func NewResetViewHandler(svc *appsvcs.Services) *ResetViewHandler {
	return &ResetViewHandler{svc: svc}
}

// Execute drops filter and sort.
//
//	@Summary		Reset view
//	@Description	Shows the full catalog in insertion order again
//	@Tags			view
//	@Produce		json
//	@Success		200	{object}	ViewResponse
//	@Router			/catalog/view [delete]
func (h *ResetViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Catalog.ResetView(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toViewResponse(view))
}
