package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// DeleteItemHandler handles DELETE /catalog/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item and resets the view. Unknown IDs answer 204 unless
// CATALOG_STRICT_DELETE is set.
//
//	@Summary		Delete item
//	@Description	Removes the item with the given ID
//	@Tags			catalog
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Catalog.DeleteItem(r.Context(), models.ItemID(chi.URLParam(r, "id"))); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
