package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
)

// PostItemHandler handles POST /catalog/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute adds an item to the catalog and resets the view.
//
//	@Summary		Add item
//	@Description	Appends a new item to the catalog; the server assigns its ID
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/catalog/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Catalog.AddItem(r.Context(), req.Name, req.Category, *req.Price, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/catalog/items/"+item.ID.String())
	httpx.JSON(w, http.StatusCreated, toItemResponse(*item))
}
