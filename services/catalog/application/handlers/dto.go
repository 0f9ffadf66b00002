package handlers

import (
	"time"

	"github.com/ghuser/wardrobe/services/catalog/application/subscribers"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ItemRequest is the request body for POST /catalog/items and PUT /catalog/items/{id}.
// Only price must be present; the text fields are stored exactly as sent.
type ItemRequest struct {
	Name        string  `json:"name"        validate:"max=1000" example:"product1"`
	Category    string  `json:"category"    validate:"max=1000" example:"category1"`
	Price       *string `json:"price"       validate:"required" example:"20"`
	Description string  `json:"description" validate:"max=10000" example:"description1"`
} // @name ItemRequest

// FilterRequest is the request body for POST /catalog/view/filter.
type FilterRequest struct {
	Category string `json:"category" example:"category1"`
} // @name FilterRequest

// SortRequest is the request body for POST /catalog/view/sort.
type SortRequest struct {
	Direction string `json:"direction" validate:"required" example:"asc"`
} // @name SortRequest

// ItemResponse is a single catalog item.
type ItemResponse struct {
	ID          string    `json:"id"          example:"1"`
	Name        string    `json:"name"        example:"product1"`
	Category    string    `json:"category"    example:"category1"`
	Price       string    `json:"price"       example:"20"`
	Description string    `json:"description" example:"description1"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ViewResponse is the list the user currently sees plus how it was derived.
type ViewResponse struct {
	Items    []ItemResponse `json:"items"`
	Category string         `json:"category,omitempty" example:"category1"`
	Sort     string         `json:"sort,omitempty"     example:"asc"`
	Count    int            `json:"count"              example:"2"`
} // @name ViewResponse

// ItemsResponse is the full catalog in insertion order.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count" example:"2"`
} // @name ItemsResponse

// ActivityResponse is one recent catalog mutation.
type ActivityResponse struct {
	Topic      string    `json:"topic"       example:"catalog.item.added"`
	EventID    string    `json:"event_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID     string    `json:"item_id"     example:"1"`
	Name       string    `json:"name"        example:"product1"`
	Category   string    `json:"category"    example:"category1"`
	Price      string    `json:"price"       example:"20"`
	OccurredAt time.Time `json:"occurred_at" example:"2024-01-15T10:30:00Z"`
} // @name ActivityResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price.String(),
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

func toViewResponse(v models.View) ViewResponse {
	return ViewResponse{
		Items:    toItemResponses(v.Items),
		Category: v.Category,
		Sort:     v.Sort.String(),
		Count:    len(v.Items),
	}
}

func toActivityResponse(a subscribers.Activity) ActivityResponse {
	return ActivityResponse{
		Topic:      a.Topic,
		EventID:    a.Event.EventID.String(),
		ItemID:     a.Event.ItemID,
		Name:       a.Event.Name,
		Category:   a.Event.Category,
		Price:      a.Event.Price,
		OccurredAt: a.Event.OccurredAt,
	}
}
