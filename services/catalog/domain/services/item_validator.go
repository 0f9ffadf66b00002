package services

import (
	"fmt"

	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ValidatePrice enforces that a price entered by the user has a numeric value.
// The returned error wraps ErrInvalidPrice.
func ValidatePrice(p models.Price) error {
	if !p.IsNumeric() {
		return fmt.Errorf("%w: price %q must be a number", catalogdomain.ErrInvalidPrice, p.String())
	}
	return nil
}

// ValidateItemForCreation performs checks on a fully-constructed Item before it
// is stored. Names, categories and descriptions are free text and are not
// restricted; strictPrices additionally requires a numeric price. Only the
// price failure wraps ErrInvalidPrice.
func ValidateItemForCreation(item *models.Item, strictPrices bool) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if strictPrices {
		if err := ValidatePrice(item.Price); err != nil {
			return err
		}
	}

	return nil
}
