package services

import (
	"errors"
	"testing"

	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"integer", "15", false},
		{"decimal", "15.50", false},
		{"empty", "", true},
		{"words", "fifteen", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(models.RawPrice(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePrice(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, catalogdomain.ErrInvalidPrice) {
				t.Fatalf("ValidatePrice(%q) error = %v, want ErrInvalidPrice", tt.input, err)
			}
		})
	}
}

func TestValidateItemForCreation(t *testing.T) {
	t.Run("nil item returns error", func(t *testing.T) {
		err := ValidateItemForCreation(nil, true)
		if err == nil {
			t.Fatal("expected error for nil item")
		}
		if errors.Is(err, catalogdomain.ErrInvalidPrice) {
			t.Fatalf("nil item must not be reported as a price error: %v", err)
		}
	})

	t.Run("empty fields are accepted", func(t *testing.T) {
		item := models.NewItem("", "", models.PriceFromInt(1), "")
		if err := ValidateItemForCreation(item, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero ID returns error", func(t *testing.T) {
		item := &models.Item{Price: models.PriceFromInt(1)}
		err := ValidateItemForCreation(item, true)
		if err == nil {
			t.Fatal("expected error for empty ID")
		}
		if errors.Is(err, catalogdomain.ErrInvalidPrice) {
			t.Fatalf("missing ID must not be reported as a price error: %v", err)
		}
	})

	t.Run("non-numeric price rejected when strict", func(t *testing.T) {
		item := models.NewItem("shirt", "tops", models.RawPrice("cheap"), "")
		if err := ValidateItemForCreation(item, true); !errors.Is(err, catalogdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("non-numeric price accepted when lenient", func(t *testing.T) {
		item := models.NewItem("shirt", "tops", models.RawPrice("cheap"), "")
		if err := ValidateItemForCreation(item, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
