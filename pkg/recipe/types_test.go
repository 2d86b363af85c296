package recipe

import (
	"math"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestNew(t *testing.T) {
	r := New("  Apple Pie  ")

	if r.Name != "Apple Pie" {
		t.Errorf("expected trimmed name %q, got %q", "Apple Pie", r.Name)
	}
	if r.Ingredients == nil {
		t.Error("expected non-nil ingredients slice")
	}
	if r.Preparations == nil {
		t.Error("expected non-nil preparations slice")
	}
	if len(r.Ingredients) != 0 || len(r.Preparations) != 0 {
		t.Error("expected empty ingredient and preparation lists")
	}
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr string
	}{
		{
			name:   "valid recipe",
			recipe: Recipe{Name: "Chili", Ingredients: []Ingredient{{Name: "beans", Quantity: floatPtr(2)}}},
		},
		{
			name:   "valid recipe without ingredients",
			recipe: Recipe{Name: "Water"},
		},
		{
			name:    "empty name",
			recipe:  Recipe{Name: ""},
			wantErr: "name cannot be empty",
		},
		{
			name:    "whitespace name",
			recipe:  Recipe{Name: "   "},
			wantErr: "name cannot be empty",
		},
		{
			name:    "invalid ingredient",
			recipe:  Recipe{Name: "Chili", Ingredients: []Ingredient{{Name: ""}}},
			wantErr: "ingredient[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestIngredientValidate(t *testing.T) {
	tests := []struct {
		name       string
		ingredient Ingredient
		wantErr    bool
	}{
		{
			name:       "valid with quantity and unit",
			ingredient: Ingredient{Name: "flour", Quantity: floatPtr(2), Unit: "cups"},
		},
		{
			name:       "valid without quantity",
			ingredient: Ingredient{Name: "salt"},
		},
		{
			name:       "negative quantity accepted at model level",
			ingredient: Ingredient{Name: "flour", Quantity: floatPtr(-1)},
		},
		{
			name:       "empty name",
			ingredient: Ingredient{Name: "", Quantity: floatPtr(1)},
			wantErr:    true,
		},
		{
			name:       "whitespace name",
			ingredient: Ingredient{Name: "  ", Quantity: floatPtr(1)},
			wantErr:    true,
		},
		{
			name:       "NaN quantity",
			ingredient: Ingredient{Name: "flour", Quantity: floatPtr(math.NaN())},
			wantErr:    true,
		},
		{
			name:       "infinite quantity",
			ingredient: Ingredient{Name: "flour", Quantity: floatPtr(math.Inf(1))},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ingredient.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasQuantity(t *testing.T) {
	with := Ingredient{Name: "flour", Quantity: floatPtr(2)}
	if !with.HasQuantity() {
		t.Error("expected HasQuantity to be true")
	}

	without := Ingredient{Name: "salt"}
	if without.HasQuantity() {
		t.Error("expected HasQuantity to be false")
	}
}

func TestSetQuantity(t *testing.T) {
	ing := Ingredient{Name: "flour"}
	ing.SetQuantity(480)

	if ing.Quantity == nil || *ing.Quantity != 480 {
		t.Errorf("expected quantity 480, got %v", ing.Quantity)
	}
}
