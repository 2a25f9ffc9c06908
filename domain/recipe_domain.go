package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrInvalidTimeMinutes  = errors.New("time_minutes must be zero or positive")
	ErrInvalidCost         = errors.New("cost must be zero or positive")
)

type (
	CreateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		TimeMinutes int     `json:"time_minutes" validate:"gte=0"`
		Cost        float64 `json:"cost" validate:"gte=0"`
		Tags        []uint  `json:"tags"`
		Ingredients []uint  `json:"ingredients"`
	}

	// PatchRecipeRequest carries pointers so an omitted field can be told
	// apart from a zero value. A present tags/ingredients list replaces
	// the whole association set.
	PatchRecipeRequest struct {
		Title       *string  `json:"title"`
		TimeMinutes *int     `json:"time_minutes" validate:"omitempty,gte=0"`
		Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
		Tags        *[]uint  `json:"tags"`
		Ingredients *[]uint  `json:"ingredients"`
	}

	// PutRecipeRequest overwrites every updatable field. Omitted tag and
	// ingredient lists clear the recipe's association sets.
	PutRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		TimeMinutes int     `json:"time_minutes" validate:"gte=0"`
		Cost        float64 `json:"cost" validate:"gte=0"`
		Tags        []uint  `json:"tags"`
		Ingredients []uint  `json:"ingredients"`
	}

	RecipeResponse struct {
		ID          uint      `json:"id"`
		Title       string    `json:"title"`
		TimeMinutes int       `json:"time_minutes"`
		Cost        float64   `json:"cost"`
		ImageURL    string    `json:"image_url,omitempty"`
		Tags        []uint    `json:"tags"`
		Ingredients []uint    `json:"ingredients"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		ID          uint                 `json:"id"`
		Title       string               `json:"title"`
		TimeMinutes int                  `json:"time_minutes"`
		Cost        float64              `json:"cost"`
		ImageURL    string               `json:"image_url,omitempty"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	UploadRecipeImageResponse struct {
		ID       uint   `json:"id"`
		ImageURL string `json:"image_url"`
	}
)
