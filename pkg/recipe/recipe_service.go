package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/ingredient"
	"recipebox/pkg/tag"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		PatchRecipe(ctx context.Context, id string, req domain.PatchRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		PutRecipe(ctx context.Context, id string, req domain.PutRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, file *multipart.FileHeader, userID string) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if err := validateRecipeFields(req.Title, req.TimeMinutes, req.Cost); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	tags, err := s.resolveTags(ctx, req.Tags, ownerID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredients, err := s.resolveIngredients(ctx, req.Ingredients, ownerID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		UserID:      ownerID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Cost:        req.Cost,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

// PatchRecipe overwrites only the supplied fields. A supplied tag or
// ingredient list replaces that association set in full; an omitted
// list is left untouched. Every field is validated and every supplied
// list resolved before the first write, so a rejected request leaves
// the recipe unchanged.
func (s *recipeService) PatchRecipe(ctx context.Context, id string, req domain.PatchRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeTitleRequired
	}
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidTimeMinutes
	}
	if req.Cost != nil && *req.Cost < 0 {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidCost
	}

	var tags []entities.Tag
	if req.Tags != nil {
		if tags, err = s.resolveTags(ctx, *req.Tags, ownerID); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}
	var ingredients []entities.Ingredient
	if req.Ingredients != nil {
		if ingredients, err = s.resolveIngredients(ctx, *req.Ingredients, ownerID); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Cost != nil {
		recipe.Cost = *req.Cost
	}

	if req.Tags != nil {
		if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Tags = tags
	}
	if req.Ingredients != nil {
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Ingredients = ingredients
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

// PutRecipe overwrites every updatable field. Tag and ingredient lists
// omitted from the request clear the corresponding association set.
func (s *recipeService) PutRecipe(ctx context.Context, id string, req domain.PutRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if err := validateRecipeFields(req.Title, req.TimeMinutes, req.Cost); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	tags, err := s.resolveTags(ctx, req.Tags, ownerID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredients, err := s.resolveIngredients(ctx, req.Ingredients, ownerID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe.Title = req.Title
	recipe.TimeMinutes = req.TimeMinutes
	recipe.Cost = req.Cost

	if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	recipe.Tags = tags
	recipe.Ingredients = ingredients

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, file *multipart.FileHeader, userID string) (domain.UploadRecipeImageResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	url, err := s.s3.UploadFile(ctx, file, "recipes")
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	recipe.ImageURL = url
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{ID: recipe.ID, ImageURL: recipe.ImageURL}, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	recipeID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// resolveTags looks the requested tag ids up through an owner-scoped
// query, so a caller can only attach tags it owns.
func (s *recipeService) resolveTags(ctx context.Context, ids []uint, ownerID uint) ([]entities.Tag, error) {
	tags, err := s.tagRepository.GetTagsByIDs(ctx, ids, ownerID)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, domain.ErrTagNotFound
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, ids []uint, ownerID uint) ([]entities.Ingredient, error) {
	ingredients, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids, ownerID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, domain.ErrIngredientNotFound
	}
	return ingredients, nil
}

func validateRecipeFields(title string, timeMinutes int, cost float64) error {
	if strings.TrimSpace(title) == "" {
		return domain.ErrRecipeTitleRequired
	}
	if timeMinutes < 0 {
		return domain.ErrInvalidTimeMinutes
	}
	if cost < 0 {
		return domain.ErrInvalidCost
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	tagIDs := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	ingredientIDs := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID)
	}

	return domain.RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Cost:        r.Cost,
		ImageURL:    r.ImageURL,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
		CreatedAt:   r.CreatedAt,
	}
}

func toRecipeDetailResponse(r *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.TagResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	ingredients := make([]domain.IngredientResponse, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: i.ID, Name: i.Name, CreatedAt: i.CreatedAt})
	}

	return domain.RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Cost:        r.Cost,
		ImageURL:    r.ImageURL,
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt,
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}
