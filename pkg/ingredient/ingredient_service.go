package ingredient

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepository.GetIngredients(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.IngredientResponse{ID: i.ID, Name: i.Name, CreatedAt: i.CreatedAt})
	}
	return res, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.IngredientResponse{}, domain.ErrIngredientNameRequired
	}

	ingredient := &entities.Ingredient{UserID: ownerID, Name: req.Name}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name, CreatedAt: ingredient.CreatedAt}, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	ingredientID, err := parseID(id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.IngredientResponse{}, domain.ErrIngredientNameRequired
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name, CreatedAt: ingredient.CreatedAt}, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	ownerID, err := parseID(userID)
	if err != nil {
		return err
	}
	ingredientID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.ingredientRepository.DeleteIngredient(ctx, ingredientID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}
