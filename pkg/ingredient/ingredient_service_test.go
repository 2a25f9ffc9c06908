package ingredient

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type fakeIngredientRepository struct {
	ingredients map[uint]*entities.Ingredient
	nextID      uint
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{ingredients: map[uint]*entities.Ingredient{}, nextID: 1}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	ingredient.ID = f.nextID
	f.nextID++
	cp := *ingredient
	f.ingredients[ingredient.ID] = &cp
	return nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, userID uint) ([]*entities.Ingredient, error) {
	var out []*entities.Ingredient
	for _, i := range f.ingredients {
		if i.UserID == userID {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id, userID uint) (*entities.Ingredient, error) {
	i, ok := f.ingredients[id]
	if !ok || i.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(_ context.Context, ids []uint, userID uint) ([]entities.Ingredient, error) {
	var out []entities.Ingredient
	for _, id := range ids {
		if i, ok := f.ingredients[id]; ok && i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	cp := *ingredient
	f.ingredients[ingredient.ID] = &cp
	return nil
}

func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, id, userID uint) (int64, error) {
	i, ok := f.ingredients[id]
	if !ok || i.UserID != userID {
		return 0, nil
	}
	delete(f.ingredients, id)
	return 1, nil
}

func TestCreateIngredient(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)

	res, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "Cabbage"}, "1")
	require.NoError(t, err)
	assert.Equal(t, "Cabbage", res.Name)
	assert.Equal(t, uint(1), repo.ingredients[res.ID].UserID)
}

func TestCreateIngredientEmptyName(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)

	_, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: ""}, "1")
	assert.ErrorIs(t, err, domain.ErrIngredientNameRequired)
	assert.Empty(t, repo.ingredients)
}

func TestGetIngredientsLimitedToUserAndOrdered(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)
	ctx := context.Background()

	for _, name := range []string{"Pineapple", "Flour"} {
		_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: name}, "1")
		require.NoError(t, err)
	}
	_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Durian"}, "2")
	require.NoError(t, err)

	res, err := svc.GetIngredients(ctx, "1")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Pineapple", res[0].Name)
	assert.Equal(t, "Flour", res[1].Name)
}

func TestDeleteIngredientNotOwned(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Salt"}, "1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteIngredient(ctx, "1", "2"), domain.ErrIngredientNotFound)
	require.NoError(t, svc.DeleteIngredient(ctx, "1", "1"))
}
