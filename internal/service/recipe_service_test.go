package service

import (
	"context"
	"errors"
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTagRepository is a mock of the TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.Tag, error) {
	args := m.Called(ctx, slugs)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// MockIngredientRepository is a mock of the IngredientRepository interface
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Search(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	args := m.Called(ctx, namePrefix, limit)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func validRecipeInput() RecipeInput {
	return RecipeInput{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		TagIDs:      []uint{1},
		Ingredients: []IngredientAmount{{ID: 1, Amount: 100}},
	}
}

func TestRecipeServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewRecipeService(nil, nil, nil, nil, nil)

	tests := []struct {
		name   string
		mutate func(*RecipeInput)
	}{
		{"empty name", func(in *RecipeInput) { in.Name = "  " }},
		{"empty text", func(in *RecipeInput) { in.Text = "" }},
		{"cooking time too low", func(in *RecipeInput) { in.CookingTime = 0 }},
		{"cooking time too high", func(in *RecipeInput) { in.CookingTime = 121 }},
		{"no tags", func(in *RecipeInput) { in.TagIDs = nil }},
		{"duplicate tags", func(in *RecipeInput) { in.TagIDs = []uint{1, 1} }},
		{"no ingredients", func(in *RecipeInput) { in.Ingredients = nil }},
		{"duplicate ingredients", func(in *RecipeInput) {
			in.Ingredients = []IngredientAmount{{ID: 1, Amount: 10}, {ID: 1, Amount: 20}}
		}},
		{"amount too low", func(in *RecipeInput) {
			in.Ingredients = []IngredientAmount{{ID: 1, Amount: 0}}
		}},
		{"amount too high", func(in *RecipeInput) {
			in.Ingredients = []IngredientAmount{{ID: 1, Amount: 101}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)

			_, err := svc.Create(ctx, 1, in)
			require.Error(t, err)

			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestRecipeServiceCreateUnknownReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tag", func(t *testing.T) {
		tags := new(MockTagRepository)
		ingredients := new(MockIngredientRepository)
		svc := NewRecipeService(nil, tags, ingredients, nil, nil)

		tags.On("GetByIDs", ctx, []uint{1}).Return([]models.Tag{}, nil)

		_, err := svc.Create(ctx, 1, validRecipeInput())
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		tags := new(MockTagRepository)
		ingredients := new(MockIngredientRepository)
		svc := NewRecipeService(nil, tags, ingredients, nil, nil)

		tags.On("GetByIDs", ctx, []uint{1}).Return([]models.Tag{{ID: 1}}, nil)
		ingredients.On("GetByIDs", ctx, []uint{1}).Return([]models.Ingredient{}, nil)

		_, err := svc.Create(ctx, 1, validRecipeInput())
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestRecipeServiceOwnership(t *testing.T) {
	ctx := context.Background()
	recipe := &models.Recipe{ID: 7, AuthorID: 1}

	t.Run("non-author update is forbidden", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		svc := NewRecipeService(recipes, nil, nil, nil, nil)

		recipes.On("GetByID", ctx, uint(7)).Return(recipe, nil)

		_, err := svc.Update(ctx, 2, false, 7, validRecipeInput())
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("non-author delete is forbidden", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		svc := NewRecipeService(recipes, nil, nil, nil, nil)

		recipes.On("GetByID", ctx, uint(7)).Return(recipe, nil)

		err := svc.Delete(ctx, 2, false, 7)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "FORBIDDEN", appErr.Code)
		recipes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin delete is allowed", func(t *testing.T) {
		recipes := new(MockRecipeRepository)
		svc := NewRecipeService(recipes, nil, nil, nil, nil)

		recipes.On("GetByID", ctx, uint(7)).Return(recipe, nil)
		recipes.On("Delete", ctx, uint(7)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 2, true, 7))
		recipes.AssertExpectations(t)
	})
}

func TestRecipeServiceListAnonymousMembershipFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewRecipeService(nil, nil, nil, nil, nil)

	// Anonymous viewers asking for their favorites get an empty page, and
	// no repository call is made.
	recipes, total, err := svc.List(ctx, 0, ListRecipesInput{OnlyFavorited: true, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.Zero(t, total)

	recipes, total, err = svc.List(ctx, 0, ListRecipesInput{OnlyInCart: true, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.Zero(t, total)
}
