package server

import (
	"foodgram/internal/models"
	"foodgram/internal/service"
)

// Response projections. The API renders flattened views rather than raw
// models: recipe ingredients carry the catalog fields next to the amount,
// and users carry the viewer-relative subscription flag.

type userView struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type tagView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ingredientView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type recipeIngredientView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type recipeView struct {
	ID               uint                   `json:"id"`
	Tags             []tagView              `json:"tags"`
	Author           userView               `json:"author"`
	Ingredients      []recipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// recipeShortView is the compact projection returned by the toggle
// endpoints and embedded in author cards.
type recipeShortView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type authorCardView struct {
	userView
	Recipes      []recipeShortView `json:"recipes"`
	RecipesCount int64             `json:"recipes_count"`
}

func buildUserView(user *models.User, isSubscribed bool) userView {
	return userView{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

func buildTagView(tag *models.Tag) tagView {
	return tagView{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func buildIngredientView(ingredient *models.Ingredient) ingredientView {
	return ingredientView{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func buildRecipeView(recipe *models.Recipe, authorSubscribed bool) recipeView {
	tags := make([]tagView, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tags = append(tags, buildTagView(&recipe.Tags[i]))
	}

	ingredients := make([]recipeIngredientView, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		ingredients = append(ingredients, recipeIngredientView{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	return recipeView{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           buildUserView(&recipe.Author, authorSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      recipe.IsFavorited,
		IsInShoppingCart: recipe.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}

func buildRecipeShortView(recipe *models.Recipe) recipeShortView {
	return recipeShortView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

func buildAuthorCardView(card *service.AuthorCard) authorCardView {
	recipes := make([]recipeShortView, 0, len(card.Recipes))
	for i := range card.Recipes {
		recipes = append(recipes, buildRecipeShortView(&card.Recipes[i]))
	}
	return authorCardView{
		userView:     buildUserView(&card.User, card.IsSubscribed),
		Recipes:      recipes,
		RecipesCount: card.RecipesCount,
	}
}
