package models

import (
	"time"
)

// Tag categorizes recipes. Slug is the stable identifier used by listing filters.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Color string `gorm:"size:7;not null" json:"color"`
	Slug  string `gorm:"unique;not null" json:"slug"`
}

// Ingredient is a catalog entry. The same name may appear with different
// measurement units, so uniqueness is on the pair.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null;uniqueIndex:idx_ingredient_name_unit" json:"name"`
	MeasurementUnit string `gorm:"not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`
}

// Recipe is an author-owned publication. Tag and ingredient links live in
// explicit junction rows and are written together with the recipe in one
// transaction.
type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	Author      User   `gorm:"foreignKey:AuthorID" json:"author"`
	Name        string `gorm:"not null" json:"name"`
	Text        string `gorm:"type:text;not null" json:"text"`
	Image       string `json:"image"`
	CookingTime int    `gorm:"not null" json:"cooking_time"`

	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`

	// Computed for the requesting user at query time; not persisted.
	IsFavorited      bool `gorm:"-" json:"is_favorited"`
	IsInShoppingCart bool `gorm:"-" json:"is_in_shopping_cart"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecipeIngredient links a recipe to an ingredient with a quantity.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"-"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int        `gorm:"not null" json:"amount"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

// RecipeTag is the recipe/tag join row. The composite primary key doubles as
// the uniqueness constraint.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
}
