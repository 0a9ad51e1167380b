package seed

import (
	"fmt"
	"math/rand"
	"time"

	"foodgram/internal/models"
	"foodgram/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var defaultTags = []models.Tag{
	{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	{Name: "Dessert", Color: "#F9A62B", Slug: "dessert"},
	{Name: "Snack", Color: "#31A6C9", Slug: "snack"},
}

var measurementUnits = []string{"g", "kg", "ml", "l", "pcs", "tbsp", "tsp", "cup"}

// CreateDefaultTags inserts the fixed tag catalog, skipping tags that
// already exist.
func (f *Factory) CreateDefaultTags() ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(defaultTags))
	for _, tmpl := range defaultTags {
		tag := tmpl
		err := f.db.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CreateIngredients generates a catalog of unique ingredient entries.
func (f *Factory) CreateIngredients(count int) ([]models.Ingredient, error) {
	seen := make(map[string]bool, count)
	ingredients := make([]models.Ingredient, 0, count)
	for len(ingredients) < count {
		name := gofakeit.Fruit()
		switch f.rng.Intn(3) {
		case 1:
			name = gofakeit.Vegetable()
		case 2:
			name = gofakeit.Lunch()
		}
		unit := measurementUnits[f.rng.Intn(len(measurementUnits))]
		key := name + "/" + unit
		if seen[key] {
			continue
		}
		seen[key] = true

		ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
		err := f.db.
			Where("name = ? AND measurement_unit = ?", name, unit).
			FirstOrCreate(&ingredient).Error
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// CreateUsers generates users with the shared demo password "password123".
func (f *Factory) CreateUsers(count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := &models.User{
			Email:     fmt.Sprintf("user%d-%s", i, gofakeit.Email()),
			Username:  fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Password:  string(hashed),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateRecipe builds one recipe for the user with a random tag and
// ingredient selection and a created_at spread over Options.MaxDays.
func (f *Factory) CreateRecipe(user *models.User, tags []models.Tag, ingredients []models.Ingredient) (*models.Recipe, error) {
	recipe := &models.Recipe{
		AuthorID:    user.ID,
		Name:        gofakeit.Dinner(),
		Text:        gofakeit.Paragraph(1, 3, 8, "\n"),
		CookingTime: validation.CookingTimeMin + f.rng.Intn(validation.CookingTimeMax-validation.CookingTimeMin),
		CreatedAt:   f.spreadTimestamp(),
	}
	if err := f.db.Create(recipe).Error; err != nil {
		return nil, err
	}

	for _, tag := range f.pickTags(tags) {
		row := models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}
		if err := f.db.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	for _, ingredient := range f.pickIngredients(ingredients) {
		row := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       validation.AmountMin + f.rng.Intn(validation.AmountMax-validation.AmountMin),
		}
		if err := f.db.Create(&row).Error; err != nil {
			return nil, err
		}
	}
	return recipe, nil
}

// CreateSocialMesh wires favorites, cart entries and subscriptions between
// the seeded users so listings and exports have data to show.
func (f *Factory) CreateSocialMesh(users []*models.User) error {
	var recipes []models.Recipe
	if err := f.db.Find(&recipes).Error; err != nil {
		return err
	}
	if len(recipes) == 0 || len(users) < 2 {
		return nil
	}

	for _, user := range users {
		for _, recipe := range f.pickRecipes(recipes, f.opts.FavoritesPerUser) {
			row := models.Favorite{UserID: user.ID, RecipeID: recipe.ID}
			if err := f.db.Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		for _, recipe := range f.pickRecipes(recipes, f.opts.CartItemsPerUser) {
			row := models.ShoppingCart{UserID: user.ID, RecipeID: recipe.ID}
			if err := f.db.Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		subscribed := 0
		for _, author := range users {
			if subscribed >= f.opts.SubscriptionsEach {
				break
			}
			if author.ID == user.ID {
				continue
			}
			row := models.Subscription{UserID: user.ID, AuthorID: author.ID}
			if err := f.db.Where("user_id = ? AND author_id = ?", user.ID, author.ID).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
			subscribed++
		}
	}
	return nil
}

func (f *Factory) spreadTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}

func (f *Factory) pickTags(tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	count := 1 + f.rng.Intn(minInt(2, len(tags)))
	shuffled := make([]models.Tag, len(tags))
	copy(shuffled, tags)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

func (f *Factory) pickIngredients(ingredients []models.Ingredient) []models.Ingredient {
	if len(ingredients) == 0 {
		return nil
	}
	count := 2 + f.rng.Intn(minInt(5, len(ingredients)))
	if count > len(ingredients) {
		count = len(ingredients)
	}
	shuffled := make([]models.Ingredient, len(ingredients))
	copy(shuffled, ingredients)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

func (f *Factory) pickRecipes(recipes []models.Recipe, count int) []models.Recipe {
	if count <= 0 || len(recipes) == 0 {
		return nil
	}
	if count > len(recipes) {
		count = len(recipes)
	}
	shuffled := make([]models.Recipe, len(recipes))
	copy(shuffled, recipes)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
