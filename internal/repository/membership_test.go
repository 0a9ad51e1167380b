package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"foodgram/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository_RemoveMissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(1, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Remove(ctx, models.RecipeSetFavorites, 1, 7)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_AggregateCart(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"name", "measurement_unit", "total"}).
		AddRow("egg", "pcs", 4).
		AddRow("flour", "g", 350)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ingredients.name`)).
		WithArgs(1).
		WillReturnRows(rows)

	items, err := repo.AggregateCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ShoppingListItem{Name: "egg", MeasurementUnit: "pcs", Total: 4}, items[0])
	assert.Equal(t, models.ShoppingListItem{Name: "flour", MeasurementUnit: "g", Total: 350}, items[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
