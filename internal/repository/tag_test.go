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
	"gorm.io/gorm"
)

func TestTagRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "color", "slug"}).
		AddRow(1, "Breakfast", "#E26C2D", "breakfast").
		AddRow(2, "Lunch", "#49B64E", "lunch")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" ORDER BY id ASC`)).
		WillReturnRows(rows)

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "breakfast", tags[0].Slug)
	assert.Equal(t, "lunch", tags[1].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "color", "slug"}).
			AddRow(1, "Breakfast", "#E26C2D", "breakfast")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" WHERE "tags"."id" = $1 ORDER BY "tags"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(rows)

		tag, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Breakfast", tag.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" WHERE "tags"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		tag, err := repo.GetByID(ctx, 99)
		require.Error(t, err)
		assert.Nil(t, tag)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
