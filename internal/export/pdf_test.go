package export

import (
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListPDF(t *testing.T) {
	items := []models.ShoppingListItem{
		{Name: "egg", MeasurementUnit: "pcs", Total: 4},
		{Name: "flour", MeasurementUnit: "g", Total: 350},
	}

	data, err := ShoppingListPDF(items)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestShoppingListPDFEmpty(t *testing.T) {
	data, err := ShoppingListPDF(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
