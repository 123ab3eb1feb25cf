package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/dbtest"
	"github.com/artesyoficios/studio/internal/db/models"
)

func TestCreate(t *testing.T) {
	db := dbtest.Open(t)

	testCases := []struct {
		name      string
		input     Input
		wantError bool
	}{
		{name: "valid", input: Input{Name: "Cerámica"}},
		{name: "missing name", input: Input{}, wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Create(db, tc.input)
			if tc.wantError {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, c.ID, 21)
			assert.Equal(t, tc.input.Name, c.Name)
			assert.NotEmpty(t, c.CreatedAt)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	db := dbtest.Open(t)

	for _, c := range []models.Category{
		{ID: "a", Name: "Old", CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: "b", Name: "New", CreatedAt: "2024-02-01T00:00:00.000Z"},
	} {
		require.NoError(t, db.Create(&c).Error)
	}

	categories, err := List(db)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "New", categories[0].Name)
	assert.Equal(t, "Old", categories[1].Name)
}

func TestGetAndDelete(t *testing.T) {
	db := dbtest.Open(t)

	c, err := Create(db, Input{Name: "Textil"})
	require.NoError(t, err)

	got, err := Get(db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Textil", got.Name)

	require.NoError(t, Delete(db, c.ID))
	require.NoError(t, Delete(db, c.ID), "deleting twice must succeed")
	require.NoError(t, Delete(db, "missing"))

	_, err = Get(db, c.ID)
	assert.True(t, apperror.IsNotFound(err))
}
