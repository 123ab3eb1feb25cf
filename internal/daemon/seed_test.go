package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesyoficios/studio/internal/db/controller/brand"
	"github.com/artesyoficios/studio/internal/db/controller/category"
	"github.com/artesyoficios/studio/internal/db/controller/workshop"
	"github.com/artesyoficios/studio/internal/db/dbtest"
)

func TestSeed(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db), "second run is a no-op")

	workshops, err := workshop.List(db, "")
	require.NoError(t, err)
	require.Len(t, workshops, 2)

	categories, err := category.List(db)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	brands, err := brand.List(db)
	require.NoError(t, err)
	assert.Len(t, brands, 1)

	filtered, err := workshop.List(db, "Cerámica")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Torno de alfarero", filtered[0].Title)
	require.Len(t, filtered[0].Sessions, 1)
	assert.Equal(t, "2025-03-08", filtered[0].Sessions[0].Date)
}
