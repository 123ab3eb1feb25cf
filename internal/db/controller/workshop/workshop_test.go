package workshop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/apperror"
	"github.com/artesyoficios/studio/internal/db/dbtest"
	"github.com/artesyoficios/studio/internal/db/models"
)

func seedWorkshop(t *testing.T, db *gorm.DB, w models.Workshop) {
	t.Helper()

	if w.Images == nil {
		w.Images = []string{}
	}

	w.CreatedAt = models.Now()
	w.UpdatedAt = w.CreatedAt

	require.NoError(t, db.Create(&w).Error, "failed to seed workshop")
}

func countSessions(t *testing.T, db *gorm.DB, workshopID string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Session{}).Where("workshop_id = ?", workshopID).Count(&n).Error)

	return n
}

func TestCreateScenario(t *testing.T) {
	db := dbtest.Open(t)

	w, err := Create(db, Input{Title: "Cerámica", Description: "d", Price: 500, Location: "X"})
	require.NoError(t, err)
	assert.Len(t, w.ID, 21)

	got, err := Get(db, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cerámica", got.Title)
	assert.Equal(t, []string{}, got.Images)
	assert.False(t, got.Featured)
	assert.Nil(t, got.CategoryID)
	assert.Empty(t, got.Sessions, "no date means no session")
	assert.Equal(t, int64(0), countSessions(t, db, w.ID))
}

func TestCreateValidation(t *testing.T) {
	db := dbtest.Open(t)

	testCases := []struct {
		name  string
		input Input
	}{
		{name: "missing title", input: Input{Description: "d", Price: 1, Location: "X"}},
		{name: "zero price", input: Input{Title: "t", Description: "d", Location: "X"}},
		{name: "missing location", input: Input{Title: "t", Description: "d", Price: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Create(db, tc.input)
			assert.True(t, apperror.IsValidation(err))
		})
	}

	workshops, err := List(db, "")
	require.NoError(t, err)
	assert.Empty(t, workshops)
}

func TestCreateWithDateWritesFirstSession(t *testing.T) {
	db := dbtest.Open(t)

	w, err := Create(db, Input{
		Title: "Telar", Description: "d", Price: 300, Location: "Taller",
		Date: "2024-06-01", Seats: 8, Images: []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)
	require.Len(t, w.Sessions, 1)

	s := w.Sessions[0]
	assert.Equal(t, "2024-06-01", s.Date)
	assert.Equal(t, models.DefaultSessionTime, s.Time)
	assert.Equal(t, "Taller", s.Location)
	assert.Equal(t, 8, s.Seats)

	workshops, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Len(t, workshops[0].Sessions, 1, "listing must not add a second session")
	assert.Equal(t, []string{"/uploads/a.jpg"}, workshops[0].Images)
}

func TestListBackfillIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	seedWorkshop(t, db, models.Workshop{
		ID: "legacy", Title: "Legacy", Description: "d", Price: 1,
		Date: "2024-06-01", Location: "Old place", Seats: 12,
	})
	seedWorkshop(t, db, models.Workshop{
		ID: "undated", Title: "Undated", Description: "d", Price: 1, Location: "X",
	})

	first, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, first, 2)

	byID := map[string]models.Workshop{}
	for _, w := range first {
		byID[w.ID] = w
	}

	require.Len(t, byID["legacy"].Sessions, 1)
	s := byID["legacy"].Sessions[0]
	assert.Equal(t, "2024-06-01", s.Date)
	assert.Equal(t, "10:00", s.Time)
	assert.Equal(t, "Old place", s.Location)
	assert.Equal(t, 12, s.Seats)
	assert.Empty(t, byID["undated"].Sessions)

	second, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, int64(1), countSessions(t, db, "legacy"))
	assert.Equal(t, int64(0), countSessions(t, db, "undated"))

	for _, w := range second {
		if w.ID == "legacy" {
			require.Len(t, w.Sessions, 1)
			assert.Equal(t, s.ID, w.Sessions[0].ID)
		}
	}
}

func TestBackfillRechecksInsideTransaction(t *testing.T) {
	db := dbtest.Open(t)

	w := models.Workshop{
		ID: "legacy", Title: "Legacy", Description: "d", Price: 1,
		Date: "2024-06-01", Location: "Old place", Seats: 12,
	}
	seedWorkshop(t, db, w)

	// another listing won the race after this one read the catalog
	require.NoError(t, db.Create(&models.Session{
		ID: "s-other", WorkshopID: "legacy", Date: "2024-06-01", Time: "10:00",
		Location: "Old place", Seats: 12, CreatedAt: models.Now(),
	}).Error)

	sessions, err := backfill(db, &w)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s-other", sessions[0].ID)
	assert.Equal(t, int64(1), countSessions(t, db, "legacy"))
}

func TestListBackfillConcurrent(t *testing.T) {
	db := dbtest.Open(t)

	seedWorkshop(t, db, models.Workshop{
		ID: "legacy", Title: "Legacy", Description: "d", Price: 1,
		Date: "2024-06-01", Location: "Old place", Seats: 12,
	})

	var wg sync.WaitGroup

	errs := make(chan error, 8)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := List(db, "")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), countSessions(t, db, "legacy"))
}

func TestListCategoryFilter(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Create(&models.Category{ID: "cat1", Name: "Cerámica", CreatedAt: models.Now()}).Error)

	cat := "cat1"
	gone := "deleted-category"

	seedWorkshop(t, db, models.Workshop{ID: "w1", Title: "A", Description: "d", Price: 1, Location: "X", CategoryID: &cat})
	seedWorkshop(t, db, models.Workshop{ID: "w2", Title: "B", Description: "d", Price: 1, Location: "X"})
	seedWorkshop(t, db, models.Workshop{ID: "w3", Title: "C", Description: "d", Price: 1, Location: "X", CategoryID: &gone})

	byID, err := List(db, "cat1")
	require.NoError(t, err)

	byName, err := List(db, "Cerámica")
	require.NoError(t, err)

	require.Len(t, byID, 1)
	assert.Equal(t, byID, byName)
	assert.Equal(t, "w1", byID[0].ID)
	assert.Equal(t, "Cerámica", byID[0].CategoryName)

	all, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	for _, w := range all {
		if w.ID == "w3" {
			assert.Equal(t, "", w.CategoryName, "dangling category resolves to empty name")
		}
	}
}

func TestListOrderedByDate(t *testing.T) {
	db := dbtest.Open(t)

	seedWorkshop(t, db, models.Workshop{ID: "late", Title: "L", Description: "d", Price: 1, Location: "X", Date: "2024-09-01"})
	seedWorkshop(t, db, models.Workshop{ID: "early", Title: "E", Description: "d", Price: 1, Location: "X", Date: "2024-03-01"})

	workshops, err := List(db, "")
	require.NoError(t, err)
	require.Len(t, workshops, 2)
	assert.Equal(t, "early", workshops[0].ID)
	assert.Equal(t, "late", workshops[1].ID)
}

func TestUpdateAndDelete(t *testing.T) {
	db := dbtest.Open(t)

	w, err := Create(db, Input{Title: "Old", Description: "d", Price: 1, Location: "X", CategoryID: "c1"})
	require.NoError(t, err)

	err = Update(db, w.ID, Input{
		Title: "New", Description: "d2", Price: 2, Location: "Y",
		Images: []string{"/a.png", "/b.png"}, Featured: true, MapEmbed: "https://goo.gl/maps/x",
	})
	require.NoError(t, err)

	got, err := Get(db, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 2, got.Price)
	assert.Equal(t, "Y", got.Location)
	assert.Nil(t, got.CategoryID, "blank category clears the reference")
	assert.Equal(t, []string{"/a.png", "/b.png"}, got.Images)
	assert.True(t, got.Featured)
	assert.Equal(t, "https://goo.gl/maps/x", got.MapEmbed)

	require.NoError(t, Update(db, "missing", Input{Title: "t", Description: "d", Price: 1, Location: "X"}))
	assert.True(t, apperror.IsValidation(Update(db, w.ID, Input{Title: "t"})))

	require.NoError(t, Delete(db, w.ID))
	require.NoError(t, Delete(db, w.ID))

	_, err = Get(db, w.ID)
	assert.True(t, apperror.IsNotFound(err))
}
