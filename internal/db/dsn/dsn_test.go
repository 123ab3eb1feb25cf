package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artesyoficios/studio/internal/config"
)

func TestCreate(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		Host:     "db",
		Port:     3306,
		User:     "studio",
		Password: "pw",
		Name:     "talleres",
		Extras:   "parseTime=True",
	}}

	assert.Equal(t, "studio:pw@tcp(db:3306)/talleres?parseTime=True", Create(cfg))
}

func TestCreatePostgres(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		Host:     "pg",
		Port:     5432,
		User:     "studio",
		Password: "pw",
		Name:     "talleres",
	}}

	assert.Equal(t, "host=pg port=5432 user=studio password=pw dbname=talleres", CreatePostgres(cfg))

	cfg.DB.Extras = "sslmode=disable"
	assert.Equal(t, "host=pg port=5432 user=studio password=pw dbname=talleres sslmode=disable", CreatePostgres(cfg))
}

func TestSQLite(t *testing.T) {
	assert.Equal(t, ":memory:", SQLite(&config.Config{}))
	assert.Equal(t, "./data/studio.sqlite", SQLite(&config.Config{DB: config.DB{Path: "./data/studio.sqlite"}}))
}
