package site

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/artesyoficios/studio/internal/db/controller/setting"
)

// State is the application state rendered by the public site.
type State struct {
	Hero    Hero
	About   About
	Contact Contact
	Theme   Theme
	// AdminPIN is the stored admin pin, empty when none was ever saved.
	AdminPIN string
}

// DefaultState holds only the hard-coded defaults.
func DefaultState() State {
	return State{
		Hero:    DefaultHero(),
		About:   DefaultAbout(),
		Contact: DefaultContact(),
		Theme:   DefaultTheme(),
	}
}

// Source reads raw setting values. An absent key yields "".
type Source interface {
	Get(ctx context.Context, key string) (string, error)
}

// DBSource reads settings from the database.
type DBSource struct {
	DB *gorm.DB
}

// Get implements Source.
func (s DBSource) Get(ctx context.Context, key string) (string, error) {
	return setting.Get(s.DB.WithContext(ctx), key)
}

// Loader builds the State from the settings store.
//
// Per key: a fetched non-empty value is decoded over the default and remembered
// in the cache; a fetched empty value means the default. When the fetch fails,
// or the value does not decode, the cached value is used and, lacking that, the
// default. Load never fails.
type Loader struct {
	source Source
	cache  Cache
}

// NewLoader returns a Loader. A nil cache means a MemoryCache.
func NewLoader(source Source, cache Cache) *Loader {
	if cache == nil {
		cache = NewMemoryCache()
	}

	return &Loader{source: source, cache: cache}
}

// Load fetches every document.
func (l *Loader) Load(ctx context.Context) State {
	st := DefaultState()

	loadDocument(ctx, l, setting.KeyHero, &st.Hero)
	loadDocument(ctx, l, setting.KeyAbout, &st.About)
	loadDocument(ctx, l, setting.KeyContact, &st.Contact)
	loadDocument(ctx, l, setting.KeyTheme, &st.Theme)

	st.AdminPIN = l.adminPIN(ctx)

	return st
}

// loadDocument decodes the value of key over dst, which holds the default.
func loadDocument[T any](ctx context.Context, l *Loader, key string, dst *T) {
	logger := log.With().Str("setting", key).Logger()

	raw, err := l.source.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Msg("setting fetch failed, using last known value")
		cachedDocument(ctx, l, key, dst)

		return
	}

	if raw == "" {
		return
	}

	if !decode(raw, dst) {
		logger.Warn().Msg("stored setting is not valid JSON, using last known value")
		cachedDocument(ctx, l, key, dst)

		return
	}

	if err := l.cache.Set(ctx, key, raw); err != nil {
		logger.Warn().Err(err).Msg("setting cache write failed")
	}
}

func cachedDocument[T any](ctx context.Context, l *Loader, key string, dst *T) {
	raw, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("setting", key).Msg("setting cache read failed")
		return
	}

	if ok && raw != "" {
		decode(raw, dst)
	}
}

func (l *Loader) adminPIN(ctx context.Context) string {
	pin, err := l.source.Get(ctx, setting.KeyAdminPIN)
	if err == nil {
		if pin != "" {
			if err := l.cache.Set(ctx, setting.KeyAdminPIN, pin); err != nil {
				log.Warn().Err(err).Msg("setting cache write failed")
			}
		}

		return pin
	}

	log.Warn().Err(err).Str("setting", setting.KeyAdminPIN).Msg("setting fetch failed, using last known value")

	cached, _, cacheErr := l.cache.Get(ctx, setting.KeyAdminPIN)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("setting cache read failed")
	}

	return cached
}

// decode merges raw over dst. dst is left untouched when raw is malformed.
func decode[T any](raw string, dst *T) bool {
	merged := *dst
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		return false
	}

	*dst = merged

	return true
}
