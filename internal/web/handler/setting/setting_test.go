package setting

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	controller "github.com/artesyoficios/studio/internal/db/controller/setting"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/web/handler/handlertest"
)

func TestRoundTrip(t *testing.T) {
	env := handlertest.New(t, nil, nil).API(t, &Service{})

	resp := env.Do(t, http.MethodGet, "/api/settings/unknown_key", nil, "")
	require.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"key":"unknown_key","value":""}`, string(resp.Body))

	hero := `{"title":"Hola","subtitle":"Talleres"}`

	for _, value := range []string{hero, `{"title":"Otra"}`} {
		resp = env.Do(t, http.MethodPut, "/api/settings/hero", map[string]string{"value": value}, "")
		require.Equal(t, http.StatusOK, resp.Status)

		got := env.Do(t, http.MethodGet, "/api/settings/hero", nil, "").Map(t)
		assert.Equal(t, "hero", got["key"])
		assert.Equal(t, value, got["value"])
	}
}

func TestPutWithoutValueStoresEmpty(t *testing.T) {
	env := handlertest.New(t, nil, nil).API(t, &Service{})

	require.NoError(t, controller.Set(env.DB, "about", "previous"))

	resp := env.Do(t, http.MethodPut, "/api/settings/about", map[string]string{}, "")
	require.Equal(t, http.StatusOK, resp.Status)

	value, err := controller.Get(env.DB, "about")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestAdminPINVisibility(t *testing.T) {
	testCases := []struct {
		name    string
		enforce bool
		token   bool
		want    string
	}{
		{name: "open mode", want: "4321"},
		{name: "enforced without token", enforce: true, want: ""},
		{name: "enforced with token", enforce: true, token: true, want: "4321"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := handlertest.Config()
			cfg.Admin.EnforceToken = tc.enforce

			env := handlertest.New(t, cfg, nil).API(t, &Service{})
			require.NoError(t, controller.Set(env.DB, controller.KeyAdminPIN, "4321"))

			token := ""
			if tc.token {
				token = env.Token(t)
			}

			resp := env.Do(t, http.MethodGet, "/api/settings/"+controller.KeyAdminPIN, nil, token)
			require.Equal(t, http.StatusOK, resp.Status)
			assert.Equal(t, tc.want, resp.Map(t)["value"])
		})
	}
}

func TestPutEnforced(t *testing.T) {
	cfg := handlertest.Config()
	cfg.Admin.EnforceToken = true

	env := handlertest.New(t, cfg, nil).API(t, &Service{})

	resp := env.Do(t, http.MethodPut, "/api/settings/hero", map[string]string{"value": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Status)

	resp = env.Do(t, http.MethodPut, "/api/settings/hero", map[string]string{"value": "x"}, env.Token(t))
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestListAndDelete(t *testing.T) {
	env := handlertest.New(t, nil, nil).API(t, &Service{})

	require.NoError(t, controller.Set(env.DB, controller.KeyHero, `{"title":"Hola"}`))
	require.NoError(t, controller.Set(env.DB, controller.KeyAbout, "Somos un taller"))

	var settings []models.Setting
	resp := env.Do(t, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, resp.Status)
	resp.Decode(t, &settings)

	require.Len(t, settings, 2)
	assert.Equal(t, controller.KeyAbout, settings[0].Key)
	assert.Equal(t, controller.KeyHero, settings[1].Key)

	for range 2 {
		resp = env.Do(t, http.MethodDelete, "/api/settings/"+controller.KeyHero, nil, "")
		require.Equal(t, http.StatusOK, resp.Status)
	}

	got := env.Do(t, http.MethodGet, "/api/settings/"+controller.KeyHero, nil, "").Map(t)
	assert.Equal(t, "", got["value"])

	settings = nil
	env.Do(t, http.MethodGet, "/api/settings", nil, "").Decode(t, &settings)
	require.Len(t, settings, 1)
	assert.Equal(t, controller.KeyAbout, settings[0].Key)
}

func TestListAndDeleteEnforced(t *testing.T) {
	cfg := handlertest.Config()
	cfg.Admin.EnforceToken = true

	env := handlertest.New(t, cfg, nil).API(t, &Service{})
	require.NoError(t, controller.Set(env.DB, controller.KeyAdminPIN, "4321"))

	assert.Equal(t, http.StatusUnauthorized, env.Do(t, http.MethodGet, "/api/settings", nil, "").Status)
	assert.Equal(t, http.StatusUnauthorized,
		env.Do(t, http.MethodDelete, "/api/settings/"+controller.KeyAdminPIN, nil, "").Status)

	token := env.Token(t)

	resp := env.Do(t, http.MethodGet, "/api/settings", nil, token)
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, string(resp.Body), `"value":"4321"`)

	resp = env.Do(t, http.MethodDelete, "/api/settings/"+controller.KeyAdminPIN, nil, token)
	assert.Equal(t, http.StatusOK, resp.Status)
}
