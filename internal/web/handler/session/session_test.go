package session

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/web/handler/handlertest"
)

func TestSessions(t *testing.T) {
	env := handlertest.New(t, nil, nil).API(t, &Service{})

	require.NoError(t, env.DB.Create(&models.Workshop{
		ID: "w1", Title: "Torno", Description: "d", Price: 100, Location: "Taller Centro",
		Images: []string{}, CreatedAt: models.Now(), UpdatedAt: models.Now(),
	}).Error)

	for _, date := range []string{"2024-08-02", "2024-08-01"} {
		resp := env.Do(t, http.MethodPost, "/api/sessions", map[string]interface{}{
			"workshop_id": "w1", "date": date, "seats": 6,
		}, "")
		require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
		assert.NotEmpty(t, resp.Map(t)["id"])
	}

	var sessions []models.Session
	env.Do(t, http.MethodGet, "/api/sessions?workshop_id=w1", nil, "").Decode(t, &sessions)

	require.Len(t, sessions, 2)
	assert.Equal(t, "2024-08-01", sessions[0].Date)
	assert.Equal(t, "2024-08-02", sessions[1].Date)
	assert.Equal(t, models.DefaultSessionTime, sessions[0].Time)
	assert.Equal(t, "Taller Centro", sessions[0].Location)

	require.Equal(t, http.StatusOK, env.Do(t, http.MethodDelete, "/api/sessions/"+sessions[0].ID, nil, "").Status)

	env.Do(t, http.MethodGet, "/api/sessions?workshop_id=w1", nil, "").Decode(t, &sessions)
	assert.Len(t, sessions, 1)

	resp := env.Do(t, http.MethodGet, "/api/sessions?workshop_id=unknown", nil, "")
	require.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `[]`, string(resp.Body))
}

func TestSessionRejected(t *testing.T) {
	env := handlertest.New(t, nil, nil).API(t, &Service{})

	resp := env.Do(t, http.MethodGet, "/api/sessions", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, MsgWorkshopIDRequired, resp.Map(t)["error"])

	resp = env.Do(t, http.MethodPost, "/api/sessions", map[string]interface{}{"workshop_id": "w1", "seats": 2}, "")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}
