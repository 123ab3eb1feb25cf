package reservation

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/db/models"
	"github.com/artesyoficios/studio/internal/web/handler/handlertest"
)

type recorder struct {
	mu    sync.Mutex
	calls []booking.Confirmation
}

func (r *recorder) notify(_ context.Context, c booking.Confirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, c)

	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

func newEnv(t *testing.T, enforce bool) (*handlertest.Env, *recorder) {
	t.Helper()

	cfg := handlertest.Config()
	cfg.Admin.EnforceToken = enforce

	rec := &recorder{}
	env := handlertest.New(t, cfg, booking.NotifierFunc(rec.notify)).API(t, &Service{})

	require.NoError(t, env.DB.Create(&models.Workshop{
		ID: "w1", Title: "Torno", Description: "d", Price: 100, Location: "Taller Centro",
		Images: []string{}, CreatedAt: models.Now(), UpdatedAt: models.Now(),
	}).Error)
	require.NoError(t, env.DB.Create(&models.Session{
		ID: "s1", WorkshopID: "w1", Date: "2024-06-01", Time: "10:00",
		Location: "Patio", Seats: 10, CreatedAt: models.Now(),
	}).Error)

	return env, rec
}

func request() map[string]interface{} {
	return map[string]interface{}{
		"workshop_id": "w1", "session_id": "s1", "name": "Ana", "email": "ana@example.com",
		"seats": 2, "reservation_date": "2024-06-01",
	}
}

func TestPublicReservation(t *testing.T) {
	env, rec := newEnv(t, false)

	resp := env.Do(t, http.MethodPost, "/api/reservations", request(), "")
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	var res booking.Result
	resp.Decode(t, &res)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, booking.StatusPendingPayment, res.Status)

	var list []models.Reservation
	env.Do(t, http.MethodGet, "/api/reservations", nil, "").Decode(t, &list)

	require.Len(t, list, 1)
	assert.Equal(t, res.ID, list[0].ID)
	assert.Equal(t, "Torno", list[0].WorkshopTitle)
	assert.Equal(t, "2024-06-01", list[0].SessionDate)
	assert.Equal(t, string(booking.StatusPendingPayment), list[0].Status)

	env.Deps.Booking.Wait()
	assert.Zero(t, rec.count())
}

func TestAdminReservationIsPaid(t *testing.T) {
	env, rec := newEnv(t, false)

	resp := env.Do(t, http.MethodPost, "/api/reservations/admin", request(), "")
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	var res booking.Result
	resp.Decode(t, &res)
	assert.Equal(t, booking.StatusPaid, res.Status)

	env.Deps.Booking.Wait()
	assert.Equal(t, 1, rec.count())
}

func TestSetStatus(t *testing.T) {
	env, rec := newEnv(t, false)

	var res booking.Result
	env.Do(t, http.MethodPost, "/api/reservations", request(), "").Decode(t, &res)

	for _, status := range []string{"paid", "cancelled", "paid"} {
		resp := env.Do(t, http.MethodPut, "/api/reservations/"+res.ID, map[string]string{"status": status}, "")
		require.Equal(t, http.StatusOK, resp.Status, status)

		var list []models.Reservation
		env.Do(t, http.MethodGet, "/api/reservations", nil, "").Decode(t, &list)
		require.Len(t, list, 1)
		assert.Equal(t, status, list[0].Status)
	}

	env.Deps.Booking.Wait()
	assert.Equal(t, 2, rec.count())

	resp := env.Do(t, http.MethodPut, "/api/reservations/"+res.ID, map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, booking.MsgStatusRequired, resp.Map(t)["error"])
}

func TestCreateRejected(t *testing.T) {
	env, _ := newEnv(t, false)

	for _, field := range []string{"workshop_id", "name", "email", "seats", "reservation_date"} {
		t.Run(field, func(t *testing.T) {
			body := request()
			delete(body, field)

			resp := env.Do(t, http.MethodPost, "/api/reservations", body, "")
			assert.Equal(t, http.StatusBadRequest, resp.Status)
		})
	}
}

func TestDelete(t *testing.T) {
	env, _ := newEnv(t, false)

	var res booking.Result
	env.Do(t, http.MethodPost, "/api/reservations", request(), "").Decode(t, &res)

	for range 2 {
		assert.Equal(t, http.StatusOK, env.Do(t, http.MethodDelete, "/api/reservations/"+res.ID, nil, "").Status)
	}

	resp := env.Do(t, http.MethodGet, "/api/reservations", nil, "")
	assert.JSONEq(t, `[]`, string(resp.Body))
}

func TestEnforcedToken(t *testing.T) {
	env, _ := newEnv(t, true)

	// public booking needs no token
	resp := env.Do(t, http.MethodPost, "/api/reservations", request(), "")
	require.Equal(t, http.StatusOK, resp.Status)

	assert.Equal(t, http.StatusUnauthorized, env.Do(t, http.MethodGet, "/api/reservations", nil, "").Status)
	assert.Equal(t, http.StatusUnauthorized, env.Do(t, http.MethodPost, "/api/reservations/admin", request(), "").Status)
	assert.Equal(t, http.StatusOK, env.Do(t, http.MethodGet, "/api/reservations", nil, env.Token(t)).Status)
}
