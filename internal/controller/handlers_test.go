package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Freeeeeet/reservation_service/internal/service"
	"github.com/Freeeeeet/reservation_service/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *httptest.Server {
	backend := storage.NewMemoryBackend()
	var mu sync.Mutex
	logger := zap.NewNop()

	ledger := service.NewLedger(backend, &mu, logger)
	admin := service.NewAdminGate(backend, &mu, logger)

	srv := NewServer(ledger, admin, "", logger)
	return httptest.NewServer(srv.Router())
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, url string, dst interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestReserveEndpointFlow(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// Создание брони возвращает свежую пару id/token
	resp, body := postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "Jan",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	reservation, ok := body["reservation"].(map[string]interface{})
	require.True(t, ok, "creation must return a reservation")
	token, _ := reservation["token"].(string)
	require.NotEmpty(t, token)

	// Чужая перезапись без токена отклоняется
	resp, _ = postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "Petr",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// С токеном - меняется имя без новой пары id/token
	resp, body = postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "Petr",
		"secretToken": token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "reservation")

	// Отмена с токеном освобождает слот
	resp, _ = postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "",
		"secretToken": token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reservations map[string]map[string]interface{}
	getJSON(t, ts.URL+"/api/reservations", &reservations)
	assert.NotContains(t, reservations["Ms.Novak"], "16:30")
}

func TestReserveEndpointMissingFields(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, _ := postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"studentName": "Jan",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReservationsEndpointHidesTokens(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	_, _ = postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "Jan",
	})

	resp, err := http.Get(ts.URL + "/api/reservations")
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	// Ни на каком уровне вложенности секрет не утекает
	assert.False(t, strings.Contains(buf.String(), "token"))
	assert.Contains(t, buf.String(), "Jan")
}

func TestConfigEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var cfg struct {
		Teachers    []map[string]interface{} `json:"teachers"`
		StorageMode string                   `json:"storageMode"`
	}
	getJSON(t, ts.URL+"/api/config", &cfg)

	assert.Equal(t, "In-Memory", cfg.StorageMode)
	assert.Empty(t, cfg.Teachers)
}

func TestAdminEndpoints(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// Неверный пароль
	resp, _ := postJSON(t, ts.URL+"/api/admin/login", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Дефолтный пароль выдаёт пропуск
	resp, body := postJSON(t, ts.URL+"/api/admin/login", map[string]string{"password": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	proof, _ := body["token"].(string)
	require.NotEmpty(t, proof)

	// Задаём список преподавателей
	resp, _ = postJSON(t, ts.URL+"/api/admin/settings", map[string]interface{}{
		"token": proof,
		"teachers": []map[string]interface{}{
			{"id": "1", "name": "Ms.Novak", "interval": 10},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg struct {
		Teachers []map[string]interface{} `json:"teachers"`
	}
	getJSON(t, ts.URL+"/api/config", &cfg)
	require.Len(t, cfg.Teachers, 1)
	assert.Equal(t, "Ms.Novak", cfg.Teachers[0]["name"])

	// Удаление несуществующей брони
	resp, _ = postJSON(t, ts.URL+"/api/admin/delete-reservation", map[string]string{
		"token":   proof,
		"teacher": "Ms.Novak",
		"time":    "16:30",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Удаление занятого слота без пропуска
	_, body = postJSON(t, ts.URL+"/api/reserve", map[string]string{
		"teacher":     "Ms.Novak",
		"time":        "16:30",
		"studentName": "Jan",
	})
	require.Equal(t, true, body["success"])

	resp, _ = postJSON(t, ts.URL+"/api/admin/delete-reservation", map[string]string{
		"token":   "not-a-proof",
		"teacher": "Ms.Novak",
		"time":    "16:30",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// И с пропуском - успех
	resp, _ = postJSON(t, ts.URL+"/api/admin/delete-reservation", map[string]string{
		"token":   proof,
		"teacher": "Ms.Novak",
		"time":    "16:30",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
