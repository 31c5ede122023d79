package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	"github.com/BruksfildServices01/table-reservation/internal/config"
	"github.com/BruksfildServices01/table-reservation/internal/infra/archive"
	"github.com/BruksfildServices01/table-reservation/internal/infra/slotlock"
	"github.com/BruksfildServices01/table-reservation/internal/routes"
	"github.com/BruksfildServices01/table-reservation/internal/seed"
	"github.com/BruksfildServices01/table-reservation/internal/testutil"
)

const (
	date = "2025-06-01"
	slot = "18:00-20:00"
)

type memArchiver struct{ keys []string }

func (a *memArchiver) Put(_ context.Context, key string, _ []byte, _ string) error {
	a.keys = append(a.keys, key)
	return nil
}

type apiClient struct {
	t *testing.T
	r *gin.Engine
}

func (c apiClient) do(method, path, token string, body any) (int, map[string]any, []any) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var obj map[string]any
	var arr []any
	raw := w.Body.Bytes()
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(c.t, json.Unmarshal(raw, &arr), string(raw))
	} else if len(raw) > 0 {
		require.NoError(c.t, json.Unmarshal(raw, &obj), string(raw))
	}
	return w.Code, obj, arr
}

func setup(t *testing.T, archiver archive.Archiver) (apiClient, *audit.Dispatcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		TimeSlots: []string{"18:00-20:00", "20:00-22:00"},
	}

	_, err := seed.Admin(context.Background(), gdb, seed.AdminAccount{
		Name: "Admin", Email: "admin@example.com", Password: "admin-pass",
	})
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(gdb), nil)
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg, routes.Infra{
		Audit:    dispatcher,
		Locker:   slotlock.NewLocalLocker(time.Second),
		Archiver: archiver,
	})
	return apiClient{t: t, r: r}, dispatcher
}

func login(c apiClient, email, password string) string {
	code, body, _ := c.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, code, body)
	return body["token"].(string)
}

func TestReservationFlow(t *testing.T) {
	c, dispatcher := setup(t, nil)

	code, body, _ := c.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	// --- accounts ---
	code, body, _ = c.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Guest", "email": "guest@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, code, body)
	user := body["user"].(map[string]any)
	assert.Equal(t, "user", user["role"])
	userToken := body["token"].(string)

	code, _, _ = c.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Again", "email": "GUEST@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, code)

	adminToken := login(c, "admin@example.com", "admin-pass")

	code, body, _ = c.do(http.MethodGet, "/api/auth/me", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "guest@example.com", body["user"].(map[string]any)["email"])

	code, _, _ = c.do(http.MethodGet, "/api/admin/tables/all", userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _, _ = c.do(http.MethodGet, "/api/reservations/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// --- tables ---
	code, body, _ = c.do(http.MethodPost, "/api/admin/tables", adminToken, map[string]any{"capacity": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_capacity", body["errorCode"])

	var tableIDs []uint
	for i, capacity := range []int{2, 4} {
		code, body, _ = c.do(http.MethodPost, "/api/admin/tables", adminToken, map[string]any{"capacity": capacity})
		require.Equal(t, http.StatusCreated, code, body)
		assert.EqualValues(t, i+1, body["tableNumber"])
		tableIDs = append(tableIDs, uint(body["id"].(float64)))
	}

	// --- availability ---
	availPath := fmt.Sprintf("/api/reservations/available?date=%s&timeSlot=%s&guests=2", date, slot)
	code, body, _ = c.do(http.MethodGet, availPath, userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["available"])
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 0, body["booked"])

	code, body, _ = c.do(http.MethodGet, "/api/reservations/available?date=2025-06-01&timeSlot=x&guests=0", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_party_size", body["errorCode"])

	code, body, _ = c.do(http.MethodGet, "/api/reservations/time-slots", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["timeSlots"], 2)

	// --- booking ---
	book := map[string]any{"date": date, "timeSlot": slot, "guests": 2}

	code, body, _ = c.do(http.MethodPost, "/api/reservations", userToken, book)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "ACTIVE", body["status"])
	assert.EqualValues(t, 2, body["table"].(map[string]any)["capacity"])
	firstID := uint(body["id"].(float64))

	code, body, _ = c.do(http.MethodPost, "/api/reservations", userToken, book)
	require.Equal(t, http.StatusCreated, code, body)
	assert.EqualValues(t, 4, body["table"].(map[string]any)["capacity"])

	code, body, _ = c.do(http.MethodPost, "/api/reservations", userToken, book)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "no_availability", body["errorCode"])

	_, _, statuses := c.do(http.MethodGet, fmt.Sprintf("/api/reservations/tables-status?date=%s&timeSlot=%s", date, slot), userToken, nil)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.Equal(t, true, s.(map[string]any)["isBooked"])
	}

	code, _, mine := c.do(http.MethodGet, "/api/reservations/me", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, mine, 2)

	// --- table guard ---
	code, body, _ = c.do(http.MethodDelete, fmt.Sprintf("/api/admin/tables/%d", tableIDs[0]), adminToken, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "table_has_active_reservations", body["errorCode"])

	// --- cancel ---
	cancelPath := fmt.Sprintf("/api/reservations/%d", firstID)
	code, _, _ = c.do(http.MethodDelete, cancelPath, userToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, body, _ = c.do(http.MethodDelete, cancelPath, userToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "reservation_not_found", body["errorCode"])

	code, _, _ = c.do(http.MethodDelete, "/api/reservations/abc", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _, _ = c.do(http.MethodDelete, fmt.Sprintf("/api/admin/tables/%d", tableIDs[0]), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _, mine = c.do(http.MethodGet, "/api/reservations/me", userToken, nil)
	require.Equal(t, http.StatusOK, code)
	var orphaned int
	for _, r := range mine {
		if r.(map[string]any)["table"] == nil {
			orphaned++
		}
	}
	assert.Equal(t, 1, orphaned)

	// --- admin ---
	code, _, all := c.do(http.MethodGet, "/api/admin/reservations?date="+date, adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, all, 2)
	assert.NotNil(t, all[0].(map[string]any)["user"])

	code, body, _ = c.do(http.MethodGet, "/api/admin/reservations/by-date", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "missing_date", body["errorCode"])

	code, _, _ = c.do(http.MethodPatch, fmt.Sprintf("/api/admin/reservations/%d/cancel", firstID), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = c.do(http.MethodPatch, "/api/admin/reservations/9999/cancel", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _, _ = c.do(http.MethodDelete, fmt.Sprintf("/api/admin/reservations/%d", firstID), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = c.do(http.MethodDelete, fmt.Sprintf("/api/admin/reservations/%d", firstID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body, _ = c.do(http.MethodPost, "/api/admin/reservations/export", adminToken, map[string]any{"date": date})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "export_disabled", body["errorCode"])

	// --- audit trail ---
	dispatcher.Close()
	code, body, _ = c.do(http.MethodGet, "/api/admin/audit-logs?action=reservation_created", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["total"])
}

func TestExportEndpoint(t *testing.T) {
	arc := &memArchiver{}
	c, _ := setup(t, arc)
	adminToken := login(c, "admin@example.com", "admin-pass")

	code, body, _ := c.do(http.MethodPost, "/api/admin/reservations/export", adminToken, map[string]any{"date": date})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "reservations/2025-06-01.csv", body["key"])
	assert.EqualValues(t, 0, body["count"])
	assert.Equal(t, []string{"reservations/2025-06-01.csv"}, arc.keys)
}

func TestLogoutClearsCookie(t *testing.T) {
	c, _ := setup(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
