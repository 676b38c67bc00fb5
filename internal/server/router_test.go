package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/config"
	"printshop-backend/internal/kv"
	"printshop-backend/internal/metrics"
	"printshop-backend/internal/models"
	"printshop-backend/internal/server"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	return server.NewRouter(server.Dependencies{
		Config:   cfg,
		Store:    kv.NewMemoryStore(),
		Metrics:  metrics.NewMetrics(reg),
		Gatherer: reg,
	})
}

func openConfig() *config.Config {
	return &config.Config{
		APIBasePath:      "/api/v1",
		StoreBackend:     config.BackendMemory,
		AdminSessionTTL:  time.Hour,
		CORSAllowOrigins: []string{"*"},
	}
}

func gatedConfig() *config.Config {
	cfg := openConfig()
	cfg.AdminPIN = "1234"
	cfg.AdminJWTSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"
	return cfg
}

func do(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGalleryLifecycle(t *testing.T) {
	router := newTestRouter(t, openConfig())

	g := models.Gallery{ID: "g1", Name: "Spring", Images: []models.ImageReference{}}
	w := do(t, router, "POST", "/api/v1/galleries", g, "")
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.GalleryResponse](t, w)
	assert.True(t, created.Success)
	assert.Equal(t, g, created.Gallery)

	w = do(t, router, "GET", "/api/v1/galleries", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.GalleryListResponse](t, w)
	require.Len(t, list.Galleries, 1)
	assert.Equal(t, "g1", list.Galleries[0].ID)

	w = do(t, router, "GET", "/api/v1/galleries/g1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, g, decode[models.GalleryResponse](t, w).Gallery)

	w = do(t, router, "DELETE", "/api/v1/galleries/g1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(t, router, "GET", "/api/v1/galleries/g1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "gallery not found")

	// Deleting again is not an error.
	w = do(t, router, "DELETE", "/api/v1/galleries/g1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGalleryPutReplacesImages(t *testing.T) {
	router := newTestRouter(t, openConfig())

	g := models.Gallery{
		ID:     "g1",
		Name:   "Spring",
		Images: []models.ImageReference{{ID: "i1", Name: "a.jpg", MimeType: "image/jpeg"}},
	}
	require.Equal(t, http.StatusOK, do(t, router, "POST", "/api/v1/galleries", g, "").Code)

	w := do(t, router, "PUT", "/api/v1/galleries", map[string]string{"id": "g1", "name": "Spring"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "GET", "/api/v1/galleries/g1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"images":[]`)
	assert.Empty(t, decode[models.GalleryResponse](t, w).Gallery.Images)
}

func TestGalleryValidation(t *testing.T) {
	router := newTestRouter(t, openConfig())

	for _, body := range []any{
		map[string]string{"name": "no id"},
		map[string]string{"id": "g1"},
		map[string]string{"id": "g1", "name": ""},
	} {
		w := do(t, router, "POST", "/api/v1/galleries", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Gallery ID and name are required")

		w = do(t, router, "PUT", "/api/v1/galleries", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	req, _ := http.NewRequest("POST", "/api/v1/galleries", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderScenario(t *testing.T) {
	router := newTestRouter(t, openConfig())

	body := map[string]any{
		"name":        "A",
		"email":       "a@x.com",
		"phone":       "555",
		"serviceName": "Posters",
		"orderId":     "order_forged",
		"createdAt":   "1999-01-01T00:00:00.000Z",
	}
	w := do(t, router, "POST", "/api/v1/orders", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	created := decode[models.OrderResponse](t, w)
	assert.True(t, created.Success)
	assert.Regexp(t, `^order_\d+_[0-9a-f]{12}$`, created.OrderID)
	assert.Equal(t, created.OrderID, created.Order.OrderID)
	assert.NotEmpty(t, created.Order.CreatedAt)
	assert.NotEqual(t, "1999-01-01T00:00:00.000Z", created.Order.CreatedAt)
	assert.Equal(t, "Posters", created.Order.ServiceName)

	w = do(t, router, "GET", "/api/v1/orders", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.OrderListResponse](t, w)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, created.Order, list.Orders[0])
}

func TestOrderKeepsGallerySnapshot(t *testing.T) {
	router := newTestRouter(t, openConfig())

	require.Equal(t, http.StatusOK, do(t, router, "POST", "/api/v1/galleries",
		models.Gallery{ID: "g1", Name: "Spring"}, "").Code)

	w := do(t, router, "POST", "/api/v1/orders", map[string]any{
		"name": "A", "galleryId": "g1", "galleryName": "Spring", "imageCount": 3,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, http.StatusOK, do(t, router, "DELETE", "/api/v1/galleries/g1", nil, "").Code)

	list := decode[models.OrderListResponse](t, do(t, router, "GET", "/api/v1/orders", nil, ""))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "Spring", list.Orders[0].GalleryName)
	assert.Equal(t, 3, list.Orders[0].ImageCount)
}

func TestDriveImages(t *testing.T) {
	router := newTestRouter(t, openConfig())

	w := do(t, router, "GET", "/api/v1/drive/get-images/order_1_a", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"images":[]}`, w.Body.String())

	w = do(t, router, "POST", "/api/v1/drive/save-images", map[string]any{"userId": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, "POST", "/api/v1/drive/save-images", map[string]any{
		"userId":  "u1",
		"orderId": "order_1_a",
		"images":  []map[string]string{{"id": "i1", "name": "a.jpg", "mimeType": "image/jpeg"}},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[models.ImageSelectionResponse](t, w)
	assert.True(t, saved.Success)
	assert.Equal(t, "order_1_a", saved.Data.OrderID)
	assert.NotEmpty(t, saved.Data.Timestamp)

	w = do(t, router, "GET", "/api/v1/drive/get-images/order_1_a", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, saved.Data, decode[models.ImageSelectionResponse](t, w).Data)

	// Selections never show up in the order listing.
	list := decode[models.OrderListResponse](t, do(t, router, "GET", "/api/v1/orders", nil, ""))
	assert.Empty(t, list.Orders)
	assert.NotNil(t, list.Orders)
}

func TestHealthRoutes(t *testing.T) {
	router := newTestRouter(t, openConfig())

	for _, path := range []string{"/health", "/api/v1/health"} {
		w := do(t, router, "GET", path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		health := decode[models.HealthResponse](t, w)
		assert.Equal(t, "ok", health.Status)
		_, err := time.Parse(time.RFC3339, health.Timestamp)
		assert.NoError(t, err)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, openConfig())

	do(t, router, "GET", "/api/v1/galleries", nil, "")
	w := do(t, router, "GET", "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "printshop_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/galleries"`)
}

func TestAdminGate(t *testing.T) {
	router := newTestRouter(t, gatedConfig())

	// Public routes stay open.
	assert.Equal(t, http.StatusOK, do(t, router, "GET", "/api/v1/galleries", nil, "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, "POST", "/api/v1/orders", map[string]string{"name": "A"}, "").Code)

	// Admin routes need a session.
	g := models.Gallery{ID: "g1", Name: "Spring"}
	assert.Equal(t, http.StatusUnauthorized, do(t, router, "POST", "/api/v1/galleries", g, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, "GET", "/api/v1/orders", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, "DELETE", "/api/v1/galleries/g1", nil, "").Code)

	w := do(t, router, "POST", "/api/v1/admin/session", map[string]string{"pin": "0000"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, "POST", "/api/v1/admin/session", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, "POST", "/api/v1/admin/session", map[string]string{"pin": "1234"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	session := decode[models.AdminSessionResponse](t, w)
	require.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	assert.Equal(t, http.StatusOK, do(t, router, "POST", "/api/v1/galleries", g, session.Token).Code)
	assert.Equal(t, http.StatusOK, do(t, router, "GET", "/api/v1/orders", nil, session.Token).Code)
}

func TestAdminSessionWithoutGate(t *testing.T) {
	router := newTestRouter(t, openConfig())

	w := do(t, router, "POST", "/api/v1/admin/session", map[string]string{"pin": "1234"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, openConfig())

	req, _ := http.NewRequest("OPTIONS", "/api/v1/galleries", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
