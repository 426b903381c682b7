package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rahmatsubandi/undanganku/internal/app"
	iauth "github.com/rahmatsubandi/undanganku/internal/auth"
	"github.com/rahmatsubandi/undanganku/internal/database/testutil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t)

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "test",
		AccessTokenTTL: 15 * time.Minute,
	})
	require.NoError(t, err)

	router, err := NewRouter(db, jwtSvc, &app.Config{
		Uploads: app.UploadsConfig{Dir: t.TempDir()},
	})
	require.NoError(t, err)
	return router
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	router := newTestRouter(t)

	// Health should be public
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Theme catalog should be public
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/themes", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Protected endpoints without auth should be 401
	for _, path := range []string{"/api/auth/me", "/api/invitations"} {
		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// Unknown routes return the JSON 404
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/nonsense", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "go_goroutines") || w.Body.Len() > 0)
}

func TestRouter_RequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := NewRouter(nil, nil, nil)
	require.Error(t, err)
}
