package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spaRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(NewSPAController(staticDir).Serve)
	return router
}

// writeBundle lays out a minimal built front-end.
func writeBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("console.log('app')"), 0o644))
	return dir
}

func spaGet(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSPAServesExistingFile(t *testing.T) {
	router := spaRouter(t, writeBundle(t))

	w := spaGet(router, http.MethodGet, "/static/app.js")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log('app')", w.Body.String())
}

func TestSPAFallsBackToIndexForClientRoutes(t *testing.T) {
	router := spaRouter(t, writeBundle(t))

	w := spaGet(router, http.MethodGet, "/learners/1/profile")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>home</html>", w.Body.String())
}

func TestSPAServesIndexAtRoot(t *testing.T) {
	router := spaRouter(t, writeBundle(t))

	w := spaGet(router, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>home</html>", w.Body.String())
}

func TestSPARejectsPathTraversal(t *testing.T) {
	dir := writeBundle(t)
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("top secret"), 0o644))

	router := spaRouter(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret.txt"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEqual(t, "top secret", w.Body.String())
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSPAMissingBundle(t *testing.T) {
	router := spaRouter(t, t.TempDir())

	w := spaGet(router, http.MethodGet, "/anything")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Front-end bundle not found", decodeObject(t, w)["error"])
}

func TestSPARejectsUnmatchedNonGet(t *testing.T) {
	router := spaRouter(t, writeBundle(t))

	w := spaGet(router, http.MethodPost, "/api/unknown")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Resource not found", decodeObject(t, w)["error"])
}
