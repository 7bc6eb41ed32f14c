package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	Setup()
	os.Exit(m.Run())
}

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken("user-1")
	require.NoError(t, err)

	sub, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	_, err = parseToken("not-a-token")
	assert.Error(t, err)
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/private", JWT(), func(c *gin.Context) {
		c.String(http.StatusOK, Viewer(c))
	})
	router.GET("/public", OptionalJWT(), func(c *gin.Context) {
		c.String(http.StatusOK, "viewer:"+Viewer(c))
	})
	return router
}

func perform(router *gin.Engine, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTRequiresToken(t *testing.T) {
	router := newTestRouter()

	w := perform(router, "/private", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/auth/login")

	w = perform(router, "/private", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := IssueToken("user-42")
	require.NoError(t, err)
	w = perform(router, "/private", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())

	// Token in the query parameter works too.
	w = perform(router, "/private?token="+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWT(t *testing.T) {
	router := newTestRouter()

	w := perform(router, "/public", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewer:", w.Body.String())

	token, err := IssueToken("user-42")
	require.NoError(t, err)
	w = perform(router, "/public", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, "viewer:user-42", w.Body.String())

	// An invalid token degrades to anonymous instead of failing.
	w = perform(router, "/public", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewer:", w.Body.String())
}

func TestSpoofedIdentityHeaderIsStripped(t *testing.T) {
	router := newTestRouter()

	w := perform(router, "/public", map[string]string{"sub": "i-am-admin"})
	assert.Equal(t, "viewer:", w.Body.String())

	w = perform(router, "/private", map[string]string{"sub": "i-am-admin"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
