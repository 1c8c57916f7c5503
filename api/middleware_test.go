package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airreserve/internal/auth"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokens("test-secret", time.Hour)
	token, err := tokens.Issue(testPrincipal)
	require.NoError(t, err)

	a := NewAuth(tokens)
	r := gin.New()
	echo := func(c *gin.Context) {
		p, ok := principalFrom(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": p.UserID})
	}
	r.GET("/required", a.Required(), echo)
	r.GET("/optional", a.Optional(), echo)
	return r, token
}

func TestAuth_Required(t *testing.T) {
	r, token := newAuthRouter(t)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "lower case scheme", header: "bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/required", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"authenticated":true,"user_id":7}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
			}
		})
	}
}

func TestAuth_Optional(t *testing.T) {
	r, token := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/optional", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false,"user_id":0}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"authenticated":true,"user_id":7}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer forged")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/fail", func(c *gin.Context) { writeError(c, domain.Infrastructure("op", assert.AnError)) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, int64(http.StatusNoContent), entries[0].ContextMap()["status"])
	assert.Equal(t, "request failed", entries[1].Message)
	assert.Equal(t, "/fail", entries[1].ContextMap()["path"])
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(domain.Validation("x")))
	assert.Equal(t, http.StatusConflict, statusOf(domain.ErrCapacityExceeded))
	assert.Equal(t, http.StatusConflict, statusOf(domain.ErrAlreadyExists))
	assert.Equal(t, http.StatusNotFound, statusOf(domain.ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, statusOf(domain.ErrUnauthenticated))
	assert.Equal(t, http.StatusForbidden, statusOf(domain.ErrForbidden))
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(domain.Infrastructure("op", assert.AnError)))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
