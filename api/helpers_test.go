package api

import (
	"bytes"
	"net/http/httptest"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
)

var testPrincipal = domain.Principal{UserID: 7, Email: "ann@example.com", Role: domain.RoleUser}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func withPrincipal(c *gin.Context, p domain.Principal) {
	c.Set(principalKey, p)
}
