package api

import (
	"strings"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

type TokenParser interface {
	Parse(raw string) (domain.Principal, error)
}

// Auth turns bearer tokens into a domain.Principal stored on the gin context.
type Auth struct {
	tokens TokenParser
}

func NewAuth(tokens TokenParser) *Auth {
	return &Auth{tokens: tokens}
}

// Required rejects requests without a valid bearer token.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearer(c)
		if !ok {
			writeError(c, domain.ErrUnauthenticated)
			return
		}
		p, err := a.tokens.Parse(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// Optional attaches a principal when a valid token is sent and lets
// anonymous callers through. An invalid token is still rejected.
func (a *Auth) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearer(c)
		if !ok {
			c.Next()
			return
		}
		p, err := a.tokens.Parse(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

func bearer(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func principalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

// mustPrincipal is used behind Required; a missing principal means the
// route was registered without it.
func mustPrincipal(c *gin.Context) (domain.Principal, bool) {
	p, ok := principalFrom(c)
	if !ok {
		writeError(c, domain.ErrUnauthenticated)
	}
	return p, ok
}

// RequestLogger logs one line per request and any errors attached to it.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			logger.Error("request failed", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		logger.Info("request", fields...)
	}
}
