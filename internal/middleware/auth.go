package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"printshop-backend/internal/config"
)

const (
	AdminSessionKey = "admin_session"
	adminSubject    = "admin"
	adminRole       = "admin"
)

// AdminSession is the verified admin identity carried by a request.
type AdminSession struct {
	Subject   string
	ExpiresAt time.Time
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type sessionContextKey struct{}

// WithAdminSession returns a copy of ctx carrying s.
func WithAdminSession(ctx context.Context, s AdminSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// AdminSessionFromContext returns the session placed by AdminAuth, if any.
func AdminSessionFromContext(ctx context.Context) (AdminSession, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(AdminSession)
	return s, ok
}

// IssueAdminToken signs an HS256 admin session token valid for the
// configured TTL.
func IssueAdminToken(cfg *config.Config, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(cfg.AdminSessionTTL)
	claims := adminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AdminJWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// AdminAuth requires a valid admin session token. When the gate is not
// configured every request passes through without a session.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AdminGateEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		var claims adminClaims
		_, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.AdminJWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
		if err != nil {
			errorMsg := "token is invalid"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				errorMsg = "token has expired"
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				errorMsg = "token signature is invalid"
			case errors.Is(err, jwt.ErrTokenMalformed):
				errorMsg = "token is malformed"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token", "details": errorMsg})
			c.Abort()
			return
		}

		if claims.Role != adminRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		session := AdminSession{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
		c.Set(AdminSessionKey, session)
		c.Request = c.Request.WithContext(WithAdminSession(c.Request.Context(), session))
		c.Next()
	}
}
