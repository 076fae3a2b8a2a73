package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"espaco_vista/internal/domain/pricing"
	"espaco_vista/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

const roleKey = "auth.role"

var signingMethod = jwt.SigningMethodHS256

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient:
		return true
	}
	return false
}

// HasPricing reports whether the role sees prices, discounts and credits.
func (r Role) HasPricing() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Claims is the token payload. Only the role is read.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for role, valid for ttl.
func SignToken(secret string, role Role, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", role)
	}
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

func parseToken(secret, raw string) (Role, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return "", err
	}
	if !claims.Role.IsValid() {
		return "", fmt.Errorf("invalid role %q", claims.Role)
	}
	return claims.Role, nil
}

// Auth resolves the caller role from an optional Bearer token. Requests
// without a token are clients; a token that fails validation is rejected.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Set(roleKey, RoleClient)
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization header", http.StatusUnauthorized))
			return
		}
		role, err := parseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			abort(c, pkg.NewDomainError("UNAUTHORIZED", "Invalid token", err, http.StatusUnauthorized))
			return
		}
		c.Set(roleKey, role)
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden))
	}
}

// RoleFromContext defaults to client when Auth did not run.
func RoleFromContext(c *gin.Context) Role {
	if v, ok := c.Get(roleKey); ok {
		if r, ok := v.(Role); ok {
			return r
		}
	}
	return RoleClient
}

func ViewerFromContext(c *gin.Context) pricing.Visibility {
	return pricing.VisibilityFor(RoleFromContext(c).HasPricing())
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
