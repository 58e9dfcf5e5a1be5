package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
)

// gin context keys set by Auth
const (
	userIDKey        = "auth.user_id"
	emailVerifiedKey = "auth.email_verified"
	roleKey          = "auth.role"
)

// RoleOperator is the role claim of staff allowed to act on the merchant accounts
const RoleOperator = "operator"

// Claims are the bearer token claims issued by the account service
type Claims struct {
	EmailVerified bool   `json:"email_verified"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig configures token validation
type AuthConfig struct {
	Secret string
	Issuer string // optional; checked when set
}

// Auth validates an HS256 bearer token and stores the user id from its subject
func Auth(cfg AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	parser := newParser(cfg)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		claims, userID, err := parseToken(parser, cfg.Secret, tokenString)
		if err != nil {
			logger.Warn("JWT validation failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			unauthorized(c, "Invalid or expired token")
			return
		}

		SetUserID(c, userID, claims.EmailVerified)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid bearer token is present and lets anonymous requests through
func OptionalAuth(cfg AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	parser := newParser(cfg)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if found && tokenString != "" {
			claims, userID, err := parseToken(parser, cfg.Secret, tokenString)
			if err == nil {
				SetUserID(c, userID, claims.EmailVerified)
			} else {
				logger.Debug("Ignoring invalid optional token", map[string]any{
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				})
			}
		}
		c.Next()
	}
}

func newParser(cfg AuthConfig) *jwt.Parser {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	return jwt.NewParser(options...)
}

func parseToken(parser *jwt.Parser, secret, tokenString string) (*Claims, uint64, error) {
	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, 0, err
	}
	userID, err := subjectUserID(claims)
	if err != nil {
		return nil, 0, err
	}
	return claims, userID, nil
}

// Verified rejects users whose email address is not verified. It must run after Auth.
func Verified() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(emailVerifiedKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrUnverified),
				Message: "Email address not verified",
			})
			return
		}
		c.Next()
	}
}

// Operator rejects callers without the operator role. It must run after Auth.
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsOperator(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrForbidden),
				Message: "Operator access required",
			})
			return
		}
		c.Next()
	}
}

// IsOperator reports whether the authenticated caller has the operator role
func IsOperator(c *gin.Context) bool {
	return c.GetString(roleKey) == RoleOperator
}

// SetRole grants a role to the request; used by tests and internal callers
func SetRole(c *gin.Context, role string) {
	c.Set(roleKey, role)
}

// UserID returns the authenticated user id
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id > 0
}

// SetUserID marks a request as authenticated; used by tests and internal callers
func SetUserID(c *gin.Context, userID uint64, verified bool) {
	c.Set(userIDKey, userID)
	c.Set(emailVerifiedKey, verified)
}

func subjectUserID(claims *Claims) (uint64, error) {
	if claims.Subject == "" {
		return 0, errors.New("missing subject")
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return id, nil
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrUnauthenticated),
		Message: message,
	})
}
