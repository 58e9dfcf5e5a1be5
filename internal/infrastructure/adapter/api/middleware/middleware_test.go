package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	mockcore "github.com/guidy-app/joblight/mocks/port/core"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims(userID uint64, verified bool) Claims {
	return Claims{
		EmailVerified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			Issuer:    "joblight",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuth(t *testing.T) {
	expired := validClaims(7, true)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	badSubject := validClaims(7, true)
	badSubject.Subject = "paul"
	otherIssuer := validClaims(7, true)
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", validClaims(7, true)), wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + signToken(t, testSecret, expired), wantStatus: http.StatusUnauthorized},
		{name: "non numeric subject", header: "Bearer " + signToken(t, testSecret, badSubject), wantStatus: http.StatusUnauthorized},
		{name: "foreign issuer", header: "Bearer " + signToken(t, testSecret, otherIssuer), wantStatus: http.StatusUnauthorized},
		{name: "unverified email", header: "Bearer " + signToken(t, testSecret, validClaims(7, false)), wantStatus: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + signToken(t, testSecret, validClaims(7, true)), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			router := gin.New()
			router.Use(Auth(AuthConfig{Secret: testSecret, Issuer: "joblight"}, logger.NewNoopLogger()), Verified())
			router.GET("/me", func(c *gin.Context) {
				userID, _ := UserID(c)
				c.String(http.StatusOK, strconv.FormatUint(userID, 10))
			})
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "7", w.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "anonymous", header: "", want: "0"},
		{name: "invalid token is ignored", header: "Bearer garbage", want: "0"},
		{name: "valid token identifies the caller", header: "Bearer " + signToken(t, testSecret, validClaims(12, false)), want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			router := gin.New()
			router.Use(OptionalAuth(AuthConfig{Secret: testSecret}, logger.NewNoopLogger()))
			router.GET("/portfolio/x", func(c *gin.Context) {
				userID, _ := UserID(c)
				c.String(http.StatusOK, strconv.FormatUint(userID, 10))
			})
			req := httptest.NewRequest(http.MethodGet, "/portfolio/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestOperator(t *testing.T) {
	operator := validClaims(3, true)
	operator.Role = RoleOperator
	support := validClaims(4, true)
	support.Role = "support"

	tests := []struct {
		name       string
		claims     Claims
		wantStatus int
	}{
		{name: "regular user", claims: validClaims(7, true), wantStatus: http.StatusForbidden},
		{name: "other role", claims: support, wantStatus: http.StatusForbidden},
		{name: "operator", claims: operator, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			router := gin.New()
			router.Use(Auth(AuthConfig{Secret: testSecret}, logger.NewNoopLogger()), Operator())
			router.POST("/api/fapshi/payout", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/fapshi/payout", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, tt.claims))
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Run("should reuse the caller's id", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, logger.RequestID(c.Request.Context()))
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("should issue a new id when the caller's is too long", func(t *testing.T) {
		// Arrange
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, logger.RequestID(c.Request.Context()))
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})
}

func TestCinetPayDebug(t *testing.T) {
	t.Run("should log redacted fields and leave the body readable", func(t *testing.T) {
		// Arrange
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Info("CinetPay callback received", mock.MatchedBy(func(fields map[string]any) bool {
			form, ok := fields["form"].(map[string]any)
			headers, _ := fields["headers"].(map[string]any)
			return ok &&
				form["cpm_trans_id"] == "JLref" &&
				form["token"] == redactedValue &&
				headers["X-Token"] == redactedValue
		})).Once()

		router := gin.New()
		router.Use(CinetPayDebug(true, log))
		var seen string
		router.POST("/api/cinetpay/notify", func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			seen = string(body)
			c.Status(http.StatusOK)
		})

		body := "cpm_trans_id=JLref&token=s3cret"
		req := httptest.NewRequest(http.MethodPost, "/api/cinetpay/notify", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Token", "hmac-value")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, seen)
	})

	t.Run("should redact nested JSON keys", func(t *testing.T) {
		// Arrange
		in := map[string]any{
			"data": map[string]any{"apikey": "k", "amount": float64(100)},
			"site": "105",
		}

		// Act
		out := redactJSON(in)

		// Assert
		nested := out["data"].(map[string]any)
		assert.Equal(t, redactedValue, nested["apikey"])
		assert.Equal(t, float64(100), nested["amount"])
		assert.Equal(t, "105", out["site"])
	})

	t.Run("should do nothing when disabled", func(t *testing.T) {
		// Arrange
		log := mockcore.NewMockLogger(t)
		router := gin.New()
		router.Use(CinetPayDebug(false, log))
		router.POST("/notify", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader("a=b")))

		// Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	// Arrange
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()
	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/boom", func(*gin.Context) { panic("secret detail") })
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
}
