package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var noopLogger = logger.NewNoopLogger()

// asUser authenticates every request of a test router as userID
func asUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetUserID(c, userID, true)
		c.Next()
	}
}

func newRouter(userID uint64) *gin.Engine {
	router := gin.New()
	if userID != 0 {
		router.Use(asUser(userID))
	}
	return router
}

func perform(router *gin.Engine, method, path, body string, contentType ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if len(contentType) > 0 {
		req.Header.Set("Content-Type", contentType[0])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decode(t, w)
	require.True(t, env.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}
