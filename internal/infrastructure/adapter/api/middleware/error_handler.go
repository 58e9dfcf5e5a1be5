package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panicking handler into a 500 envelope and logs the stack.
// http.ErrAbortHandler is passed through so net/http can drop the connection.
func ErrorHandler(log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log.Error("Panic recovered in API request", map[string]any{
				"error":      fmt.Sprint(rec),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"client_ip":  c.ClientIP(),
				"request_id": logger.RequestID(c.Request.Context()),
				"stack":      string(debug.Stack()),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    errs.CodeInternalServer,
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
