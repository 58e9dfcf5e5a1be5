package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// CVHandler serves CV templates and previews
type CVHandler struct {
	cvs    usecase.CVUseCase
	logger coreport.Logger
}

// NewCVHandler creates a new CV handler instance
func NewCVHandler(cvs usecase.CVUseCase, logger coreport.Logger) *CVHandler {
	return &CVHandler{cvs: cvs, logger: logger}
}

// Templates handles GET /api/cv/templates
func (h *CVHandler) Templates(c *gin.Context) {
	respondOK(c, h.cvs.Templates())
}

// Preview handles GET /api/cv/preview/:template
func (h *CVHandler) Preview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	// render into a buffer so a template error can still produce a JSON error
	var buf bytes.Buffer
	if err := h.cvs.Preview(c.Request.Context(), &buf, userID, c.Param("template"), c.Query("page")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
