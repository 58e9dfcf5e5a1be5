package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
)

// SectionHandler edits custom sections and services. Routes pass the kind in the :kind parameter.
type SectionHandler struct {
	sections usecase.SectionUseCase
	logger   coreport.Logger
}

// NewSectionHandler creates a new section handler instance
func NewSectionHandler(sections usecase.SectionUseCase, logger coreport.Logger) *SectionHandler {
	return &SectionHandler{sections: sections, logger: logger}
}

// List handles GET /api/portfolio/:kind
func (h *SectionHandler) List(c *gin.Context) {
	userID, kind, ok := h.scope(c)
	if !ok {
		return
	}

	sections, err := h.sections.List(c.Request.Context(), userID, kind)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, sections)
}

// Create handles POST /api/portfolio/:kind
func (h *SectionHandler) Create(c *gin.Context) {
	userID, kind, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	section, err := h.sections.Create(c.Request.Context(), userID, sectionInput(kind, req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(section))
}

// Update handles PUT /api/portfolio/:kind/:id
func (h *SectionHandler) Update(c *gin.Context) {
	userID, kind, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	section, err := h.sections.Update(c.Request.Context(), userID, id, sectionInput(kind, req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, section)
}

// Delete handles DELETE /api/portfolio/:kind/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	userID, _, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.sections.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

// Toggle handles POST /api/portfolio/:kind/:id/toggle
func (h *SectionHandler) Toggle(c *gin.Context) {
	userID, _, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	section, err := h.sections.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, section)
}

// Move handles POST /api/portfolio/:kind/:id/move
func (h *SectionHandler) Move(c *gin.Context) {
	userID, _, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sections, err := h.sections.Move(c.Request.Context(), userID, id, entity.Direction(req.Direction))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, sections)
}

// Reorder handles PUT /api/portfolio/:kind/order
func (h *SectionHandler) Reorder(c *gin.Context) {
	userID, kind, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sections, err := h.sections.Reorder(c.Request.Context(), userID, kind, req.IDs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, sections)
}

// scope resolves the caller and the section kind from the path
func (h *SectionHandler) scope(c *gin.Context) (uint64, entity.SectionKind, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return 0, "", false
	}

	kind := kindFromPath(c.Param("kind"))
	if !kind.IsValid() {
		respondError(c, h.logger, errs.NewValidationError("kind", "must be sections or services"))
		return 0, "", false
	}
	return userID, kind, true
}

// kindFromPath accepts the plural path segments used by the front end
func kindFromPath(segment string) entity.SectionKind {
	switch segment {
	case "sections", "custom-sections":
		return entity.SectionCustom
	case "services":
		return entity.SectionService
	default:
		return entity.SectionKind(segment)
	}
}

func sectionInput(kind entity.SectionKind, req dto.SectionRequest) usecase.SectionInput {
	return usecase.SectionInput{
		Kind:            kind,
		Title:           req.Title,
		Type:            req.Type,
		Content:         req.Content,
		IsActive:        req.IsActive,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
	}
}
