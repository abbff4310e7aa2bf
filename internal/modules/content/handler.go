package content

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wheelstreet/internal/pkg/response"
	"wheelstreet/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	content := v1.Group("/content")
	{
		content.GET("/sections", h.PublicSections)
		content.GET("/sections/:type", h.PublicSection)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	sections := admin.Group("/sections")
	{
		sections.GET("", h.ListSections)
		sections.POST("", h.CreateSection)
		sections.PUT("/:id", h.UpdateSection)
		sections.DELETE("/:id", h.DeleteSection)
		sections.POST("/:id/move", h.MoveSection)
		sections.GET("/:id/tabs", h.ListTabs)
		sections.POST("/:id/tabs", h.CreateTab)
	}

	tabs := admin.Group("/tabs")
	{
		tabs.PUT("/:id", h.UpdateTab)
		tabs.DELETE("/:id", h.DeleteTab)
		tabs.POST("/:id/move", h.MoveTab)
	}
}

// PublicSections handles GET /api/v1/content/sections
func (h *Handler) PublicSections(c *gin.Context) {
	sections := h.service.PublicSections(c.Request.Context())
	response.Success(c, http.StatusOK, SectionsResponse{Sections: sections})
}

// PublicSection handles GET /api/v1/content/sections/:type
func (h *Handler) PublicSection(c *gin.Context) {
	section, err := h.service.PublicSection(c.Request.Context(), c.Param("type"))
	if err != nil {
		if err == ErrSectionNotFound {
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load section")
		return
	}

	response.Success(c, http.StatusOK, section)
}

// ListSections handles GET /api/v1/admin/sections
func (h *Handler) ListSections(c *gin.Context) {
	sections, err := h.service.ListSections(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load sections")
		return
	}

	response.Success(c, http.StatusOK, SectionsResponse{Sections: sections})
}

// CreateSection handles POST /api/v1/admin/sections
func (h *Handler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "section_type and title are required", errs)
		return
	}

	section, err := h.service.CreateSection(c.Request.Context(), &req)
	if err != nil {
		if err == ErrSectionTypeTaken {
			response.Error(c, http.StatusConflict, "SECTION_TYPE_TAKEN", "A section with this type already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create section")
		return
	}

	response.Success(c, http.StatusCreated, section)
}

// UpdateSection handles PUT /api/v1/admin/sections/:id
func (h *Handler) UpdateSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", errs)
		return
	}

	section, err := h.service.UpdateSection(c.Request.Context(), id, &req)
	if err != nil {
		if err == ErrSectionNotFound {
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update section")
		return
	}

	response.Success(c, http.StatusOK, section)
}

// DeleteSection handles DELETE /api/v1/admin/sections/:id
func (h *Handler) DeleteSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSection(c.Request.Context(), id); err != nil {
		switch err {
		case ErrSectionNotFound:
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
		case ErrLastSection:
			response.Error(c, http.StatusBadRequest, "LAST_SECTION", "At least one section must remain")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete section")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// MoveSection handles POST /api/v1/admin/sections/:id/move
func (h *Handler) MoveSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.MoveSection(c.Request.Context(), id, req.Direction); err != nil {
		switch err {
		case ErrSectionNotFound:
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
		case ErrInvalidDirection:
			response.Error(c, http.StatusBadRequest, "INVALID_DIRECTION", "Direction must be up or down")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to move section")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"moved": true})
}

// ListTabs handles GET /api/v1/admin/sections/:id/tabs
func (h *Handler) ListTabs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tabs, err := h.service.ListTabs(c.Request.Context(), id)
	if err != nil {
		if err == ErrSectionNotFound {
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tabs")
		return
	}

	response.Success(c, http.StatusOK, TabsResponse{Tabs: tabs})
}

// CreateTab handles POST /api/v1/admin/sections/:id/tabs
func (h *Handler) CreateTab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CreateTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "tab_id and title are required", errs)
		return
	}

	tab, err := h.service.CreateTab(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrSectionNotFound:
			response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
		case ErrTabIDTaken:
			response.Error(c, http.StatusConflict, "TAB_ID_TAKEN", "A tab with this id already exists in the section")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create tab")
		}
		return
	}

	response.Success(c, http.StatusCreated, tab)
}

// UpdateTab handles PUT /api/v1/admin/tabs/:id
func (h *Handler) UpdateTab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", errs)
		return
	}

	tab, err := h.service.UpdateTab(c.Request.Context(), id, &req)
	if err != nil {
		if err == ErrTabNotFound {
			response.Error(c, http.StatusNotFound, "TAB_NOT_FOUND", "Service tab not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update tab")
		return
	}

	response.Success(c, http.StatusOK, tab)
}

// DeleteTab handles DELETE /api/v1/admin/tabs/:id
func (h *Handler) DeleteTab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTab(c.Request.Context(), id); err != nil {
		if err == ErrTabNotFound {
			response.Error(c, http.StatusNotFound, "TAB_NOT_FOUND", "Service tab not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete tab")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// MoveTab handles POST /api/v1/admin/tabs/:id/move
func (h *Handler) MoveTab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.MoveTab(c.Request.Context(), id, req.Direction); err != nil {
		switch err {
		case ErrTabNotFound:
			response.Error(c, http.StatusNotFound, "TAB_NOT_FOUND", "Service tab not found")
		case ErrInvalidDirection:
			response.Error(c, http.StatusBadRequest, "INVALID_DIRECTION", "Direction must be up or down")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to move tab")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"moved": true})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
