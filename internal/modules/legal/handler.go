package legal

import (
	"net/http"

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
	v1.GET("/legal/:type", h.PublicGet)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	legal := admin.Group("/legal")
	{
		legal.GET("", h.List)
		legal.POST("/update", h.Update)
	}
}

// PublicGet handles GET /api/v1/legal/:type
func (h *Handler) PublicGet(c *gin.Context) {
	page, err := h.service.PublicPage(c.Request.Context(), c.Param("type"))
	if err != nil {
		if err == ErrPageNotFound {
			response.Error(c, http.StatusNotFound, "PAGE_NOT_FOUND", "Legal page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load legal page")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// List handles GET /api/v1/admin/legal
func (h *Handler) List(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load legal pages")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Pages: pages})
}

// Update handles POST /api/v1/admin/legal/update
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Page type, title and content are required", errs)
		return
	}

	page, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update legal page")
		return
	}

	response.Success(c, http.StatusOK, page)
}
