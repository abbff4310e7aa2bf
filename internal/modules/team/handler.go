package team

import (
	"log"
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
	v1.GET("/team-members", h.PublicList)
	v1.GET("/team-members/:slug", h.PublicGet)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	members := admin.Group("/team-members")
	{
		members.GET("", h.List)
		members.POST("", h.Create)
		members.PUT("/:id", h.Update)
		members.DELETE("/:id", h.Delete)
	}
}

// PublicList handles GET /api/v1/team-members. A storage failure or an
// unseeded table serves the hardcoded roster so the public page never
// renders empty.
func (h *Handler) PublicList(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("team roster fetch failed, serving fallback: %v", err)
		members = nil
	}
	if len(members) == 0 {
		members = FallbackRoster()
	}

	response.Success(c, http.StatusOK, ListResponse{Members: members, Total: len(members)})
}

// PublicGet handles GET /api/v1/team-members/:slug
func (h *Handler) PublicGet(c *gin.Context) {
	member, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if err == ErrMemberNotFound {
			response.Error(c, http.StatusNotFound, "MEMBER_NOT_FOUND", "Team member not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load team member")
		return
	}

	response.Success(c, http.StatusOK, member)
}

// List handles GET /api/v1/admin/team-members
func (h *Handler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load team members")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Members: members, Total: len(members)})
}

// Create handles POST /api/v1/admin/team-members
func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Name and position are required", errs)
		return
	}

	member, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrSlugTaken:
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A member with this slug already exists")
		case ErrBioRequired:
			response.Error(c, http.StatusUnprocessableEntity, "BIO_REQUIRED", "At least one biography paragraph is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team member")
		}
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// Update handles PUT /api/v1/admin/team-members/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Slug, name and position are required", errs)
		return
	}

	member, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrMemberNotFound:
			response.Error(c, http.StatusNotFound, "MEMBER_NOT_FOUND", "Team member not found")
		case ErrSlugTaken:
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A member with this slug already exists")
		case ErrBioRequired:
			response.Error(c, http.StatusUnprocessableEntity, "BIO_REQUIRED", "At least one biography paragraph is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update team member")
		}
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Delete handles DELETE /api/v1/admin/team-members/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrMemberNotFound {
			response.Error(c, http.StatusNotFound, "MEMBER_NOT_FOUND", "Team member not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete team member")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func memberID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid team member ID")
		return 0, false
	}
	return id, true
}
