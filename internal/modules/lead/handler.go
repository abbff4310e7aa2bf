package lead

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/middleware"
	"wheelstreet/internal/pkg/response"
	"wheelstreet/internal/pkg/validator"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/leads", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	leads := admin.Group("/leads")
	{
		leads.GET("", h.List)
		leads.GET("/export", h.Export)
		leads.GET("/stats", h.GetStats)
		leads.GET("/:id", h.Get)
		leads.PUT("/:id", h.Update)
		leads.DELETE("/:id", h.Delete)
	}

	admin.GET("/debug/team-members", h.Dump)
}

// Submit handles POST /api/v1/leads (public capture form)
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Name and phone are required", errs)
		return
	}

	lead, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit inquiry")
		return
	}

	middleware.RecordLeadSubmission()

	response.Success(c, http.StatusCreated, lead)
}

// List handles GET /api/v1/admin/leads?status=&q=
func (h *Handler) List(c *gin.Context) {
	f, ok := filterFromQuery(c)
	if !ok {
		return
	}

	leads, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load leads")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: len(leads)})
}

// Get handles GET /api/v1/admin/leads/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	lead, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lead")
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// Update handles PUT /api/v1/admin/leads/:id — status, notes and
// assignment only.
func (h *Handler) Update(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	lead, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case ErrInvalidStatus:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Status must be one of the pipeline values")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update lead")
		}
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// Delete handles DELETE /api/v1/admin/leads/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete lead")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Export handles GET /api/v1/admin/leads/export?status=&q= and streams
// the currently filtered set as a CSV download.
func (h *Handler) Export(c *gin.Context) {
	f, ok := filterFromQuery(c)
	if !ok {
		return
	}

	leads, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load leads")
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := WriteCSV(c.Writer, leads); err != nil {
		// Headers are already sent; just record the failure
		_ = c.Error(err)
	}
}

// GetStats handles GET /api/v1/admin/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Dump handles GET /api/v1/admin/debug/team-members — the combined
// leads + team snapshot the pipeline tab loads in one request.
func (h *Handler) Dump(c *gin.Context) {
	dump, err := h.service.Dump(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pipeline data")
		return
	}

	response.Success(c, http.StatusOK, dump)
}

func leadID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return 0, false
	}
	return id, true
}

func filterFromQuery(c *gin.Context) (Filter, bool) {
	f := Filter{Query: c.Query("q")}

	if status := c.Query("status"); status != "" {
		s := domain.LeadStatus(status)
		if !s.IsValid() {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status filter")
			return Filter{}, false
		}
		f.Status = s
	}

	return f, true
}
