package handlers

import (
	"net/http"
	"time"

	"campus-placement-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RelationshipHandler handles HTTP requests for the talent pool
type RelationshipHandler struct {
	relationshipService service.RelationshipServiceInterface
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(relationshipService service.RelationshipServiceInterface) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: relationshipService,
	}
}

// ListPool lists the caller's talent pool
// @Summary List talent pool
// @Description List the talent relationships of every organization identity visible to the caller, most recent contact first.
// @Description A primary account sees its own records and its secondaries'; a secondary sees its primary's.
// @Tags relationships
// @Produce json
// @Param status query string false "Filter by status" Enums(none_yet, bookmarked, in_conversation, interviewed, hired)
// @Param organization_kind query string false "Filter by organization kind" Enums(enterprise, teacher)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} service.PoolResponse "Successfully retrieved talent pool"
// @Failure 400 {object} ErrorResponse "Invalid filter or pagination"
// @Failure 403 {object} ErrorResponse "Caller is not an organization account"
// @Security BearerAuth
// @Router /relationships [get]
func (h *RelationshipHandler) ListPool(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	var filter service.PoolFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}

	pool, err := h.relationshipService.ListPool(c.Request.Context(), caller, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pool)
}

// ExportPool downloads the caller's talent pool as a spreadsheet
// @Summary Export talent pool
// @Description Download every talent relationship visible to the caller as an xlsx workbook
// @Tags relationships
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param organization_kind query string false "Filter by organization kind"
// @Success 200 {file} file "Talent pool workbook"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 403 {object} ErrorResponse "Caller is not an organization account"
// @Security BearerAuth
// @Router /relationships/export [get]
func (h *RelationshipHandler) ExportPool(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var filter service.PoolFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}

	content, err := h.relationshipService.ExportPool(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName(caller.AccountID, time.Now())+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

// GetForCandidate returns the caller's relationship with one candidate
// @Summary Get candidate relationship
// @Description Get the most recently contacted relationship any visible identity holds with the candidate
// @Tags relationships
// @Produce json
// @Param candidateId path string true "Candidate ID (UUID)"
// @Success 200 {object} service.RelationshipResponse "Successfully retrieved relationship"
// @Failure 400 {object} ErrorResponse "Invalid candidate ID"
// @Failure 404 {object} ErrorResponse "No relationship with this candidate"
// @Security BearerAuth
// @Router /relationships/candidates/{candidateId} [get]
func (h *RelationshipHandler) GetForCandidate(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid candidate ID"})
		return
	}

	relationship, err := h.relationshipService.GetForCandidate(c.Request.Context(), caller, candidateID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, relationship)
}
