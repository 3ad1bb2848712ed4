package handlers

import (
	"net/http"

	"campus-placement-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative maintenance endpoints
type AdminHandler struct {
	rebuildService service.RebuildServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(rebuildService service.RebuildServiceInterface) *AdminHandler {
	return &AdminHandler{
		rebuildService: rebuildService,
	}
}

// RebuildLedger replays every stored contact record into the talent relationship ledger
// @Summary Rebuild talent relationship ledger
// @Description Replay applications, interviews, offers, bookmarks and conversations oldest first. Safe to run on a populated ledger.
// @Tags admin
// @Produce json
// @Success 200 {object} service.RebuildResult "Ledger rebuilt"
// @Failure 403 {object} ErrorResponse "Caller is not an administrator"
// @Failure 500 {object} ErrorResponse "Replay failed"
// @Security BearerAuth
// @Router /admin/ledger/rebuild [post]
func (h *AdminHandler) RebuildLedger(c *gin.Context) {
	result, err := h.rebuildService.Rebuild(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
