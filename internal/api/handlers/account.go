package handlers

import (
	"net/http"

	"campus-placement-backend/internal/database/models"
	"campus-placement-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles HTTP requests for organization accounts
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func organizationKindParam(c *gin.Context) (models.OrganizationKind, bool) {
	kind := models.OrganizationKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid account kind", Details: "must be enterprise or teacher"})
		return "", false
	}
	return kind, true
}

// Provision creates an enterprise or teacher account
// @Summary Provision an organization account
// @Description Create a primary account (administrators only) or a secondary account attached to a primary.
// @Description A secondary may be created by an administrator or by the primary it attaches to.
// @Tags accounts
// @Accept json
// @Produce json
// @Param kind path string true "Account kind" Enums(enterprise, teacher)
// @Param account body service.ProvisionAccountRequest true "Account data"
// @Success 201 {object} service.AccountResponse "Successfully created account"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller may not create this account"
// @Failure 404 {object} ErrorResponse "Primary account not found"
// @Security BearerAuth
// @Router /accounts/{kind} [post]
func (h *AccountHandler) Provision(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	kind, ok := organizationKindParam(c)
	if !ok {
		return
	}

	var req service.ProvisionAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.accountService.Provision(c.Request.Context(), caller, kind, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// Identity describes the identities an account writes and reads under
// @Summary Get account identities
// @Description Get the role, effective identity and visible identities of an organization account
// @Tags accounts
// @Produce json
// @Param kind path string true "Account kind" Enums(enterprise, teacher)
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} service.IdentityResponse "Successfully resolved identities"
// @Failure 400 {object} ErrorResponse "Invalid account ID"
// @Failure 403 {object} ErrorResponse "Account is outside the caller's organization"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{kind}/{id}/identity [get]
func (h *AccountHandler) Identity(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	kind, ok := organizationKindParam(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid account ID"})
		return
	}

	identity, err := h.accountService.Identity(c.Request.Context(), caller, kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}
