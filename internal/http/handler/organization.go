package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"atlasorg.app/console/internal/http/dto"
	"atlasorg.app/console/internal/http/middleware"
	"atlasorg.app/console/internal/service"
	"atlasorg.app/console/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator := middleware.GetUser(ctx)

	org, err := h.orgService.Create(ctx, req.Name, req.Slug, creator.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			slog.InfoContext(ctx, "duplicate organization slug", "name", req.Name)
			c.JSON(http.StatusConflict, gin.H{"error": "organization with this slug already exists"})
			return
		}
		slog.ErrorContext(ctx, "failed to create organization", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// Delete marks the organization for teardown; the deletion worker runs the
// cascade asynchronously.
func (h *OrganizationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	actor := middleware.GetUser(ctx)
	if err := h.orgService.RequestDeletionBy(ctx, slug, actor); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		slog.ErrorContext(ctx, "failed to request organization deletion", "error", err, "slug", slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete organization"})
		return
	}

	c.Status(http.StatusAccepted)
}
