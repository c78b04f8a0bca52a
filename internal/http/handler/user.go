package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"atlasorg.app/console/internal/http/dto"
	"atlasorg.app/console/internal/http/middleware"
	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	viewer := middleware.GetUser(ctx)
	targetID, ok := resolveTargetID(c, viewer)
	if !ok {
		return
	}

	details, err := h.userService.Get(ctx, viewer, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			slog.ErrorContext(ctx, "failed to load user", "error", err, "target_id", targetID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailsResponse(details))
}

func (h *UserHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	actor := middleware.GetUser(ctx)
	targetID, ok := resolveTargetID(c, actor)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		if fields := bindingFieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(ctx, actor, targetID, req.ToProfileUpdate())
	if err != nil {
		var valErr *service.ValidationError
		switch {
		case errors.As(err, &valErr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": valErr.Fields})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			slog.ErrorContext(ctx, "failed to update user", "error", err, "target_id", targetID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Close deactivates the account and tears down owned organizations. Always
// responds 204 once the pipeline has run; partial organization failures are
// recovered out of band.
func (h *UserHandler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	actor := middleware.GetUser(ctx)
	targetID, ok := resolveTargetID(c, actor)
	if !ok {
		return
	}
	if targetID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req dto.CloseAccountRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.WarnContext(ctx, "invalid request body", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	err := h.userService.CloseAccount(ctx, service.CloseAccountInput{
		User:           actor,
		RequestedSlugs: req.Organizations,
		ActorID:        actor.ID,
		ActorIP:        c.ClientIP(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to close account", "error", err, "user_id", actor.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close account"})
		return
	}

	middleware.ClearSessionCookie(c, false)
	c.Status(http.StatusNoContent)
}

// bindingFieldErrors converts binding-tag failures into the same
// field→messages map the profile validation path produces. Returns nil for
// anything else (malformed JSON keeps the plain error form).
func bindingFieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = append(fields[name], bindingMessage(fe))
	}
	return fields
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "required":
		return "This field is required."
	default:
		return "This value is invalid."
	}
}

// resolveTargetID maps the path parameter to a user ID. "me" resolves to the
// authenticated user. Writes the error response itself on failure.
func resolveTargetID(c *gin.Context, actor *model.User) (int64, bool) {
	param := c.Param("id")
	if param == "me" || param == "" {
		return actor.ID, true
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return id, true
}
