package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser) // staff only
		users.GET("/me", h.getMe)
		users.GET("/:id", h.getUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a portal user. Only staff may create users.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.IsStaff {
		respondError(c, apperrors.ErrPermissionDenied, "create user")
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create user")
		return
	}

	createdUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User created", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

// getMe godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.respondUser(c, actor.UserID)
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	h.respondUser(c, c.Param("id"))
}

func (h *userHandler) respondUser(c *gin.Context, userID string) {
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
