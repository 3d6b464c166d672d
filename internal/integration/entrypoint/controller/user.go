package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/auth"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user account endpoints.
type UserController struct {
	currentUserUseCase    *auth.GetCurrentUserUseCase
	listUsersUseCase      *auth.ListUsersUseCase
	deleteUserUseCase     *auth.DeleteUserUseCase
	changePasswordUseCase *auth.ChangePasswordUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	currentUserUseCase *auth.GetCurrentUserUseCase,
	listUsersUseCase *auth.ListUsersUseCase,
	deleteUserUseCase *auth.DeleteUserUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
) *UserController {
	return &UserController{
		currentUserUseCase:    currentUserUseCase,
		listUsersUseCase:      listUsersUseCase,
		deleteUserUseCase:     deleteUserUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Me handles GET /auth/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := c.authenticatedUser(ctx)
	if !ok {
		return
	}

	user, err := c.currentUserUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserEnvelope{User: dto.ToUserResponse(user)})
}

// List handles GET /auth/users requests.
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.listUsersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserListResponse{Users: dto.ToUserResponses(users)})
}

// Delete handles DELETE /auth/users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	actorID, ok := c.authenticatedUser(ctx)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(ctx, "id", "Invalid user ID", string(domainerror.ErrCodeInvalidUserID))
	if !ok {
		return
	}

	err := c.deleteUserUseCase.Execute(ctx.Request.Context(), auth.DeleteUserInput{
		ActorID:  actorID,
		TargetID: targetID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// ChangePassword handles PUT /auth/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := c.authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeMissingFields), err)
		return
	}

	err := c.changePasswordUseCase.Execute(ctx.Request.Context(), auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

func (c *UserController) authenticatedUser(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Access token required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}
