package handlers

import (
	"net/http"

	"github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/internal/domain/user"
	"github.com/femfund/femfund/pkg/response"
	"github.com/femfund/femfund/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "User registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	usr, err := h.svc.RegisterUser(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToDTO(&usr))
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	usr, token, err := h.svc.LoginUser(input.Email, input.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:   token,
		UID:     usr.UID,
		Email:   usr.Email,
		IsAdmin: usr.IsAdmin(),
	})
}

// Logout godoc
// @Summary Clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

// Profile godoc
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /users/profile [get]
// @Router /auth/me [get]
func (h *UserHandler) Profile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	usr, err := h.svc.FindUserByID(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToDTO(&usr))
}

// UpdateProfile godoc
// @Summary Update current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body user.UpdateProfileInput true "Fields to update"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input user.UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	usr, err := h.svc.UpdateProfile(uid, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToDTO(&usr))
}

// ChangePassword godoc
// @Summary Change current user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body user.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Old password is incorrect"
// @Router /users/change-password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input user.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.svc.ChangePassword(uid, input); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}
