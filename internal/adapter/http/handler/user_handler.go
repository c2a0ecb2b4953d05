package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/pkg/logging"
)

type UserHandler struct {
	svc    port.UserService
	logger *logging.Logger
}

func NewUserHandler(svc port.UserService, logger *logging.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

func (u *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendError(c, http.StatusBadRequest)
		return
	}

	user, err := u.svc.Create(ctx, params)
	if err != nil {
		helper.SendDomainError(c, u.logger, err)
		return
	}

	slog.Info("User#create", "user_id", user.ID().String())

	c.JSON(http.StatusCreated, response.NewUserResponse(user))
}

func (u *UserHandler) GetUser(c *gin.Context) {
	user, err := u.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		helper.SendDomainError(c, u.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

func (u *UserHandler) ListUsers(c *gin.Context) {
	users, err := u.svc.List(c.Request.Context())
	if err != nil {
		helper.SendDomainError(c, u.logger, err)
		return
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, response.NewUserResponse(user))
	}

	c.JSON(http.StatusOK, data)
}

func (u *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.UpdateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendError(c, http.StatusBadRequest)
		return
	}

	user, err := u.svc.Update(ctx, c.Param("id"), params)
	if err != nil {
		helper.SendDomainError(c, u.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

func (u *UserHandler) DeleteUser(c *gin.Context) {
	if err := u.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helper.SendDomainError(c, u.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Message: "User deleted successfully",
	})
}
