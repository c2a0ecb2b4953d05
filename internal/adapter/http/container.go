package http

import (
	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/storage/memory"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/logging"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	TaskService port.TaskService

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(logger *logging.Logger, probe port.Telemetry) *Container {
	userRepo := memory.NewUserRepository(probe)
	taskRepo := memory.NewTaskRepository(probe)

	userSvc := service.NewUserService(userRepo, probe)
	taskSvc := service.NewTaskService(taskRepo, userRepo, probe)

	userHandler := handler.NewUserHandler(userSvc, logger)
	taskHandler := handler.NewTaskHandler(taskSvc, logger)

	return &Container{
		UserRepo:    userRepo,
		TaskRepo:    taskRepo,
		UserService: userSvc,
		TaskService: taskSvc,
		UserHandler: userHandler,
		TaskHandler: taskHandler,
	}
}
