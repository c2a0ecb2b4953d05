package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/pkg/logging"
	"taskapp/pkg/tracing"
)

type TaskHandler struct {
	svc    port.TaskService
	logger *logging.Logger
}

func NewTaskHandler(svc port.TaskService, logger *logging.Logger) *TaskHandler {
	return &TaskHandler{
		svc:    svc,
		logger: logger,
	}
}

func (t *TaskHandler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendError(c, http.StatusBadRequest)
		return
	}

	task, err := t.svc.Create(ctx, params)
	if err != nil {
		helper.SendDomainError(c, t.logger, err)
		return
	}

	slog.Info("Task#create", "task_id", task.ID().String(), "user_id", task.UserID().String())

	c.JSON(http.StatusCreated, response.NewTaskResponse(task))
}

func (t *TaskHandler) GetTask(c *gin.Context) {
	task, err := t.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		helper.SendDomainError(c, t.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTaskResponse(task))
}

func (t *TaskHandler) ListTasks(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.task.ListTasks", []attribute.KeyValue{
		attribute.String("handler.operation", "ListTasks"),
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	userID := c.Query("userId")

	span.SetAttributes(attribute.String("task.filter.user_id", userID))

	tasks, err := t.svc.List(ctx, userID)
	if err != nil {
		tracing.AddSpanError(span, err)
		helper.SendDomainError(c, t.logger, err)
		return
	}

	data := make([]response.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, response.NewTaskResponse(task))
	}

	span.SetAttributes(attribute.Int("task.count", len(data)))

	c.JSON(http.StatusOK, data)
}

func (t *TaskHandler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.UpdateTaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendError(c, http.StatusBadRequest)
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		slog.Error("Invalid task update", "errors", validation.FormatValidationErrors(err))
		helper.SendError(c, http.StatusBadRequest)
		return
	}

	task, err := t.svc.Update(ctx, c.Param("id"), params)
	if err != nil {
		helper.SendDomainError(c, t.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTaskResponse(task))
}

// CompleteTask forces the status to COMPLETED through the regular
// update path.
func (t *TaskHandler) CompleteTask(c *gin.Context) {
	status := domain.TaskStatusCompleted.String()

	task, err := t.svc.Update(c.Request.Context(), c.Param("id"), request.UpdateTaskRequest{
		Status: &status,
	})
	if err != nil {
		helper.SendDomainError(c, t.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTaskResponse(task))
}

func (t *TaskHandler) DeleteTask(c *gin.Context) {
	if err := t.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helper.SendDomainError(c, t.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Message: "Task deleted successfully",
	})
}
