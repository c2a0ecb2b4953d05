package test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/routes"
	"taskapp/internal/adapter/storage/memory"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/logging"
)

// TestSetup wires in-memory repositories, services and a router the same
// way the application container does, minus the outer middleware stack.
type TestSetup struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	TaskService port.TaskService

	Router *gin.Engine
}

func SetupTest(t *testing.T) *TestSetup {
	t.Helper()

	userRepo := memory.NewUserRepository(nil)
	taskRepo := memory.NewTaskRepository(nil)

	userSvc := service.NewUserService(userRepo, nil)
	taskSvc := service.NewTaskService(taskRepo, userRepo, nil)

	logger := logging.NewNopLogger()

	router := routes.SetupRouterForTests(routes.HandlersConfig{
		UserHandler: handler.NewUserHandler(userSvc, logger),
		TaskHandler: handler.NewTaskHandler(taskSvc, logger),
	})

	return &TestSetup{
		UserRepo:    userRepo,
		TaskRepo:    taskRepo,
		UserService: userSvc,
		TaskService: taskSvc,
		Router:      router,
	}
}

// PerformRequest runs one request through the router and returns the
// recorder. A nil body sends an empty payload.
func PerformRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte

	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func DecodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T

	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", recorder.Body.String(), err)
	}

	return out
}
