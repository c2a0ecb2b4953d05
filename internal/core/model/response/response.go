package response

import (
	"time"

	"taskapp/internal/core/domain"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	AccountAge int       `json:"accountAge"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID().String(),
		Name:       user.Name(),
		Email:      user.Email().String(),
		CreatedAt:  user.CreatedAt(),
		UpdatedAt:  user.UpdatedAt(),
		AccountAge: user.AccountAge(),
	}
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		Status:      task.Status().String(),
		UserID:      task.UserID().String(),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
		CompletedAt: task.CompletedAt(),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the only error shape clients ever see. The message
// is generic per status code, detail stays in the server logs.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
