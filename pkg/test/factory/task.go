package factory

import (
	fab "github.com/Goldziher/fabricator"

	"taskapp/internal/core/model/request"
)

func NewCreateTaskRequest(userID string, customData ...map[string]any) request.CreateTaskRequest {
	instance := fab.New(request.CreateTaskRequest{})

	defaults := map[string]any{
		"Title":       "Buy groceries",
		"Description": "Milk, eggs and bread",
		"UserID":      userID,
	}

	for _, data := range customData {
		for key, value := range data {
			defaults[key] = value
		}
	}

	return instance.Build(defaults)
}
