package factory

import (
	"fmt"
	"sync/atomic"

	fab "github.com/Goldziher/fabricator"

	"taskapp/internal/core/model/request"
)

var emailSeq atomic.Int64

// NewCreateUserRequest builds a valid payload. Emails come from a
// sequence so repeated calls never trip the uniqueness check.
func NewCreateUserRequest(customData ...map[string]any) request.CreateUserRequest {
	instance := fab.New(request.CreateUserRequest{})

	defaults := map[string]any{
		"Name":  "Jane Doe",
		"Email": fmt.Sprintf("jane.doe.%d@example.com", emailSeq.Add(1)),
	}

	for _, data := range customData {
		for key, value := range data {
			defaults[key] = value
		}
	}

	return instance.Build(defaults)
}
