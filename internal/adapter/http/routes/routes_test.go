package routes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "taskapp/pkg/test"
)

func TestHealthEndpoint(t *testing.T) {
	setup := SetupTest(t)

	recorder := PerformRequest(setup.Router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
	assert.Contains(t, recorder.Body.String(), "timestamp")
}

func TestCORSPreflight(t *testing.T) {
	setup := SetupTest(t)

	recorder := PerformRequest(setup.Router, http.MethodOptions, "/tasks", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
