package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"enrollapi/config"
	"enrollapi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestEndToEndEnrollmentFlow(t *testing.T) {
	config.LoadConfig()
	app := newApp()

	// Create Jane.
	status, env := doRequest(t, app, http.MethodPost, "/api/v1/user", "cool", fiber.Map{
		"name":  "Jane",
		"email": "j@d",
	})
	require.Equal(t, http.StatusCreated, status)

	var jane models.User
	require.NoError(t, json.Unmarshal(env.Data, &jane))
	assert.Equal(t, 1, jane.ID)

	// Enroll her in course 1 as a student.
	status, env = doRequest(t, app, http.MethodPost, "/api/v1/enrollment", "cool", fiber.Map{
		"userId":   1,
		"courseId": 1,
		"role":     "student",
	})
	require.Equal(t, http.StatusCreated, status)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 1, enrollment.ID)

	// Enrolling again returns the same enrollment.
	status, env = doRequest(t, app, http.MethodPost, "/api/v1/enrollment", "cool", fiber.Map{
		"userId":   1,
		"courseId": 1,
		"role":     "student",
	})
	require.Equal(t, http.StatusCreated, status)
	var duplicate models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &duplicate))
	assert.Equal(t, enrollment.ID, duplicate.ID)

	// Jane's courses.
	status, env = doRequest(t, app, http.MethodGet, "/api/v1/course/users/1", "", nil)
	require.Equal(t, http.StatusOK, status)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Software engineering 101", courses[0].Name)

	// Course 1's roster.
	status, env = doRequest(t, app, http.MethodGet, "/api/v1/user/1/users", "", nil)
	require.Equal(t, http.StatusOK, status)
	var roster []models.User
	require.NoError(t, json.Unmarshal(env.Data, &roster))
	require.Len(t, roster, 1)
	assert.Equal(t, "Jane", roster[0].Name)
	assert.Equal(t, "j@d", roster[0].Email)

	// Unknown course is a client error.
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/course/99", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEndToEndAuthGuard(t *testing.T) {
	config.LoadConfig()
	app := newApp()

	// Mutations without a token are rejected before the core runs.
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/user", "", fiber.Map{
		"name":  "Jane",
		"email": "j@d",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/user", "wrong", fiber.Map{
		"name":  "Jane",
		"email": "j@d",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Reads stay open.
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/course/1", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestEndToEndValidation(t *testing.T) {
	config.LoadConfig()
	app := newApp()

	// Email must be exactly <char>@<char>.
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/user", "cool", fiber.Map{
		"name":  "Jane",
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Role outside the enum is rejected.
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/enrollment", "cool", fiber.Map{
		"userId":   1,
		"courseId": 1,
		"role":     "janitor",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Non-numeric ids never reach the service.
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/course/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/enrollment/user/1?role=admin", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestEndToEndQueryFilters(t *testing.T) {
	config.LoadConfig()
	app := newApp()

	for _, u := range []fiber.Map{
		{"name": "Jane", "email": "j@d"},
		{"name": "Bob", "email": "b@c"},
	} {
		status, _ := doRequest(t, app, http.MethodPost, "/api/v1/user", "cool", u)
		require.Equal(t, http.StatusCreated, status)
	}
	for _, e := range []fiber.Map{
		{"userId": 1, "courseId": 1, "role": "student"},
		{"userId": 1, "courseId": 2, "role": "teacher"},
		{"userId": 2, "courseId": 1, "role": "student"},
	} {
		status, _ := doRequest(t, app, http.MethodPost, "/api/v1/enrollment", "cool", e)
		require.Equal(t, http.StatusCreated, status)
	}

	// The course id from the path wins over the userId filter.
	status, env := doRequest(t, app, http.MethodGet, "/api/v1/enrollment/course/1?userId=1", "", nil)
	require.Equal(t, http.StatusOK, status)
	var enrollments []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	assert.Len(t, enrollments, 2)

	// By user, role filter supplied but ignored by the priority rule.
	status, env = doRequest(t, app, http.MethodGet, "/api/v1/enrollment/user/1?role=student", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	assert.Len(t, enrollments, 2)

	// Get a single enrollment.
	status, env = doRequest(t, app, http.MethodGet, "/api/v1/enrollment/2", "", nil)
	require.Equal(t, http.StatusOK, status)
	var single models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &single))
	assert.Equal(t, 2, single.CourseID)

	// Withdraw and confirm it is gone.
	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/enrollment/2", "cool", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/enrollment/2", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
