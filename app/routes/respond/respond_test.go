package respond

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-management/app/database"
)

func perform(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvelope(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return Success(c, fiber.Map{"id": 7})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
}

func TestCreatedEnvelope(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return Created(c, fiber.Map{"id": 3})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])
}

func TestErrorEnvelope_StatusByKind(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"not found", sql.ErrNoRows, fiber.StatusNotFound, "not_found"},
		{"validation", database.Validation("bad input"), fiber.StatusBadRequest, "validation"},
		{"constraint", &pq.Error{Code: "23505"}, fiber.StatusConflict, "constraint"},
		{"connection", &pq.Error{Code: "08006"}, fiber.StatusServiceUnavailable, "connection"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := perform(t, func(c *fiber.Ctx) error {
				return Error(c, tt.err)
			})

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, false, body["success"])
			errObj := body["error"].(map[string]interface{})
			assert.Equal(t, tt.wantType, errObj["type"])
			assert.NotEmpty(t, errObj["severity"])
			assert.NotEmpty(t, errObj["suggestion"])
			assert.NotEmpty(t, errObj["timestamp"])
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, "Code and name are required")
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Code and name are required", errObj["message"])
}
