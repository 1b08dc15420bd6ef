package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"})
	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	require.Equal(t, "bar", data["foo"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "abc"})
	require.Equal(t, 201, w.Code)
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		fn   func(c *gin.Context)
		code int
		body ErrorResponse
	}{
		{
			name: "validation failed",
			fn:   func(c *gin.Context) { ValidationFailed(c, "name is required") },
			code: 400,
			body: ErrorResponse{Error: "name is required", Code: "VALIDATION_FAILED"},
		},
		{
			name: "not found",
			fn:   func(c *gin.Context) { NotFound(c, "Plant not found") },
			code: 404,
			body: ErrorResponse{Error: "Plant not found"},
		},
		{
			name: "conflict",
			fn:   func(c *gin.Context) { Conflict(c, "already exists", "DUPLICATE_KEY") },
			code: 409,
			body: ErrorResponse{Error: "already exists", Code: "DUPLICATE_KEY"},
		},
		{
			name: "database error",
			fn:   func(c *gin.Context) { DatabaseError(c, "insert failed") },
			code: 500,
			body: ErrorResponse{Error: "insert failed", Code: "DATABASE_ERROR"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.fn(c)

			require.Equal(t, tc.code, w.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Equal(t, tc.body, got)
		})
	}
}
