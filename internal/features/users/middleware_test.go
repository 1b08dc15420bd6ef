package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubTokenFinder struct {
	users map[string]*User
	err   error
}

func (s *stubTokenFinder) FindByToken(ctx context.Context, accessToken string) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[accessToken], nil
}

func protectedRouter(finder TokenFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secrets", Authenticate(finder), func(c *gin.Context) {
		user := c.MustGet("user").(*User)
		c.JSON(200, gin.H{"name": user.Name})
	})
	return r
}

func TestAuthenticateValidToken(t *testing.T) {
	finder := &stubTokenFinder{users: map[string]*User{
		"tok-123": {ID: primitive.NewObjectID(), Name: "Agnes"},
	}}
	r := protectedRouter(finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/secrets", nil)
	req.Header.Set("Authorization", "tok-123")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Agnes", body["name"])
}

func TestAuthenticateBearerPrefixTolerated(t *testing.T) {
	finder := &stubTokenFinder{users: map[string]*User{
		"tok-123": {Name: "Agnes"},
	}}
	r := protectedRouter(finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/secrets", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

func TestAuthenticateRejections(t *testing.T) {
	finder := &stubTokenFinder{users: map[string]*User{
		"tok-123": {Name: "Agnes"},
	}}
	r := protectedRouter(finder)

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "unknown token", header: "some-other-string"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/secrets", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			require.Equal(t, 401, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, true, body["loggedOut"])
		})
	}
}

func TestAuthenticateStoreError(t *testing.T) {
	finder := &stubTokenFinder{err: errors.New("connection reset")}
	r := protectedRouter(finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/secrets", nil)
	req.Header.Set("Authorization", "tok-123")
	r.ServeHTTP(w, req)

	require.Equal(t, 500, w.Code)
}
