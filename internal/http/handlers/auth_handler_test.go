package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexaride/internal/http/handlers"
	"nexaride/internal/modules/auth"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := auth.NewService("admin", "s3cret")
	require.NoError(t, err)
	r := gin.New()
	r.POST("/api/login", handlers.NewAuthHandler(svc, nil).Login)
	return r
}

func TestLogin(t *testing.T) {
	r := newAuthRouter(t)

	tests := []struct {
		name    string
		body    string
		want    int
		success string
	}{
		{name: "ok", body: `{"username":"admin","password":"s3cret"}`, want: http.StatusOK, success: `"success":true`},
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, want: http.StatusUnauthorized, success: `"success":false`},
		{name: "missing fields", body: `{"username":"admin"}`, want: http.StatusBadRequest, success: `"success":false`},
		{name: "malformed", body: `{"username":`, want: http.StatusBadRequest, success: `"success":false`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/login", tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.success)
		})
	}

	w := postJSON(r, "/api/login", `{"username":"admin","password":"s3cret"}`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}
