package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixedTester bool

func (t fixedTester) TestConnection(context.Context) bool { return bool(t) }

func TestHealthCheck(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		db       Pinger
		github   ConnectionTester
		status   string
		database string
		ghAPI    string
	}{
		{"all up", up, fixedTester(true), "healthy", "connected", "connected"},
		{"db down", down, fixedTester(true), "unhealthy", "disconnected", "connected"},
		{"github down", up, fixedTester(false), "unhealthy", "connected", "disconnected"},
		{"no db", nil, fixedTester(true), "unhealthy", "disconnected", "connected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			h := NewHealthHandler("scaffold-forge", "1.0.0", tt.db, tt.github)
			h.RegisterRoutes(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.database, body.Database)
			assert.Equal(t, tt.ghAPI, body.GitHubAPI)
			assert.Equal(t, tt.database, body.Services["database"])
			assert.Equal(t, tt.ghAPI, body.Services["github_api"])
			assert.Equal(t, "1.0.0", body.Version)
			assert.GreaterOrEqual(t, body.Uptime, 0.0)
		})
	}
}
