package http

import (
	"estate-service/internal/auth"
	"estate-service/internal/config"
	"estate-service/internal/visitors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRouteTable(t *testing.T) {
	counter, err := visitors.NewCounter(filepath.Join(t.TempDir(), "counts.json"), 0)
	require.NoError(t, err)
	defer counter.Close()

	jwtService := auth.NewJWTService("route-table-test-secret-0123456789abcdef", time.Hour)

	server := NewServer(&ServerDependencies{
		Config: &config.Config{
			Server: config.ServerConfig{
				ReadTimeout:  time.Second,
				WriteTimeout: time.Second,
			},
			App: config.AppConfig{
				PageSize:    20,
				SiteBaseURL: "https://example.com",
			},
		},
		JWTService:     jwtService,
		AuthMiddleware: auth.NewMiddleware(jwtService),
		Visitors:       counter,
	})

	registered := make(map[string]bool)
	for _, route := range server.echo.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /property/:id",

		"GET /api/public/properties",
		"GET /api/public/properties/:id",
		"GET /api/public/team",
		"GET /api/public/portfolio",
		"GET /api/achievements",

		"POST /api/contact",
		"POST /api/newsletter",
		"POST /api/schedule-visits",
		"POST /api/auth/login",

		"GET /api/auth/verify",
		"GET /api/properties",
		"POST /api/properties",
		"PUT /api/properties/:id",
		"DELETE /api/properties/:id",

		"GET /api/schedule-visits",
		"GET /api/schedule-visits/:id",
		"PUT /api/schedule-visits/:id",
		"PATCH /api/schedule-visits/:id",
		"DELETE /api/schedule-visits/:id",

		"GET /api/contacts",
		"PUT /api/contacts/:id/status",

		"GET /api/newsletter",
		"DELETE /api/newsletter/:id",

		"GET /api/achievements",
		"POST /api/achievements",
		"PUT /api/achievements",
		"PUT /api/achievements/:field",

		"GET /api/activity",
		"GET /api/stats",
		"GET /api/analytics/overview",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}

	// The visit and newsletter admin surfaces share the public resource paths
	assert.False(t, registered["PATCH /api/visits/:id/status"])
	assert.False(t, registered["GET /api/visits"])
	assert.False(t, registered["GET /api/newsletter/subscribers"])
}
