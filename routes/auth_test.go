package routes

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qatardigital.app/models"
)

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, false, body["success"])
}

func TestLoginStatusLogoutLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	// Anonymous status.
	resp := request(t, app, http.MethodGet, "/api/admin/status", nil, "")
	var status map[string]bool
	decode(t, resp, &status)
	assert.False(t, status["isAdmin"])

	cookie := loginAdmin(t, app)

	resp = request(t, app, http.MethodGet, "/api/admin/status", nil, cookie)
	decode(t, resp, &status)
	assert.True(t, status["isAdmin"])

	resp = request(t, app, http.MethodPost, "/api/admin/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/admin/status", nil, cookie)
	decode(t, resp, &status)
	assert.False(t, status["isAdmin"], "logout destroys the server-side session")
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, db := newTestApp(t)

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/contact"},
		{http.MethodGet, "/api/admin/services"},
		{http.MethodPost, "/api/admin/services"},
		{http.MethodGet, "/api/admin/blog"},
		{http.MethodGet, "/api/admin/careers"},
		{http.MethodGet, "/api/admin/job-applications"},
		{http.MethodGet, "/api/admin/analytics"},
		{http.MethodDelete, "/api/admin/portfolio/some-id"},
	}
	for _, tc := range gated {
		resp := request(t, app, tc.method, tc.path, nil, "")
		assert.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "%s %s must be gated", tc.method, tc.path)
	}

	// The rejected POST must not have created anything.
	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTamperedSessionCookieRejected(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginAdmin(t, app)

	resp := request(t, app, http.MethodGet, "/api/admin/contact", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Extending the ciphertext fails authentication, so the request falls
	// back to an anonymous session instead of a recovered admin one.
	tampered := cookie + "AAAA"
	resp = request(t, app, http.MethodGet, "/api/admin/contact", nil, tampered)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var status map[string]bool
	resp = request(t, app, http.MethodGet, "/api/admin/status", nil, tampered)
	decode(t, resp, &status)
	assert.False(t, status["isAdmin"])
}

func TestClientSuppliedAdminFlagIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	// A forged cookie value is not a valid server-side session.
	resp := request(t, app, http.MethodGet, "/api/admin/contact", nil, "qds_session=forged; isAdmin=true")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
