package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"qatardigital.app/configs"
	"qatardigital.app/pkg/testdb"
)

const testAdminPassword = "correct-horse-battery"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	configs.SetConfig(&configs.Config{
		AppEnv:        "test",
		Port:          5000,
		AdminPassword: testAdminPassword,
		SessionSecret: "test-secret",
	})
	t.Cleanup(func() { configs.SetConfig(nil) })

	app := fiber.New()
	SetupRoutes(app)
	return app, db
}

// request fires one JSON request through the app. cookie may be empty.
func request(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginAdmin authenticates and returns the session cookie for later requests.
func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/api/admin/login", fiber.Map{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "qds_session" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}
