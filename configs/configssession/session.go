package configssession

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"

	"qatardigital.app/configs"
)

// SessionTTL bounds how long an admin login survives without logout.
const SessionTTL = 24 * time.Hour

// CookieKey derives the AES-256 cookie key from SESSION_SECRET. Deterministic,
// so a restart keeps previously issued session cookies valid.
func CookieKey() string {
	sum := sha256.Sum256([]byte(configs.GetConfig().SessionSecret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SetupSession builds the server-side session store backing the admin area.
// The cookie carries only the session identifier; the admin flag itself
// lives server-side and is never trusted from the client.
func SetupSession() *session.Store {
	cfg := configs.GetConfig()
	return session.New(session.Config{
		Expiration:     SessionTTL,
		KeyLookup:      "cookie:qds_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: "Lax",
	})
}
