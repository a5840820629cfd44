package middleware_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"peninsula/internal/middleware"
	"peninsula/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func setupSessionApp(codec *session.Codec) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", middleware.LoadSession(codec), func(c *fiber.Ctx) error {
		return c.JSON(middleware.SessionFrom(c))
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, authHeader string) (*http.Response, session.Session) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var s session.Session
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	}
	return resp, s
}

func TestLoadSession(t *testing.T) {
	codec := session.NewCodec("middleware_secret", time.Hour)
	app := setupSessionApp(codec)

	signedIn, err := session.New().Login("bob@example.com", "pw")
	require.NoError(t, err)
	token, err := codec.Encode(signedIn.ToggleViewMode())
	require.NoError(t, err)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedAuth   bool
		expectedMode   session.ViewMode
	}{
		{"No header", "", http.StatusOK, false, session.ViewPrompt},
		{"Valid token", "Bearer " + token, http.StatusOK, true, session.ViewTraditional},
		{"Wrong scheme", "Basic " + token, http.StatusUnauthorized, false, ""},
		{"Garbage token", "Bearer garbage", http.StatusUnauthorized, false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, s := whoami(t, app, tc.header)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.expectedStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tc.expectedAuth, s.IsAuthenticated)
			assert.Equal(t, tc.expectedMode, s.ViewMode)
		})
	}
}

func TestLoadSessionRejectsForeignSecret(t *testing.T) {
	app := setupSessionApp(session.NewCodec("middleware_secret", time.Hour))

	token, err := session.NewCodec("someone_else", time.Hour).Encode(session.New())
	require.NoError(t, err)

	resp, _ := whoami(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionFromWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(middleware.SessionFrom(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	var s session.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	assert.Equal(t, session.New(), s)
}
