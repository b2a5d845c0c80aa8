package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionMiddleware(testSecret, time.Hour))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		sid, _ := ctx.Locals("session_id").(string)
		return ctx.SendString(sid)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func TestNewVisitorGetsSessionCookie(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestReturningVisitorKeepsSession(t *testing.T) {
	app := newTestApp()

	first, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, first)
	require.NotNil(t, cookie)

	firstSID := make([]byte, 64)
	n, _ := first.Body.Read(firstSID)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	second, err := app.Test(req)
	require.NoError(t, err)

	// No new cookie is minted when the presented one is valid.
	assert.Nil(t, sessionCookie(t, second))

	secondSID := make([]byte, 64)
	m, _ := second.Body.Read(secondSID)
	assert.Equal(t, string(firstSID[:n]), string(secondSID[:m]))
}

func TestTamperedTokenGetsFreshSession(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-jwt"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.NotEqual(t, "not-a-jwt", cookie.Value)
}

func TestBearerHeaderCarriesSession(t *testing.T) {
	app := newTestApp()

	token, err := mintSessionToken("session-abc", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "session-abc", string(body[:n]))
}

func TestQueryParamFallbackForWebsocketHandshake(t *testing.T) {
	app := newTestApp()

	token, err := mintSessionToken("session-ws", testSecret, time.Hour)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami?session="+token, nil))
	require.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "session-ws", string(body[:n]))
}

func TestWrongSecretRejected(t *testing.T) {
	app := newTestApp()

	token, err := mintSessionToken("session-evil", "other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.NotEqual(t, "session-evil", string(body[:n]))
}
