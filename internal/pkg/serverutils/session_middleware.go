package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookie = "travel_session"

// SessionMiddleware identifies the visitor behind every request. A valid
// session JWT (cookie or Bearer header) is reused; anything else gets a
// freshly minted session. The session id lands in ctx.Locals("session_id").
func SessionMiddleware(secret string, ttl time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if sid, ok := parseSessionToken(tokenFromRequest(ctx), secret); ok {
			ctx.Locals("session_id", sid)
			return ctx.Next()
		}

		sid := uuid.New().String()
		token, err := mintSessionToken(sid, secret, ttl)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to establish session"})
		}

		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
		ctx.Locals("session_id", sid)
		return ctx.Next()
	}
}

func tokenFromRequest(ctx *fiber.Ctx) string {
	if cookie := ctx.Cookies(SessionCookie); cookie != "" {
		return cookie
	}
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	// Websocket handshakes from browsers cannot set headers.
	return ctx.Query("session")
}

func parseSessionToken(tokenStr, secret string) (string, bool) {
	if tokenStr == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["session_id"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}

func mintSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
