package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ErrorHandlerMiddleware turns panics into 500 responses instead of
// dropping the connection.
func ErrorHandlerMiddleware() fiber.Handler {
	return recover.New()
}
