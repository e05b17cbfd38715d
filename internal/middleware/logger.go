package middleware

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// RequestLogger writes one compact line per request.
func RequestLogger(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format: "${method} ${path} ${status} ${latency} - ${bytesSent} bytes [${locals:requestid}]\n",
		Output: out,
	})
}
