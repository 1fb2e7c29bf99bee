package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/utils"
)

// ErrorHandler turns any error returned by a handler into a status code and
// a {"message": ...} body. Causes of 5xx responses are logged, never sent.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := utils.StatusCode(err)
		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				"request_id", requestID(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return c.Status(code).JSON(utils.ErrorResponse{Message: utils.PublicMessage(err)})
	}
}
