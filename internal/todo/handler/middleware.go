package handler

import (
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/VeerKakar17/calendar-todo-list/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RequireSession authenticates the request's credential cookies before the
// handler runs, applying whatever side effects the session layer asks for:
// a silently renewed access cookie on the recovery path, or clearing both
// cookies on lockout. The resolved subject id lands in c.Locals.
func RequireSession(sessions *service.SessionService, cookies *CookieWriter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Authenticate(
			c.Cookies(constant.AccessTokenCookie),
			c.Cookies(constant.RefreshTokenCookie),
		)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		if !sess.Authenticated() {
			if sess.ClearCredentials {
				cookies.ClearSession(c)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		if sess.RefreshedAccessToken != "" {
			cookies.SetAccessToken(c, sess.RefreshedAccessToken)
		}

		c.Locals(constant.SubjectKey, sess.UserID)

		return c.Next()
	}
}
