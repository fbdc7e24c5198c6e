package fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/jp903/scout/core"
)

const userLocalsKey = "user"

// requireAuth runs next only for requests carrying a live session and makes
// the session owner available through currentUser.
func (h *handlers) requireAuth(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, err := h.auth.VerifySession(c.Context(), extractToken(c))
		if err != nil {
			return h.fail(c, err)
		}
		if user == nil {
			return c.Status(http.StatusUnauthorized).JSON(core.ErrorResponse{Error: core.ErrUnauthorized.Error()})
		}

		c.Locals(userLocalsKey, user)
		return next(c)
	}
}

func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals(userLocalsKey).(*core.User)
	return user
}

// extractToken reads a Bearer Authorization header first, then the session
// cookie.
func extractToken(c fiber.Ctx) string {
	if token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "); ok {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	return c.Cookies(core.SessionCookieName)
}
