package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jp903/scout/core"
)

type cookieSettings struct {
	maxAge int // seconds
	secure bool
}

func (s cookieSettings) set(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     core.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.maxAge,
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s cookieSettings) clear(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     core.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
