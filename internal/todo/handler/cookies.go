package handler

import (
	"time"

	"github.com/VeerKakar17/calendar-todo-list/config"
	"github.com/VeerKakar17/calendar-todo-list/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// CookieWriter owns the session cookie attributes. HttpOnly is always on;
// Secure and SameSite are deployment config, not semantics.
type CookieWriter struct {
	secure     bool
	sameSite   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCookieWriter(cfg *config.Config) *CookieWriter {
	return &CookieWriter{
		secure:     cfg.CookieSecure,
		sameSite:   cfg.CookieSameSite,
		accessTTL:  time.Duration(cfg.AccessExpiryMin) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpiryMin) * time.Minute,
	}
}

func (w *CookieWriter) SetAccessToken(c *fiber.Ctx, token string) {
	w.set(c, constant.AccessTokenCookie, token, w.accessTTL)
}

func (w *CookieWriter) SetRefreshToken(c *fiber.Ctx, token string) {
	w.set(c, constant.RefreshTokenCookie, token, w.refreshTTL)
}

// ClearSession expires both credential cookies, forcing a fresh login.
func (w *CookieWriter) ClearSession(c *fiber.Ctx) {
	w.set(c, constant.AccessTokenCookie, "", -time.Hour)
	w.set(c, constant.RefreshTokenCookie, "", -time.Hour)
}

func (w *CookieWriter) set(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   w.secure,
		SameSite: w.sameSite,
	})
}
