package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/pkg/logger"
)

// CookieSettings cookie que transporta la credencial.
type CookieSettings struct {
	Name   string
	Secure bool
}

// LoginLimit límite de intentos de login por IP + email. Limiter nil lo desactiva.
type LoginLimit struct {
	Limiter domain.RateLimiter
	Max     int
	Window  time.Duration
}

// AuthHandler maneja alta, login, logout y sesión actual.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieSettings
	limit  LoginLimit
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieSettings, limit LoginLimit, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, limit: limit, log: log}
}

// Signup godoc
// @Summary      Registrar empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, name"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSession(c, out.Token)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if !h.allowLogin(c, in.Email) {
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Error: "demasiados intentos, intente más tarde", Code: "RATE_LIMITED",
		})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSession(c, out.Token)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) setSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.uc.SessionTTL().Seconds()),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// allowLogin consulta el limitador. Si el limitador falla se deja pasar el intento.
func (h *AuthHandler) allowLogin(c *fiber.Ctx, email string) bool {
	if h.limit.Limiter == nil || h.limit.Max <= 0 {
		return true
	}
	key := "login:" + c.IP() + ":" + auth.NormalizeEmail(email)
	decision, err := h.limit.Limiter.Allow(c.Context(), key, h.limit.Max, h.limit.Window)
	if err != nil {
		h.log.Warn().Err(err).Str("path", c.Path()).Msg("limitador de login no disponible")
		return true
	}
	c.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
	c.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	if !decision.Allowed && !decision.ResetAt.IsZero() {
		retry := max(int64(time.Until(decision.ResetAt).Seconds()), 0)
		c.Set("Retry-After", strconv.FormatInt(retry, 10))
	}
	return decision.Allowed
}
