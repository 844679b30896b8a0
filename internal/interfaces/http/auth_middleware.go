package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUser    = "user"
	LocalProfile = "profile"
	LocalActor   = "actor"
)

// AuthMiddleware verifica la credencial (cookie; Authorization: Bearer como alternativa),
// resuelve el perfil del rol y deja usuario, perfil y actor en c.Locals.
func AuthMiddleware(verifier *auth.SessionVerifier, resolver *auth.RoleResolver, cookieName string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := verifier.Verify(c.Context(), credential(c, cookieName))
		if err != nil {
			return respondError(c, log, err)
		}
		profile, err := resolver.Resolve(c.Context(), session.User)
		if err != nil {
			return respondError(c, log, err)
		}
		c.Locals(LocalUser, session.User)
		c.Locals(LocalProfile, profile)
		c.Locals(LocalActor, profile.Actor(session.User))
		return c.Next()
	}
}

// credential token de la cookie o, si no viene, del header Authorization.
func credential(c *fiber.Ctx, cookieName string) string {
	if tok := c.Cookies(cookieName); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireRole bloquea con 403 a los roles no listados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUser(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no autenticado", Code: "UNAUTHENTICATED"})
		}
		for _, r := range roles {
			if u.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "acceso denegado", Code: "FORBIDDEN"})
	}
}

// GetUser cuenta autenticada (nil fuera de rutas protegidas).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetProfile perfil resuelto; nunca nil tras AuthMiddleware.
func GetProfile(c *fiber.Ctx) *auth.Profile {
	p, _ := c.Locals(LocalProfile).(*auth.Profile)
	if p == nil {
		return &auth.Profile{}
	}
	return p
}

// GetActor identidad para las reglas de acceso.
func GetActor(c *fiber.Ctx) access.Actor {
	a, _ := c.Locals(LocalActor).(access.Actor)
	return a
}

// displayName nombre a mostrar del usuario autenticado.
func displayName(c *fiber.Ctx) string {
	u := GetUser(c)
	if u == nil {
		return ""
	}
	return GetProfile(c).DisplayName(u)
}
