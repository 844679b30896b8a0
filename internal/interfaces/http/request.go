package http

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// patchBody lee la forma PATCH {"<recurso>Id" | "id": "...", "updates": {...}}.
func patchBody(c *fiber.Ctx, idKey string) (string, map[string]any, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(c.Body(), &raw); err != nil {
		return "", nil, err
	}
	id := stringField(raw, idKey)
	if id == "" {
		id = stringField(raw, "id")
	}
	updates, _ := raw["updates"].(map[string]any)
	return id, updates, nil
}

// putBody lee la forma PUT: id en ?id= y los cambios como cuerpo.
func putBody(c *fiber.Ctx) (string, map[string]any, error) {
	var updates map[string]any
	if len(c.Body()) > 0 {
		if err := sonic.Unmarshal(c.Body(), &updates); err != nil {
			return "", nil, err
		}
	}
	return strings.TrimSpace(c.Query("id")), updates, nil
}

// updateTarget unifica PUT y PATCH para los handlers de actualización.
func updateTarget(c *fiber.Ctx, idKey string) (string, map[string]any, error) {
	if c.Method() == fiber.MethodPut {
		return putBody(c)
	}
	return patchBody(c, idKey)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
