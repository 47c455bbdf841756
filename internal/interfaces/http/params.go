package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseTimeQuery lee un query param de fecha opcional en RFC 3339.
// Ausente devuelve el tiempo cero (sin límite); inválido devuelve error.
func parseTimeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// parseRangeQuery lee los límites opcionales start/end del período consultado.
func parseRangeQuery(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = parseTimeQuery(c, "start")
	if err != nil {
		return
	}
	end, err = parseTimeQuery(c, "end")
	return
}
