package rayid

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the ray id.
const LocalsKey = "ray_id"

// MaxLength is the longest incoming ray id that is reused. It matches the
// journal's ray_id column.
const MaxLength = 64

// New returns a middleware that assigns a ray id to every request. An incoming
// X-Ray-ID header of at most MaxLength bytes is reused so callers can
// correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" || len(id) > MaxLength {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.SetUserContext(NewContext(c.UserContext(), id))
		c.Set(Header, id)
		return c.Next()
	}
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the ray id carried by ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
