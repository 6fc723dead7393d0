package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmarg/CivicPortal/internal/pkg/identity"
	"github.com/janmarg/CivicPortal/internal/pkg/session"
)

// IdentityMiddleware resolves the session into an identity.Identity exactly
// once per request and stores it on the context. Handlers read the identity
// value; they never touch the session themselves.
func IdentityMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		c.Locals(identity.LocalsKey, identity.Anonymous())
		return c.Next()
	}

	if id, ok := sess.Get(identity.KeyCitizenID).(uint); ok && id > 0 {
		name, _ := sess.Get(identity.KeyCitizenName).(string)
		aadharNumber, _ := sess.Get(identity.KeyCitizenAadhar).(string)
		c.Locals(identity.LocalsKey, identity.Identity{
			Role:         identity.RoleCitizen,
			CitizenID:    id,
			AadharNumber: aadharNumber,
			Name:         name,
		})
		return c.Next()
	}

	if id, ok := sess.Get(identity.KeyOfficerID).(uint); ok && id > 0 {
		name, _ := sess.Get(identity.KeyOfficerName).(string)
		c.Locals(identity.LocalsKey, identity.Identity{
			Role:      identity.RoleOfficer,
			OfficerID: id,
			Name:      name,
		})
		return c.Next()
	}

	c.Locals(identity.LocalsKey, identity.Anonymous())
	return c.Next()
}
