package identity

import "github.com/gofiber/fiber/v2"

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCitizen   Role = "citizen"
	RoleOfficer   Role = "officer"
)

// Identity is the authenticated identity of the current request, resolved
// once at the boundary by the identity middleware and threaded through
// handlers instead of being re-derived from the session ad hoc. A session
// holds at most one role at a time.
type Identity struct {
	Role Role

	// Citizen fields, set when Role == RoleCitizen
	CitizenID    uint
	AadharNumber string

	// Officer fields, set when Role == RoleOfficer
	OfficerID uint

	Name string
}

func (i Identity) IsCitizen() bool {
	return i.Role == RoleCitizen
}

func (i Identity) IsOfficer() bool {
	return i.Role == RoleOfficer
}

// Anonymous is the identity of a request without a logged-in session.
func Anonymous() Identity {
	return Identity{Role: RoleAnonymous}
}

// Get retrieves the identity from the fiber context.
// Returns the anonymous identity if none is set.
func Get(c *fiber.Ctx) Identity {
	if v := c.Locals(LocalsKey); v != nil {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Anonymous()
}
