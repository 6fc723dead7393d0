package identity

// Shared session/Locals keys used across controllers and middlewares
const (
	KeyCitizenID     = "citizen_id"
	KeyCitizenName   = "citizen_name"
	KeyCitizenAadhar = "citizen_aadhar"
	KeyOfficerID     = "officer_id"
	KeyOfficerName   = "officer_name"

	// LocalsKey is where the resolved Identity lives on the fiber context.
	LocalsKey = "IDENTITY"
)
