package complaintno

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Complaint numbers are 6-digit numeric strings in [100000, 999999]. They are
// the public identifier of a complaint, distinct from its database key.
const (
	Length = 6

	lowest    = 100000
	rangeSize = 900000
)

// maxAttempts bounds the collision-retry loop. Hitting it means the number
// space is effectively exhausted, which is a fatal configuration problem at
// this portal's scale, not an expected runtime condition.
const maxAttempts = 1000

// ExistsFunc reports whether a complaint number is already persisted.
type ExistsFunc func(no string) (bool, error)

// Random returns a uniformly random 6-digit complaint number.
func Random() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(rangeSize))
	if err != nil {
		return "", fmt.Errorf("failed to read secure random number: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+lowest), nil
}

// Generate draws random complaint numbers until exists reports a free one.
// The check is a best-effort pre-check only; the database unique index on
// complaint_no remains the authoritative guard under concurrent filings.
func Generate(exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		no, err := Random()
		if err != nil {
			return "", err
		}
		taken, err := exists(no)
		if err != nil {
			return "", err
		}
		if !taken {
			return no, nil
		}
	}
	return "", fmt.Errorf("no free complaint number after %d attempts: number space exhausted", maxAttempts)
}
