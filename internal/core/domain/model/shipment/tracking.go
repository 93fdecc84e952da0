package shipment

import (
	"fmt"
	"math/rand/v2"

	"logistics/internal/pkg/errs"
)

// Tracking codes are eight uppercase letters followed by twelve digits.
// Caller-supplied codes only need to fit the length bounds of the column.
const (
	trackingLetters    = 8
	trackingDigits     = 12
	trackingCodeMinLen = 8
	trackingCodeMaxLen = 20
)

// GenerateTrackingCode produces a random tracking code. Uniqueness is not
// guaranteed here; the storage layer's unique constraint is the arbiter, and
// creation retries on collision.
func GenerateTrackingCode() string {
	buf := make([]byte, 0, trackingLetters+trackingDigits)
	for range trackingLetters {
		buf = append(buf, byte('A'+rand.IntN(26)))
	}
	for range trackingDigits {
		buf = append(buf, byte('0'+rand.IntN(10)))
	}
	return string(buf)
}

// ValidateTrackingCode checks the length bounds of a caller-supplied code.
func ValidateTrackingCode(code string) error {
	if len(code) < trackingCodeMinLen || len(code) > trackingCodeMaxLen {
		return errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("length %d is outside [%d, %d]", len(code), trackingCodeMinLen, trackingCodeMaxLen))
	}
	return nil
}
