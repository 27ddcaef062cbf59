package rsakey

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks. Failures reported by the
// underlying crypto capability are wrapped so the root cause stays
// reachable through errors.Unwrap.
var (
	// ErrKey is returned when key material is missing, inconsistent, or of
	// the wrong capability level for the requested operation.
	ErrKey = errors.New("invalid key")

	// ErrEncrypt is returned when the underlying cipher rejected an
	// encryption input.
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecrypt is returned when the underlying cipher rejected a
	// ciphertext block (padding or validity failure).
	ErrDecrypt = errors.New("decryption failed")

	// ErrPassword is returned when a passphrase is required but none was
	// provided.
	ErrPassword = errors.New("a password is needed but none was provided")

	// ErrPEM is returned for malformed PEM input.
	ErrPEM = errors.New("invalid PEM data")

	// ErrInteger is returned when a numeric conversion would overflow, for
	// example a header-declared length exceeding the address space.
	ErrInteger = errors.New("integer operation exceeded bounds")

	// ErrCorrupt is returned for structurally malformed container data.
	ErrCorrupt = errors.New("corrupted container data")

	// ErrLength matches any LengthError via errors.Is.
	ErrLength = errors.New("bad length")
)

// LengthError reports a mismatch between a declared and an actual byte
// length, including short reads during decoding.
type LengthError struct {
	Expected int
	Got      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bad length: expected %d, got %d", e.Expected, e.Got)
}

// Is implements errors.Is against ErrLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}
