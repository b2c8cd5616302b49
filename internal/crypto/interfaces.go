// Package crypto holds the client-side credential hashing used for the
// offline unlock PIN. The PIN gates access to the on-device database while
// the clinician is away from connectivity; it is never sent to the server.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/pin_service_mock.go -package=mock

// PINService hashes and verifies the device unlock PIN.
type PINService interface {
	// HashPIN produces a bcrypt digest of pin suitable for storage in the
	// device table. Returns [ErrPINTooShort] for PINs under 4 characters.
	HashPIN(pin string) (string, error)

	// VerifyPIN compares a stored digest with an entered PIN. Returns
	// [ErrWrongPIN] on mismatch.
	VerifyPIN(hash, pin string) error
}
