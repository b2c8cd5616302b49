package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side record identifiers. UUIDv7 keeps
// locally created records roughly time-ordered, which makes local listings
// stable before the server has ever seen them.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4
// if the monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
