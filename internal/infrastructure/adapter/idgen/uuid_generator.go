package idgen

import "github.com/google/uuid"

// UUIDGenerator issues random (v4) UUID strings
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
