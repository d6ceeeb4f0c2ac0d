package accesscode

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates the secret codes embedded in captain self-service URLs.
type Generator interface {
	NewCode() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewCode returns 32 lowercase hex characters from a random (v4) UUID.
func (g *UUIDGenerator) NewCode() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
