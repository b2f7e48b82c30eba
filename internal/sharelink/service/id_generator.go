package service

import (
	"crypto/rand"
	"encoding/base64"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

// linkIDBytes is the entropy of a share link identifier (256 bits).
const linkIDBytes = 32

type randomIDGenerator struct{}

// Generate reads 32 random bytes and encodes them as unpadded base64url.
func (g *randomIDGenerator) Generate() (string, error) {
	randomBytes := make([]byte, linkIDBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate share link id")
	}
	return base64.RawURLEncoding.EncodeToString(randomBytes), nil
}

// NewIDGenerator creates an IDGenerator backed by crypto/rand.
func NewIDGenerator() IDGenerator {
	return &randomIDGenerator{}
}
