package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

const tokenBytes = 32

// tokenService stores only the SHA-256 of issued tokens.
type tokenService struct{}

func (t *tokenService) GenerateToken() (string, string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate bearer token")
	}

	plainToken := base64.URLEncoding.EncodeToString(buf)
	return plainToken, t.HashToken(plainToken), nil
}

// HashToken returns the hex encoded SHA-256 of plainToken.
func (t *tokenService) HashToken(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

// NewTokenService returns a TokenService.
func NewTokenService() TokenService {
	return &tokenService{}
}
