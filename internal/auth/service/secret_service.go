package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

const secretBytes = 32

// secretService hashes operator secrets with Argon2id.
type secretService struct {
	hasher *pwdhash.PasswordHasher
}

func (s *secretService) GenerateSecret() (string, string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate operator secret")
	}

	plainSecret := base64.URLEncoding.EncodeToString(buf)
	hashedSecret, err := s.HashSecret(plainSecret)
	if err != nil {
		return "", "", err
	}

	return plainSecret, hashedSecret, nil
}

func (s *secretService) HashSecret(plainSecret string) (string, error) {
	hashedSecret, err := s.hasher.Hash([]byte(plainSecret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash operator secret")
	}
	return hashedSecret, nil
}

// CompareSecret treats malformed hashes as a mismatch.
func (s *secretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	ok, err := s.hasher.Verify([]byte(plainSecret), hashedSecret)
	return err == nil && ok
}

// NewSecretService returns a SecretService using the moderate Argon2id policy.
func NewSecretService() SecretService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		// The policy is a compile-time constant; failure means a broken dependency.
		panic(err)
	}
	return &secretService{hasher: hasher}
}
