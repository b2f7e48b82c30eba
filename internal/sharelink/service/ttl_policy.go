package service

import (
	"fmt"
	"time"
)

// TTLPolicyMode selects how signed URL lifetimes relate to the link expiration.
type TTLPolicyMode string

const (
	// TTLPolicyFloor applies a minimum lifetime even when the link expires sooner.
	// A URL minted seconds before expiration stays valid for the full minimum.
	TTLPolicyFloor TTLPolicyMode = "floor"

	// TTLPolicyCap never lets a signed URL outlive the link that minted it.
	TTLPolicyCap TTLPolicyMode = "cap"

	// DefaultMinSignedURLTTL is the lifetime floor for signed document URLs.
	DefaultMinSignedURLTTL = 300 * time.Second
)

// ParseTTLPolicyMode converts a configuration value into a TTLPolicyMode.
func ParseTTLPolicyMode(mode string) (TTLPolicyMode, error) {
	switch TTLPolicyMode(mode) {
	case TTLPolicyFloor, TTLPolicyCap:
		return TTLPolicyMode(mode), nil
	default:
		return "", fmt.Errorf("invalid signed url ttl policy %q: must be 'floor' or 'cap'", mode)
	}
}

type ttlPolicy struct {
	mode   TTLPolicyMode
	minTTL time.Duration
}

// TTL returns the signed URL lifetime for a link with the given remaining lifetime.
// Results are whole seconds since providers sign with second precision.
func (p *ttlPolicy) TTL(remaining time.Duration) time.Duration {
	remaining = remaining.Truncate(time.Second)

	ttl := max(p.minTTL, remaining)
	if p.mode == TTLPolicyCap {
		ttl = min(ttl, remaining)
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}

// NewTTLPolicy creates a TTLPolicy. A non-positive minTTL falls back to DefaultMinSignedURLTTL.
func NewTTLPolicy(mode TTLPolicyMode, minTTL time.Duration) TTLPolicy {
	if minTTL <= 0 {
		minTTL = DefaultMinSignedURLTTL
	}
	return &ttlPolicy{mode: mode, minTTL: minTTL}
}
