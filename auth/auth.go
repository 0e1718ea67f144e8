// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingPrincipal = errors.New("missing principal")
	ErrInvalidPrincipal = errors.New("invalid principal format")
)

// PrincipalHeader carries the caller's identity on every mutating
// request. The value is an opaque identifier already verified by an
// external authentication layer (a gateway or reverse proxy); this
// server validates its shape and nothing else.
const PrincipalHeader = "X-Principal"

// MaxPrincipalLen bounds the accepted principal length.
const MaxPrincipalLen = 128

// PrincipalFromRequest extracts and validates the caller principal
// from the request headers.
func PrincipalFromRequest(r *http.Request) (string, error) {
	p := strings.TrimSpace(r.Header.Get(PrincipalHeader))
	if p == "" {
		return "", ErrMissingPrincipal
	}
	if err := ValidatePrincipal(p); err != nil {
		return "", err
	}
	return p, nil
}

// ValidatePrincipal checks that p is a plausible opaque identifier:
// non-empty, bounded, and free of whitespace and control characters.
func ValidatePrincipal(p string) error {
	if p == "" {
		return ErrMissingPrincipal
	}
	if len(p) > MaxPrincipalLen {
		return ErrInvalidPrincipal
	}
	for _, c := range p {
		if c <= ' ' || c == 0x7f {
			return ErrInvalidPrincipal
		}
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
