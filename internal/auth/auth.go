// Package auth implements the client side of the VIIPER API authentication
// handshake and the encrypted connection that follows it. The server side
// verification is kept so the handshake can be exercised against a local
// peer.
package auth

import (
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"

	"github.com/remote-input/hidinject/apitypes"
)

const (
	PBKDF2Iterations = 100000
	PBKDF2Salt       = "VIIPER-Key-v1"
)

// ErrUnauthorized is returned when the server rejects the password.
var ErrUnauthorized = &apitypes.ApiError{Status: 401, Title: "Unauthorized", Detail: "invalid password"}

// DeriveKey stretches a password to a 32-byte key with PBKDF2-SHA256.
func DeriveKey(password string) ([]byte, error) {
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	return pbkdf2.Key(
		[]byte(password),
		[]byte(PBKDF2Salt),
		PBKDF2Iterations,
		32,
		sha256.New,
	), nil
}

// DeriveSessionKey mixes the long-term key with both nonces.
func DeriveSessionKey(key, serverNonce, clientNonce []byte) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write(serverNonce)
	h.Write(clientNonce)
	h.Write([]byte("VIIPER-Session-v1"))
	return h.Sum(nil)
}
