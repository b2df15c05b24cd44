// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

const kidHeader = "kid"

// Keyfunc selects the verification key by the token's kid header. A
// missing header and an unknown kid are reported with this package's errors.
func Keyfunc(keys map[string]any) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, ok := token.Header[kidHeader].(string)
		if !ok || kid == "" {
			return nil, NewMissingAttribute(kidHeader)
		}
		key, ok := keys[kid]
		if !ok {
			return nil, ErrKeyNotExists
		}
		return key, nil
	}
}

// Parse verifies token with the keys selected by kid and checks that every
// required claim is present. Every failure is an *Error.
func Parse(token string, keys map[string]any, required ...string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, Keyfunc(keys)); err != nil {
		return nil, FromJWT(err)
	}
	for _, name := range required {
		if _, ok := claims[name]; !ok {
			return nil, NewMissingAttribute(name)
		}
	}
	return claims, nil
}

// FromJWT classifies an error returned by the jwt parser.
func FromJWT(err error) error {
	if err == nil {
		return nil
	}
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr
	}
	return NewValidationFailed(err)
}
