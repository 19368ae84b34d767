// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrMalformedHash   = errors.New("stored password hash is malformed")
	ErrHashingPassword = errors.New("error hashing password")
)
