// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} path segment is not a base-10
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrRouteNotFound is reported for unknown paths and for known paths
	// requested with an unregistered method.
	ErrRouteNotFound = errors.New("route not found")
)
