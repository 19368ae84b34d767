// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-shop-keeper server handlers and API client.
//
// All Msg* constants are the public messages written into the {"error": ...}
// body of failed responses. Raw driver or library errors never reach a
// client; they are replaced by one of these.
package app

const (
	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "User not found"

	// MsgItemNotFound is returned when no item has the requested id.
	MsgItemNotFound = "Item not found"

	// MsgOrderNotFound is returned when no order has the requested id,
	// including an order that was already deleted.
	MsgOrderNotFound = "Order not found"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// called with an unregistered method.
	MsgRouteNotFound = "Not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidID is returned when a path id is not a base-10 integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidDataProvided is returned when the request body is decoded
	// but cannot be used, e.g. a password bcrypt cannot hash.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgReferencedEntityNotFound is returned when an order references a
	// user or item that does not exist.
	MsgReferencedEntityNotFound = "referenced user or item does not exist"

	// MsgInvalidEntityData is returned when the database rejects a row
	// (NOT NULL, CHECK or data exceptions).
	MsgInvalidEntityData = "invalid entity data"

	// MsgInvalidCredentials is returned for every sign-in failure.
	MsgInvalidCredentials = "Email/password invalid"

	// MsgTokenIsExpiredOrInvalid is returned when a token cannot be verified
	// or its user no longer exists.
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	// MsgEmailAlreadyExists is returned on a unique email violation.
	MsgEmailAlreadyExists = "email already exists"

	// MsgDatabaseUnavailable is returned by the health check when the
	// database does not answer a ping.
	MsgDatabaseUnavailable = "database is unavailable"

	// MsgUnknownError is returned for every unclassified failure.
	MsgUnknownError = "Error"
)
