// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-shop-keeper.
//
// An [App] parses a command and its arguments, calls the server through
// [adapter.ShopClient] and prints the result as indented JSON.
package client
