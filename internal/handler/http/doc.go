// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the user registry.
//
// It exposes route wiring, request handlers, and middleware. Every request
// passes through the same pipeline before reaching a handler: trace id,
// panic recovery, request logging, JSON body parsing and, for the /users
// routes, bearer-token authorization.
package http
